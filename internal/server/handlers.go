package server

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smith505/ideafit/internal/fit"
	"github.com/smith505/ideafit/internal/library"
	"github.com/smith505/ideafit/internal/types"
)

// wildcardDepth is how deep past the top two the wildcard scan looks.
const wildcardDepth = 10

// rankRequest is the body for POST /rank and POST /reports.
type rankRequest struct {
	Answers types.QuizAnswers `json:"answers" validate:"required"`
	Email   string            `json:"email" validate:"omitempty,email"`
	Limit   int               `json:"limit" validate:"omitempty,min=1,max=25"`
}

// rankResponse is the UI-ready ranking payload.
type rankResponse struct {
	Profile     types.FitProfile   `json:"profile"`
	RankedIdeas []types.RankedIdea `json:"ranked_ideas"`
	FitTrack    string             `json:"fit_track"`
	WinnerID    string             `json:"winner_id"`
	MatchChips  []types.MatchChip  `json:"match_chips"`
	Confidence  *types.Confidence  `json:"confidence,omitempty"`
	Wildcard    *types.RankedIdea  `json:"wildcard,omitempty"`
}

// decodeRankRequest decodes and validates a rank request body.
func (s *Server) decodeRankRequest(r *http.Request) (*rankRequest, error) {
	var req rankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	if err := s.validate.Struct(&req); err != nil {
		return nil, &ErrValidation{Field: "body", Message: err.Error()}
	}
	return &req, nil
}

// buildRanking runs the ranker and derives the auxiliary UI data.
func (s *Server) buildRanking(req *rankRequest) (*rankResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = s.rankLimit
	}
	if limit == 0 {
		limit = fit.DefaultLimit
	}

	// Rank deeper than the display limit so the wildcard scan has material.
	depth := limit
	if depth < wildcardDepth {
		depth = wildcardDepth
	}

	result, err := s.ranker.Rank(req.Answers, &fit.RankOptions{Limit: depth})
	if err != nil {
		return nil, err
	}

	resp := &rankResponse{
		Profile:    result.Profile,
		FitTrack:   result.FitTrack,
		WinnerID:   result.WinnerID,
		MatchChips: s.ranker.MatchChips(&result.Profile, result.WinnerID),
	}

	ranked := result.RankedIdeas
	if len(ranked) >= 2 {
		conf := fit.Confidence(ranked[0].Score, ranked[1].Score)
		resp.Confidence = &conf
		resp.Wildcard = fit.Wildcard(ranked[2:], result.FitTrack)
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	resp.RankedIdeas = ranked

	return resp, nil
}

// handleRank ranks the submitted answers without persisting anything.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRankRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp, err := s.buildRanking(req)
	if err != nil {
		if errors.Is(err, library.ErrEmptyLibrary) {
			s.log.Error("ranking against empty library", zap.Error(err))
		}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleCreateReport ranks the submitted answers and persists a preview report.
func (s *Server) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRankRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp, err := s.buildRanking(req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result := &types.RankResult{
		Profile:     resp.Profile,
		RankedIdeas: resp.RankedIdeas,
		FitTrack:    resp.FitTrack,
		WinnerID:    resp.WinnerID,
	}
	id, err := s.store.CreateReport(r.Context(), req.Email, req.Answers, result)
	if err != nil {
		s.log.Error("failed to create report", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to create report")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"report_id": id,
		"ranking":   resp,
	})
}

// handleGetReport returns a report. Without a valid unlock token the preview
// view is returned: the ranking snapshot with the paid expansion stripped.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid report id")
		return
	}

	rep, err := s.store.GetReport(r.Context(), id)
	if err != nil {
		s.log.Error("failed to get report", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to get report")
		return
	}
	if rep == nil {
		nf := &ErrReportNotFound{ReportID: id}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	if !s.unlocked(r, id) || rep.Status != types.ReportStatusPaid {
		rep.Expansion = nil
		rep.Email = ""
	}

	s.jsonResponse(w, http.StatusOK, rep)
}

// unlocked reports whether the request carries a valid unlock token for the
// given report.
func (s *Server) unlocked(r *http.Request, reportID uuid.UUID) bool {
	token := r.URL.Query().Get("token")
	if token == "" {
		return false
	}
	unlockedID, err := s.tokens.ValidateUnlockToken(token)
	if err != nil {
		return false
	}
	return unlockedID == reportID
}

// adminAuthorized reports whether the request carries the configured admin
// bearer token. Always false when no token is configured.
func (s *Server) adminAuthorized(r *http.Request) bool {
	if s.adminToken == "" {
		return false
	}
	auth := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) == 1
}

// handleListReports returns recent report summaries for the admin view.
// Summaries carry buyer emails, so the endpoint requires the admin token;
// without one configured it is disabled.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	if !s.adminAuthorized(r) {
		tokErr := &ErrInvalidToken{}
		s.errorResponse(w, HTTPStatus(tokErr), tokErr.Error())
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	reports, err := s.store.ListReports(r.Context(), limit)
	if err != nil {
		s.log.Error("failed to list reports", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to list reports")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"reports": reports})
}
