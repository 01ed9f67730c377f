package server

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SignatureHeader carries the hex-encoded HMAC-SHA256 of the raw webhook body.
const SignatureHeader = "X-Checkout-Signature"

// checkoutEventCompleted is the only event this endpoint acts on.
const checkoutEventCompleted = "checkout.completed"

// checkoutEvent is the payment provider's webhook payload.
type checkoutEvent struct {
	Event    string    `json:"event"`
	ReportID uuid.UUID `json:"report_id"`
	Email    string    `json:"email"`
}

// handleCheckoutWebhook processes a completed checkout: verifies the provider
// signature, marks the report paid, issues an unlock token, emails the buyer,
// and kicks off the paid-report expansion in the background.
func (s *Server) handleCheckoutWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if !s.verifySignature(body, r.Header.Get(SignatureHeader)) {
		sigErr := &ErrInvalidSignature{}
		s.log.Warn("checkout webhook rejected", zap.String("remote", r.RemoteAddr))
		s.errorResponse(w, HTTPStatus(sigErr), sigErr.Error())
		return
	}

	var event checkoutEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid webhook payload")
		return
	}

	if event.Event != checkoutEventCompleted {
		// Acknowledge unrelated events so the provider stops retrying.
		s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ignored"})
		return
	}
	if event.ReportID == uuid.Nil {
		s.errorResponse(w, http.StatusBadRequest, "missing report_id")
		return
	}

	if err := s.store.MarkReportPaid(r.Context(), event.ReportID, event.Email); err != nil {
		s.log.Error("failed to mark report paid", zap.Error(err), zap.String("report_id", event.ReportID.String()))
		s.errorResponse(w, http.StatusInternalServerError, "failed to unlock report")
		return
	}

	token, err := s.tokens.IssueUnlockToken(event.ReportID)
	if err != nil {
		s.log.Error("failed to issue unlock token", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to issue unlock token")
		return
	}

	reportURL := fmt.Sprintf("%s/reports/%s?token=%s", s.baseURL, event.ReportID, token)

	go s.deliverReport(event, reportURL)

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":       "ok",
		"unlock_token": token,
	})
}

// verifySignature checks the hex HMAC-SHA256 signature over the raw body.
func (s *Server) verifySignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	provided, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, s.checkoutSecret)
	mac.Write(body)
	return hmac.Equal(provided, mac.Sum(nil))
}

// deliverReport runs the post-payment work off the request path: email the
// unlock link, then generate and store the expanded sections. Failures are
// logged, not surfaced; the report stays unlocked either way.
func (s *Server) deliverReport(event checkoutEvent, reportURL string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if event.Email != "" {
		if err := s.mailer.SendReportReady(ctx, event.Email, reportURL); err != nil {
			s.log.Error("failed to send report email", zap.Error(err), zap.String("report_id", event.ReportID.String()))
		}
	}

	if s.expander == nil {
		return
	}

	rep, err := s.store.GetReport(ctx, event.ReportID)
	if err != nil || rep == nil {
		s.log.Error("failed to load report for expansion", zap.Error(err), zap.String("report_id", event.ReportID.String()))
		return
	}
	if len(rep.Result.RankedIdeas) == 0 || rep.Expansion != nil {
		return
	}

	expansion, err := s.expander.Expand(ctx, rep.Result.RankedIdeas[0], rep.Result.Profile)
	if err != nil {
		s.log.Error("failed to expand report", zap.Error(err), zap.String("report_id", event.ReportID.String()))
		return
	}

	if err := s.store.SaveExpansion(ctx, event.ReportID, expansion); err != nil {
		s.log.Error("failed to save expansion", zap.Error(err), zap.String("report_id", event.ReportID.String()))
	}
}
