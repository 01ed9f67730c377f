// Package server provides the HTTP REST API for the ideafit funnel.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smith505/ideafit/internal/db"
	"github.com/smith505/ideafit/internal/fit"
	"github.com/smith505/ideafit/internal/mailer"
	"github.com/smith505/ideafit/internal/report"
	"github.com/smith505/ideafit/internal/types"
)

// ReportStore is the persistence surface the server needs. *db.DB implements
// it; handler tests supply a fake.
type ReportStore interface {
	CreateReport(ctx context.Context, email string, answers types.QuizAnswers, result *types.RankResult) (uuid.UUID, error)
	GetReport(ctx context.Context, id uuid.UUID) (*types.Report, error)
	MarkReportPaid(ctx context.Context, id uuid.UUID, email string) error
	SaveExpansion(ctx context.Context, id uuid.UUID, expansion *types.ReportExpansion) error
	ListReports(ctx context.Context, limit int) ([]db.ReportSummary, error)
}

// Config holds server configuration
type Config struct {
	Port           int
	BaseURL        string
	CheckoutSecret string
	// AdminToken guards the report listing endpoint. Empty disables it.
	AdminToken string
	// RankLimit is the default number of ranked ideas per response.
	// Zero means fit.DefaultLimit.
	RankLimit int
}

// Deps holds the collaborators the server routes requests to.
type Deps struct {
	Store    ReportStore
	Ranker   *fit.Ranker
	Mailer   mailer.Mailer
	Expander *report.Expander
	Tokens   *TokenService
	Logger   *zap.Logger
}

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	store          ReportStore
	ranker         *fit.Ranker
	mailer         mailer.Mailer
	expander       *report.Expander
	tokens         *TokenService
	log            *zap.Logger
	validate       *validator.Validate
	baseURL        string
	checkoutSecret []byte
	adminToken     string
	rankLimit      int
}

// New creates a new server instance
func New(cfg Config, deps Deps) (*Server, error) {
	if deps.Store == nil || deps.Ranker == nil || deps.Tokens == nil {
		return nil, fmt.Errorf("store, ranker, and token service are required")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Mailer == nil {
		deps.Mailer = mailer.Noop{}
	}
	if cfg.CheckoutSecret == "" {
		return nil, fmt.Errorf("checkout webhook secret is required")
	}

	s := &Server{
		store:          deps.Store,
		ranker:         deps.Ranker,
		mailer:         deps.Mailer,
		expander:       deps.Expander,
		tokens:         deps.Tokens,
		log:            deps.Logger,
		validate:       validator.New(),
		baseURL:        cfg.BaseURL,
		checkoutSecret: []byte(cfg.CheckoutSecret),
		adminToken:     cfg.AdminToken,
		rankLimit:      cfg.RankLimit,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // report expansion can take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler builds the routed handler with middleware applied. Split out of New
// so tests can drive it with httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /rank", s.handleRank)
	mux.HandleFunc("POST /reports", s.handleCreateReport)
	mux.HandleFunc("GET /reports/{id}", s.handleGetReport)
	mux.HandleFunc("GET /reports", s.handleListReports)
	mux.HandleFunc("POST /webhooks/checkout", s.handleCheckoutWebhook)
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withLogging(s.withCORS(mux))
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
