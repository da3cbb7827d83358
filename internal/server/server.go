// Package server provides the HTTP REST API for structuring resumes and
// scoring them against job requirements.
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

	"go.uber.org/zap"

	"github.com/jfelix/resume-matcher/internal/ai"
	"github.com/jfelix/resume-matcher/internal/match"
	"github.com/jfelix/resume-matcher/internal/observability"
	"github.com/jfelix/resume-matcher/internal/profile"
	"github.com/jfelix/resume-matcher/internal/skills"
	"github.com/jfelix/resume-matcher/internal/store"
)

// Config holds server configuration.
type Config struct {
	Addr        string
	DatabaseURL string
	APIKey      string
	Scoring     match.Config
	Vocabulary  *skills.Vocabulary
	Debug       bool
	JSONLogs    bool
}

// Server is the HTTP server. Store and signals are optional: without a
// database the API is stateless, and without an API key structuring relies
// on pattern extraction alone.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	builder    *profile.Builder
	scorer     *match.Scorer
	store      *store.Store
	signals    ai.Client
}

// New creates a server instance and connects its optional backends.
func New(ctx context.Context, cfg Config) (*Server, error) {
	logger, err := observability.NewLogger(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	scorer, err := match.NewScorer(cfg.Scoring)
	if err != nil {
		return nil, err
	}

	var opts []profile.Option
	if cfg.Vocabulary != nil {
		opts = append(opts, profile.WithTaxonomy(skills.NewTaxonomy(cfg.Vocabulary)))
	}

	s := &Server{
		logger:  logger,
		builder: profile.NewBuilder(opts...),
		scorer:  scorer,
	}

	if cfg.DatabaseURL != "" {
		db, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		s.store = db
	}

	if cfg.APIKey != "" {
		client, err := ai.NewGeminiClient(ctx, cfg.APIKey, ai.DefaultGeminiConfig())
		if err != nil {
			return nil, err
		}
		s.signals = ai.NewBreaker(client, ai.DefaultBreakerConfig())
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /profiles", s.handleCreateProfile)
	mux.HandleFunc("GET /profiles/{id}", s.handleGetProfile)
	mux.HandleFunc("GET /profiles/{id}/matches", s.handleListMatches)
	mux.HandleFunc("POST /matches", s.handleCreateMatch)
	mux.HandleFunc("GET /matches/{id}", s.handleGetMatch)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until SIGINT/SIGTERM.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.signals != nil {
		if err := s.signals.Close(); err != nil {
			s.logger.Warn("failed to close AI client", zap.Error(err))
		}
	}
	if s.store != nil {
		s.store.Close()
	}
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
