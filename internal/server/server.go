// Package server provides the HTTP surface of the live CV page.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/cv-online/internal/binding"
	"github.com/jonathan/cv-online/internal/fetch"
	"github.com/jonathan/cv-online/internal/server/ratelimit"
	"github.com/jonathan/cv-online/internal/session"
	"github.com/jonathan/cv-online/internal/types"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	page       *session.Page
	skeleton   *fetch.Skeleton
	source     fetch.Source
	binder     *binding.Binder
	dataDir    string
	logger     *zap.Logger
	limiter    *ratelimit.Limiter
}

// Config holds server configuration
type Config struct {
	Port        int
	Skeleton    *fetch.Skeleton // Parsed once per request for stateless renders
	Source      fetch.Source    // Where content records are loaded from
	DataDir     string          // When set, data_<lang>.json files are served from here
	DefaultLang types.Language  // Applied to the live page at startup
	AllowStale  bool
	RateLimit   ratelimit.Config
	Logger      *zap.Logger
}

// New creates a new server instance and applies the default language to the live page.
// A failure to load the default language is logged and leaves the skeleton content in place.
func New(ctx context.Context, cfg Config) (*Server, error) {
	if cfg.Skeleton == nil {
		return nil, fmt.Errorf("skeleton is required")
	}
	if cfg.Source == nil {
		return nil, fmt.Errorf("content source is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	doc, err := cfg.Skeleton.Document()
	if err != nil {
		return nil, fmt.Errorf("failed to parse skeleton: %w", err)
	}

	binder := binding.NewBinder(binding.WithLogger(logger))
	s := &Server{
		skeleton: cfg.Skeleton,
		source:   cfg.Source,
		binder:   binder,
		dataDir:  cfg.DataDir,
		logger:   logger,
		limiter:  ratelimit.NewLimiter(cfg.RateLimit),
		page: session.NewPage(doc, cfg.Source,
			session.WithLogger(logger),
			session.WithBinder(binder),
			session.WithAllowStale(cfg.AllowStale),
		),
	}

	if cfg.DefaultLang != "" {
		if _, err := s.page.Switch(ctx, cfg.DefaultLang); err != nil {
			logger.Warn("default language not applied", zap.String("lang", cfg.DefaultLang.String()), zap.Error(err))
		}
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /lang", s.handleGetLanguage)
	mux.HandleFunc("POST /lang/{lang}", s.handleSwitchLanguage)
	mux.HandleFunc("GET /render/{lang}", s.handleRender)
	// The root pattern also serves /data_<lang>.json, which a path wildcard cannot express.
	mux.HandleFunc("GET /", s.handleRoot)

	return s.withRequestID(s.withLogging(s.withCORS(s.withRateLimit(mux))))
}

// Page returns the live page.
func (s *Server) Page() *session.Page {
	return s.page
}

// Start listens for requests until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.limiter.Stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", ln.Addr().String()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
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
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// htmlResponse writes a rendered document
func (s *Server) htmlResponse(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		s.logger.Debug("failed to write HTML response", zap.Error(err))
	}
}
