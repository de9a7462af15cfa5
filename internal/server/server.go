// Package server provides the HTTP REST API for the portfolio builder:
// résumé upload/parse (with SSE progress streaming), template listing,
// and portfolio generation.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/phuslu/log"

	"github.com/jonathan/portfolio-builder/internal/render"
)

// maxUploadBytes caps résumé uploads at 5 MB per the input contract
const maxUploadBytes = 5 << 20

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	generator  *render.Generator
	validate   *validator.Validate
	logger     log.Logger
}

// Config holds server configuration
type Config struct {
	Port   int
	Origin string
}

// New creates a new server instance
func New(cfg Config) *Server {
	s := &Server{
		generator: render.NewGenerator(cfg.Origin),
		validate:  validator.New(),
		logger:    log.Logger{Level: log.InfoLevel, TimeFormat: time.RFC3339},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /templates", s.handleTemplates)
	mux.HandleFunc("POST /parse", s.handleParse)
	mux.HandleFunc("POST /parse/stream", s.handleParseStream)
	mux.HandleFunc("POST /generate", s.handleGenerate)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.logRequests(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the routed handler for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start listens and serves until the context is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(ln)
	}()

	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("server listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// logRequests is the structured request-logging middleware
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
