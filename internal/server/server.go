// Package server serves crossword puzzles over a JSON HTTP API.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/at-ishikawa/crossword/internal/config"
	"github.com/at-ishikawa/crossword/internal/crossword"
	"github.com/at-ishikawa/crossword/internal/puzzle"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	maxBodySize      = 64 << 10
)

// Server is the crossword HTTP API.
type Server struct {
	mux            *http.ServeMux
	handler        http.Handler
	repository     puzzle.Repository
	generator      *crossword.Generator
	generateRL     *rateLimiter
	allowedOrigins []string
	logger         *slog.Logger
	now            func() time.Time
}

// NewServer creates a Server. A nil logger means slog.Default().
func NewServer(repository puzzle.Repository, generator *crossword.Generator, cfg config.ServerConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		mux:            http.NewServeMux(),
		repository:     repository,
		generator:      generator,
		generateRL:     newRateLimiter(cfg.RateLimit.GeneratePerMinute, time.Minute),
		allowedOrigins: cfg.CORS.AllowedOrigins,
		logger:         logger,
		now:            time.Now,
	}
	s.routes()
	s.handler = logRequests(s.logger, securityHeaders(corsMiddleware(s.mux, s.allowedOrigins)))
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/puzzles", s.handleCreatePuzzle)
	s.mux.HandleFunc("GET /api/puzzles", s.handleListPuzzles)
	s.mux.HandleFunc("GET /api/puzzles/{id}", s.handleGetPuzzle)
	s.mux.HandleFunc("POST /api/puzzles/{id}/check", s.handleCheckPuzzle)
	s.mux.HandleFunc("GET /api/levels", s.handleListLevels)
}

// ServeHTTP serves the API wrapped in request logging, security headers and CORS.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
