package server

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/at-ishikawa/crossword/internal/crossword"
	"github.com/at-ishikawa/crossword/internal/puzzle"
	"github.com/at-ishikawa/crossword/internal/wordpool"
)

type createPuzzleRequest struct {
	Level int `json:"level"`
}

type checkPuzzleRequest struct {
	Letters [][]string `json:"letters"`
}

type levelResponse struct {
	Level       wordpool.Level `json:"level"`
	GridSize    int            `json:"gridSize"`
	TargetWords int            `json:"targetWords"`
}

// POST /api/puzzles
func (s *Server) handleCreatePuzzle(w http.ResponseWriter, r *http.Request) {
	if !s.generateRL.allow(clientAddr(r)) {
		jsonError(w, "too many requests, try again later", http.StatusTooManyRequests)
		return
	}

	var req createPuzzleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	level, err := wordpool.ParseLevel(req.Level)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := s.generator.Generate(level)
	if err := crossword.Verify(result); err != nil {
		s.logger.ErrorContext(r.Context(), "generated an invalid puzzle", "level", level, "error", err)
		jsonError(w, "failed to generate a puzzle", http.StatusInternalServerError)
		return
	}

	p := puzzle.New(result, s.now())
	if err := s.repository.Create(r.Context(), p); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to store puzzle", "id", p.ID, "error", err)
		jsonError(w, "failed to store the puzzle", http.StatusInternalServerError)
		return
	}
	s.logger.InfoContext(r.Context(), "puzzle created",
		"id", p.ID,
		"level", level,
		"words", len(p.PlacedWords),
		"attempts", p.Stats.Attempts,
	)
	writeJSON(w, http.StatusCreated, p)
}

// GET /api/puzzles
func (s *Server) handleListPuzzles(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			jsonError(w, "limit must be a positive number", http.StatusBadRequest)
			return
		}
		limit = min(n, maxListLimit)
	}

	puzzles, err := s.repository.List(r.Context(), limit)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "failed to list puzzles", "error", err)
		jsonError(w, "failed to list puzzles", http.StatusInternalServerError)
		return
	}
	if puzzles == nil {
		puzzles = []puzzle.Puzzle{}
	}
	writeJSON(w, http.StatusOK, puzzles)
}

// GET /api/puzzles/{id}
func (s *Server) handleGetPuzzle(w http.ResponseWriter, r *http.Request) {
	p, ok := s.findPuzzle(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// POST /api/puzzles/{id}/check
func (s *Server) handleCheckPuzzle(w http.ResponseWriter, r *http.Request) {
	p, ok := s.findPuzzle(w, r)
	if !ok {
		return
	}

	var req checkPuzzleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := p.Grid.Fill(req.Letters); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, p.Grid.Check())
}

// GET /api/levels
func (s *Server) handleListLevels(w http.ResponseWriter, _ *http.Request) {
	levels := make([]levelResponse, 0, wordpool.MaxLevel)
	for _, l := range wordpool.Levels() {
		levels = append(levels, levelResponse{
			Level:       l,
			GridSize:    crossword.GridSize(l),
			TargetWords: crossword.TargetWordCount(l),
		})
	}
	writeJSON(w, http.StatusOK, levels)
}

func (s *Server) findPuzzle(w http.ResponseWriter, r *http.Request) (*puzzle.Puzzle, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		jsonError(w, "invalid puzzle id", http.StatusBadRequest)
		return nil, false
	}
	p, err := s.repository.FindByID(r.Context(), id)
	if errors.Is(err, puzzle.ErrNotFound) {
		jsonError(w, "puzzle not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		s.logger.ErrorContext(r.Context(), "failed to find puzzle", "id", id, "error", err)
		jsonError(w, "failed to load the puzzle", http.StatusInternalServerError)
		return nil, false
	}
	return p, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// clientAddr is the remote host without its port.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
