package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/crossword/internal/config"
	"github.com/at-ishikawa/crossword/internal/crossword"
	mock_puzzle "github.com/at-ishikawa/crossword/internal/mocks/puzzle"
	"github.com/at-ishikawa/crossword/internal/puzzle"
	"github.com/at-ishikawa/crossword/internal/wordpool"
)

func newTestServer(t *testing.T, repository puzzle.Repository, cfg config.ServerConfig) *Server {
	t.Helper()
	generator := crossword.New(wordpool.MustDefault(), crossword.Options{Seed: 1})
	return NewServer(repository, generator, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestServer_createAndGetPuzzle(t *testing.T) {
	s := newTestServer(t, puzzle.NewMemoryRepository(), config.ServerConfig{})

	rec := doRequest(t, s, http.MethodPost, "/api/puzzles", `{"level": 2}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	created := decodeBody[puzzle.Puzzle](t, rec)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, wordpool.Level(2), created.Level)
	assert.Equal(t, 7, created.Grid.Size())
	assert.NotEmpty(t, created.PlacedWords)
	require.NoError(t, crossword.Verify(&created.Result))

	rec = doRequest(t, s, http.MethodGet, "/api/puzzles/"+created.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[puzzle.Puzzle](t, rec)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.PlacedWords, got.PlacedWords)

	rec = doRequest(t, s, http.MethodGet, "/api/puzzles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[[]puzzle.Puzzle](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestServer_createPuzzle_badRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "level too high", body: `{"level": 9}`, wantErr: "invalid level: 9"},
		{name: "level missing", body: `{}`, wantErr: "invalid level: 0"},
		{name: "not json", body: `level=1`, wantErr: "invalid request body"},
		{name: "empty body", body: ``, wantErr: "invalid request body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s := newTestServer(t, mock_puzzle.NewMockRepository(ctrl), config.ServerConfig{})

			rec := doRequest(t, s, http.MethodPost, "/api/puzzles", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeBody[map[string]string](t, rec)["error"], tt.wantErr)
		})
	}
}

func TestServer_createPuzzle_rateLimited(t *testing.T) {
	s := newTestServer(t, puzzle.NewMemoryRepository(), config.ServerConfig{
		RateLimit: config.RateLimitConfig{GeneratePerMinute: 2},
	})

	for range 2 {
		rec := doRequest(t, s, http.MethodPost, "/api/puzzles", `{"level": 1}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	rec := doRequest(t, s, http.MethodPost, "/api/puzzles", `{"level": 1}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Other endpoints are not limited.
	rec = doRequest(t, s, http.MethodGet, "/api/puzzles", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_repositoryErrors(t *testing.T) {
	id := uuid.MustParse("8f14e45f-ceea-467a-9a0e-3b5e5d2c1a10")
	tests := []struct {
		name      string
		method    string
		target    string
		body      string
		setupMock func(*mock_puzzle.MockRepository)
		wantCode  int
	}{
		{
			name:   "create fails",
			method: http.MethodPost,
			target: "/api/puzzles",
			body:   `{"level": 1}`,
			setupMock: func(m *mock_puzzle.MockRepository) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:   "list fails",
			method: http.MethodGet,
			target: "/api/puzzles",
			setupMock: func(m *mock_puzzle.MockRepository) {
				m.EXPECT().List(gomock.Any(), defaultListLimit).Return(nil, errors.New("connection lost"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:   "list with a limit",
			method: http.MethodGet,
			target: "/api/puzzles?limit=500",
			setupMock: func(m *mock_puzzle.MockRepository) {
				m.EXPECT().List(gomock.Any(), maxListLimit).Return(nil, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "list with a bad limit",
			method:    http.MethodGet,
			target:    "/api/puzzles?limit=-1",
			setupMock: func(*mock_puzzle.MockRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "puzzle not found",
			method: http.MethodGet,
			target: "/api/puzzles/" + id.String(),
			setupMock: func(m *mock_puzzle.MockRepository) {
				m.EXPECT().FindByID(gomock.Any(), id).Return(nil, puzzle.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "find fails",
			method: http.MethodGet,
			target: "/api/puzzles/" + id.String(),
			setupMock: func(m *mock_puzzle.MockRepository) {
				m.EXPECT().FindByID(gomock.Any(), id).Return(nil, errors.New("connection lost"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:      "invalid id",
			method:    http.MethodGet,
			target:    "/api/puzzles/not-a-uuid",
			setupMock: func(*mock_puzzle.MockRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "check on a missing puzzle",
			method: http.MethodPost,
			target: "/api/puzzles/" + id.String() + "/check",
			body:   `{"letters": []}`,
			setupMock: func(m *mock_puzzle.MockRepository) {
				m.EXPECT().FindByID(gomock.Any(), id).Return(nil, puzzle.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repository := mock_puzzle.NewMockRepository(ctrl)
			tt.setupMock(repository)
			s := newTestServer(t, repository, config.ServerConfig{})

			rec := doRequest(t, s, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func TestServer_checkPuzzle(t *testing.T) {
	repository := puzzle.NewMemoryRepository()
	s := newTestServer(t, repository, config.ServerConfig{})

	rec := doRequest(t, s, http.MethodPost, "/api/puzzles", `{"level": 1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[puzzle.Puzzle](t, rec)
	target := "/api/puzzles/" + created.ID.String() + "/check"

	solution := make([][]string, created.Grid.Size())
	blank := make([][]string, created.Grid.Size())
	for r, row := range created.Grid {
		solution[r] = make([]string, len(row))
		blank[r] = make([]string, len(row))
		for c, cell := range row {
			solution[r][c] = cell.CorrectLetter
		}
	}

	tests := []struct {
		name     string
		letters  any
		wantCode int
		validate func(t *testing.T, got crossword.CheckResult)
	}{
		{
			name:     "solved",
			letters:  solution,
			wantCode: http.StatusOK,
			validate: func(t *testing.T, got crossword.CheckResult) {
				assert.True(t, got.Complete)
				assert.Empty(t, got.Wrong)
				assert.Len(t, got.SolvedWordIDs, len(created.PlacedWords))
			},
		},
		{
			name:     "nothing entered",
			letters:  blank,
			wantCode: http.StatusOK,
			validate: func(t *testing.T, got crossword.CheckResult) {
				assert.False(t, got.Complete)
				assert.Equal(t, got.Total, got.Empty)
				assert.Empty(t, got.SolvedWordIDs)
			},
		},
		{
			name:     "shape mismatch",
			letters:  solution[:2],
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(map[string]any{"letters": tt.letters})
			require.NoError(t, err)

			rec := doRequest(t, s, http.MethodPost, target, string(body))
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.validate != nil {
				tt.validate(t, decodeBody[crossword.CheckResult](t, rec))
			}
		})
	}

	// Checking does not change the stored puzzle.
	stored, err := repository.FindByID(t.Context(), created.ID)
	require.NoError(t, err)
	for _, row := range stored.Grid {
		for _, cell := range row {
			assert.Empty(t, cell.Letter)
		}
	}
}

func TestServer_listLevels(t *testing.T) {
	s := newTestServer(t, puzzle.NewMemoryRepository(), config.ServerConfig{})

	rec := doRequest(t, s, http.MethodGet, "/api/levels", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []levelResponse{
		{Level: 1, GridSize: 5, TargetWords: 8},
		{Level: 2, GridSize: 7, TargetWords: 12},
		{Level: 3, GridSize: 9, TargetWords: 16},
		{Level: 4, GridSize: 11, TargetWords: 20},
		{Level: 5, GridSize: 13, TargetWords: 25},
	}, decodeBody[[]levelResponse](t, rec))
}

func TestServer_middleware(t *testing.T) {
	s := newTestServer(t, puzzle.NewMemoryRepository(), config.ServerConfig{
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	})

	tests := []struct {
		name       string
		method     string
		origin     string
		wantCode   int
		wantOrigin string
	}{
		{name: "preflight from an allowed origin", method: http.MethodOptions, origin: "http://localhost:3000", wantCode: http.StatusNoContent, wantOrigin: "http://localhost:3000"},
		{name: "preflight from another origin", method: http.MethodOptions, origin: "http://evil.example", wantCode: http.StatusNoContent},
		{name: "get from an allowed origin", method: http.MethodGet, origin: "http://localhost:3000", wantCode: http.StatusOK, wantOrigin: "http://localhost:3000"},
		{name: "get without origin", method: http.MethodGet, wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/levels", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			s.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
		})
	}

	rec := doRequest(t, s, http.MethodDelete, "/api/levels", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rl := newRateLimiter(3, time.Minute)
	rl.now = func() time.Time { return now }

	for i := range 3 {
		assert.True(t, rl.allow("10.0.0.1"), "request %d", i)
	}
	assert.False(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.2"))

	now = now.Add(20 * time.Second)
	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))

	now = now.Add(10 * time.Minute)
	assert.True(t, rl.allow("10.0.0.3"))
	assert.Len(t, rl.visitors, 1)

	unlimited := newRateLimiter(0, time.Minute)
	for range 100 {
		require.True(t, unlimited.allow("10.0.0.1"))
	}
}
