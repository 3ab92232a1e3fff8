package wordsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/crossword/internal/clue"
	"github.com/at-ishikawa/crossword/internal/config"
)

const kettleResponse = `{
  "word": "kettle",
  "frequency": 3.2,
  "results": [
    {"definition": "the quantity a kettle will hold", "partOfSpeech": "noun"},
    {"definition": "a metal pot for stewing or boiling; usually has a lid and a handle shaped to make pouring easy", "partOfSpeech": "noun"},
    {"definition": "a pot for boiling water", "partOfSpeech": "noun"}
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, string) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cacheDir := filepath.Join(t.TempDir(), "wordsapi")
	client := NewClient(config.WordsAPIConfig{
		CacheDirectory: cacheDir,
		Host:           "wordsapiv1.p.rapidapi.com",
		Key:            "test-key",
	})
	client.baseURL = server.URL
	return client, cacheDir
}

func TestClient_Clue(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr error
		anyErr  bool
	}{
		{
			name:   "shortest definition without the answer",
			status: http.StatusOK,
			body:   kettleResponse,
			want:   "A pot for boiling water",
		},
		{
			name:    "unknown word",
			status:  http.StatusNotFound,
			body:    `{"success": false, "message": "word not found"}`,
			wantErr: clue.ErrNoClue,
		},
		{
			name:    "no usable definition",
			status:  http.StatusOK,
			body:    `{"word": "kettle", "results": [{"definition": "a kettle"}]}`,
			wantErr: clue.ErrNoClue,
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `oops`,
			anyErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/words/kettle", r.URL.Path)
				assert.Equal(t, "test-key", r.Header.Get("x-rapidapi-key"))
				assert.Equal(t, "wordsapiv1.p.rapidapi.com", r.Header.Get("x-rapidapi-host"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := client.Clue(context.Background(), "KETTLE", 2)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestClient_Lookup_cache(t *testing.T) {
	var calls atomic.Int32
	client, cacheDir := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(kettleResponse))
	})

	for range 2 {
		resp, err := client.Lookup(context.Background(), "KETTLE")
		require.NoError(t, err)
		assert.Equal(t, "kettle", resp.Word)
		assert.Len(t, resp.Results, 3)
	}
	assert.Equal(t, int32(1), calls.Load())

	cached, err := os.ReadFile(filepath.Join(cacheDir, "kettle.json"))
	require.NoError(t, err)
	assert.JSONEq(t, kettleResponse, string(cached))
}

func TestClient_Lookup_errorsAreNotCached(t *testing.T) {
	client, cacheDir := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Lookup(context.Background(), "KETTLE")
	require.Error(t, err)
	_, statErr := os.Stat(filepath.Join(cacheDir, "kettle.json"))
	assert.True(t, os.IsNotExist(statErr))
}
