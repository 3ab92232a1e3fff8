// Package wordsapi turns WordsAPI dictionary definitions into clues.
package wordsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/crossword/internal/clue"
	"github.com/at-ishikawa/crossword/internal/config"
	"github.com/at-ishikawa/crossword/internal/wordpool"
)

var errNotFound = errors.New("word not in dictionary")

// maxDefinitionLength skips definitions too long to read as a clue.
const maxDefinitionLength = 60

type Client struct {
	config    config.WordsAPIConfig
	baseURL   string
	http      *resty.Client
	fileCache *FileCache
}

func NewClient(cfg config.WordsAPIConfig) *Client {
	return &Client{
		config:    cfg,
		baseURL:   "https://" + cfg.Host,
		http:      resty.New(),
		fileCache: NewFileCache(cfg.CacheDirectory),
	}
}

func (c *Client) lookupAPI(ctx context.Context, word string) ([]byte, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("x-rapidapi-host", c.config.Host).
		SetHeader("x-rapidapi-key", c.config.Key).
		SetPathParam("word", strings.ToLower(word)).
		Get(c.baseURL + "/words/{word}")
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return nil, errNotFound
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return res.Body(), nil
}

// Lookup returns the dictionary entry for word, from the cache when possible.
func (c *Client) Lookup(ctx context.Context, word string) (Response, error) {
	var resp Response
	contents, err := c.fileCache.cache(word, func() ([]byte, error) {
		return c.lookupAPI(ctx, word)
	})
	if err != nil {
		return resp, fmt.Errorf("fileCache.cache(%s) > %w", word, err)
	}
	if err := json.Unmarshal(contents, &resp); err != nil {
		return resp, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return resp, nil
}

// Clue implements clue.Provider with the shortest suitable definition.
// The level is not used; dictionary definitions have one register.
func (c *Client) Clue(ctx context.Context, word string, _ wordpool.Level) (string, error) {
	resp, err := c.Lookup(ctx, word)
	if errors.Is(err, errNotFound) {
		return "", fmt.Errorf("%w: %s is not in WordsAPI", clue.ErrNoClue, word)
	}
	if err != nil {
		return "", err
	}

	definition, ok := pickDefinition(resp.Results, word)
	if !ok {
		return "", fmt.Errorf("%w: no short definition for %s", clue.ErrNoClue, word)
	}
	return capitalize(definition), nil
}

func pickDefinition(results []Result, word string) (string, bool) {
	best := ""
	for _, r := range results {
		d := strings.TrimSpace(r.Definition)
		if d == "" || utf8.RuneCountInString(d) > maxDefinitionLength {
			continue
		}
		if strings.Contains(strings.ToUpper(d), strings.ToUpper(word)) {
			continue
		}
		if best == "" || utf8.RuneCountInString(d) < utf8.RuneCountInString(best) {
			best = d
		}
	}
	return best, best != ""
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

var _ clue.Provider = (*Client)(nil)
