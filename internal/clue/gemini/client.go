// Package gemini writes clues with Google Gemini models.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/at-ishikawa/crossword/internal/clue"
	"github.com/at-ishikawa/crossword/internal/config"
	"github.com/at-ishikawa/crossword/internal/wordpool"
)

const defaultModel = "gemini-2.5-flash"

const cluePrompt = `Write one crossword clue for the word %q for a puzzle app used by older adults.
Difficulty %d on a scale of 1 (easiest) to 5.
Use plain everyday English and at most 8 words. Never use the word itself or any form of it.
If the word has no clear everyday meaning, answer NONE.
Answer with the clue text only.`

type Client struct {
	client    *genai.Client
	modelName string
}

// NewClient uses the Gemini API when an API key is configured and Vertex AI otherwise.
func NewClient(ctx context.Context, cfg config.GeminiConfig) (*Client, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.APIKey == "" {
		clientConfig = &genai.ClientConfig{
			Project:  cfg.Project,
			Location: cfg.Region,
			Backend:  genai.BackendVertexAI,
		}
	}
	return newClient(ctx, clientConfig, cfg.Model)
}

func newClient(ctx context.Context, clientConfig *genai.ClientConfig, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		client:    client,
		modelName: model,
	}, nil
}

// Clue implements clue.Provider.
func (g *Client) Clue(ctx context.Context, word string, level wordpool.Level) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role: "user",
			Parts: []*genai.Part{
				{Text: fmt.Sprintf(cluePrompt, word, level)},
			},
		}},
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(0.3)),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" || strings.EqualFold(text, "NONE") {
		return "", fmt.Errorf("%w: gemini returned nothing for %s", clue.ErrNoClue, word)
	}
	return text, nil
}

var _ clue.Provider = (*Client)(nil)
