// Package openai writes clues with the OpenAI chat completions API.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/crossword/internal/clue"
	"github.com/at-ishikawa/crossword/internal/wordpool"
)

const (
	DefaultBaseURL          = "https://api.openai.com/v1"
	DefaultMaxRetryAttempts = 3
)

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

type Option func(*resty.Client)

// WithBaseURL points the client at another OpenAI compatible endpoint.
func WithBaseURL(url string) Option {
	return func(c *resty.Client) {
		c.SetBaseURL(url)
	}
}

func NewClient(apiKey, model string, retryAttempts uint, opts ...Option) *Client {
	client := resty.New()
	client.SetBaseURL(DefaultBaseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")
	for _, opt := range opts {
		opt(client)
	}

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// noClueAnswer is what the model is told to answer for words it should not clue.
const noClueAnswer = "NONE"

const systemPrompt = `You write crossword clues for a puzzle app used by older adults.

RULES
- One short clue, at most 8 words, in plain everyday English.
- Never use the answer word or any form of it in the clue.
- No wordplay, slang, brand names or pop culture.
- Difficulty 1 is the easiest and 5 the hardest. Easy clues describe the thing directly.
- If the word is offensive or has no clear everyday meaning, answer NONE.

Answer with the clue text only.`

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	// 5xx and 429
	return strings.Contains(errStr, "response error 5") || strings.Contains(errStr, "response error 429")
}

// Clue implements clue.Provider.
func (client *Client) Clue(ctx context.Context, word string, level wordpool.Level) (string, error) {
	var result string
	if err := retry.Do(
		func() error {
			text, err := client.clue(ctx, word, level)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = text
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return "", err
	}
	return result, nil
}

func (client *Client) clue(ctx context.Context, word string, level wordpool.Level) (string, error) {
	requestBody := ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.3,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: fmt.Sprintf("Word: %s\nDifficulty: %d", word, level)},
		},
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices for %s", clue.ErrNoClue, word)
	}

	content := strings.TrimSpace(responseBody.Choices[0].Message.Content)
	slog.Default().Debug("openai clue",
		"word", word,
		"level", level,
		"content", content,
	)
	if content == "" || strings.EqualFold(content, noClueAnswer) {
		return "", fmt.Errorf("%w: model declined %s", clue.ErrNoClue, word)
	}
	return content, nil
}

var _ clue.Provider = (*Client)(nil)
