// Package llm wraps the generative completion service behind a one-method
// interface so the pipeline can be tested without network access.
package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultModel     = openai.GPT4oMini
	DefaultMaxTokens = 4000
)

// MissingCredentialError is returned at construction time when no API key is
// available, before any network activity happens.
type MissingCredentialError struct {
	Var string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("API key not set: provide --api-key or the %s environment variable", e.Var)
}

// StatusError carries a non-2xx reply from the completion endpoint.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("completion API error: status %d: %s", e.Code, e.Body)
}

// Completer performs one blocking completion round trip.
type Completer interface {
	Complete(ctx context.Context, promptText string) (string, error)
}

// Config holds everything the OpenAI-backed completer needs. The credential
// is threaded in explicitly rather than read from the environment mid-run.
type Config struct {
	APIKey    string
	BaseURL   string // override for tests and proxies
	Model     string
	MaxTokens int
}

// OpenAICompleter sends the prompt as a single user-role chat message.
type OpenAICompleter struct {
	client    *openai.Client
	model     string
	maxTokens int
}

func New(cfg Config) (*OpenAICompleter, error) {
	if cfg.APIKey == "" {
		return nil, &MissingCredentialError{Var: "OPENAI_API_KEY"}
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}
	return &OpenAICompleter{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// Complete returns the text of the first choice. Non-2xx responses surface
// as *StatusError; transport failures are returned wrapped.
func (c *OpenAICompleter) Complete(ctx context.Context, promptText string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: promptText,
			},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &StatusError{Code: apiErr.HTTPStatusCode, Body: apiErr.Message}
		}
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
