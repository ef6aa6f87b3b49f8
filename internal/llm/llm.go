// Package llm wraps the remote completion service behind a small
// Generator interface so the rest of the program can be tested with a
// fake.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ErrEmptyResponse is returned when the service answers successfully
// but with no usable text.
var ErrEmptyResponse = errors.New("model returned an empty response")

// Generator produces text for a rendered prompt. Exactly one network
// round-trip per call; a failure is fatal to the enclosing operation —
// there is no internal retry.
type Generator interface {
	Complete(ctx context.Context, prompt string, temperature float64, model string) (string, error)
}

// Client is the OpenAI-backed Generator.
type Client struct {
	api *openai.Client
}

// NewClient builds a Client from an API key. The key is validated by
// the first call, not here.
func NewClient(apiKey string) *Client {
	return &Client{api: openai.NewClient(apiKey)}
}

// Complete sends the prompt as a single user message and returns the
// cleaned response text. Surrounding whitespace and literal backticks
// are stripped so a model that wraps its answer in code fences still
// yields a usable artifact.
func (c *Client) Complete(ctx context.Context, prompt string, temperature float64, model string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	text := Clean(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Clean strips surrounding whitespace and any literal backticks from a
// raw model response.
func Clean(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "`", ""))
}
