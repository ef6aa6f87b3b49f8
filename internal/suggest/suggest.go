// Package suggest composes prompt building, text generation, and
// per-kind normalization into a single call.
package suggest

import (
	"context"

	"github.com/sprite-ai/gitscribe/internal/llm"
	"github.com/sprite-ai/gitscribe/internal/prompt"
)

// Request describes one generation attempt.
type Request struct {
	Kind        prompt.Kind
	Change      string // raw diff text, forwarded untouched
	Hint        prompt.TypeHint
	History     []string // previously rejected suggestions
	Temperature float64
}

// Engine turns a Request into a normalized suggestion.
type Engine struct {
	Gen   llm.Generator
	Model string

	// Lowercase applies the all-lowercase commit message convention.
	// When off, the description after the type prefix is capitalized
	// instead.
	Lowercase bool
}

// Suggest builds the prompt, performs one generation call, and
// normalizes the result for the requested kind.
func (e *Engine) Suggest(ctx context.Context, req Request) (string, error) {
	p := prompt.Build(req.Kind, req.Change, req.Hint, req.History)
	raw, err := e.Gen.Complete(ctx, p, req.Temperature, e.Model)
	if err != nil {
		return "", err
	}
	return e.Normalize(req.Kind, raw), nil
}
