// Package negotiate drives the accept/regenerate/cancel loop that
// turns a diff plus a rejection history into an accepted artifact.
package negotiate

import (
	"context"
	"math"

	"github.com/sprite-ai/gitscribe/internal/prompt"
	"github.com/sprite-ai/gitscribe/internal/suggest"
)

// Decision is the user's verdict on a presented suggestion.
type Decision int

const (
	Accept Decision = iota
	Regenerate
	Cancel
)

// DecisionProvider collects one decision about a presented suggestion.
// Implementations display the suggestion and read the user's choice;
// tests substitute a scripted provider.
type DecisionProvider interface {
	Decide(kind prompt.Kind, suggestion string) (Decision, error)
}

// Suggester is the slice of the suggestion engine the loop needs.
type Suggester interface {
	Suggest(ctx context.Context, req suggest.Request) (string, error)
}

// Outcome is the terminal state of one loop invocation: either an
// accepted artifact or a cancellation. Nothing else escapes the loop;
// history and temperature are discarded either way.
type Outcome struct {
	Accepted bool
	Text     string
}

// Step is the temperature increment applied on every regeneration.
const Step = 0.2

// Loop negotiates one artifact. Each invocation of Run owns fresh
// history and temperature state; loops never share state beyond the
// immutable change description passed in.
type Loop struct {
	Engine  Suggester
	Decider DecisionProvider
}

// Run generates suggestions until the user accepts or cancels. Every
// round performs exactly one generation call; on regeneration the
// rejected suggestion (when non-empty) joins the history and the
// temperature rises by Step, clamped at 1.0. A generation failure
// aborts the loop and is fatal to the caller.
func (l *Loop) Run(ctx context.Context, kind prompt.Kind, change string, hint prompt.TypeHint, base float64) (Outcome, error) {
	temperature := base
	var history []string

	for {
		suggestion, err := l.Engine.Suggest(ctx, suggest.Request{
			Kind:        kind,
			Change:      change,
			Hint:        hint,
			History:     history,
			Temperature: temperature,
		})
		if err != nil {
			return Outcome{}, err
		}

		decision, err := l.Decider.Decide(kind, suggestion)
		if err != nil {
			return Outcome{}, err
		}

		switch decision {
		case Accept:
			return Outcome{Accepted: true, Text: suggestion}, nil
		case Regenerate:
			if suggestion != "" {
				history = append(history, suggestion)
			}
			temperature = math.Min(1.0, temperature+Step)
		default:
			return Outcome{}, nil
		}
	}
}
