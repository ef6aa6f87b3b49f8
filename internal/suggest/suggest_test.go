package suggest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sprite-ai/gitscribe/internal/prompt"
)

// fakeGenerator returns canned responses and records every call.
type fakeGenerator struct {
	responses []string
	err       error

	prompts      []string
	temperatures []float64
	models       []string
}

func (f *fakeGenerator) Complete(ctx context.Context, p string, temperature float64, model string) (string, error) {
	f.prompts = append(f.prompts, p)
	f.temperatures = append(f.temperatures, temperature)
	f.models = append(f.models, model)
	if f.err != nil {
		return "", f.err
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

func TestSuggestReadmeCommit(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"docs: update readme"}}
	e := &Engine{Gen: gen, Model: "gpt-4o-mini", Lowercase: true}

	got, err := e.Suggest(context.Background(), Request{
		Kind:        prompt.CommitMessage,
		Change:      "diff --git a/README.md b/README.md\n+one line\n",
		Temperature: 0.3,
	})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if got != "docs: update readme" {
		t.Errorf("got %q, want %q", got, "docs: update readme")
	}
	if len(gen.temperatures) != 1 || gen.temperatures[0] != 0.3 {
		t.Errorf("generator saw temperatures %v, want [0.3]", gen.temperatures)
	}
	if gen.models[0] != "gpt-4o-mini" {
		t.Errorf("generator saw model %q", gen.models[0])
	}
}

func TestSuggestForwardsHistoryAndHint(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"feat: add login"}}
	e := &Engine{Gen: gen, Model: "gpt-4o-mini", Lowercase: true}

	_, err := e.Suggest(context.Background(), Request{
		Kind:        prompt.CommitMessage,
		Change:      "diff",
		Hint:        prompt.HintFeat,
		History:     []string{"feat: first try"},
		Temperature: 0.5,
	})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if !strings.Contains(gen.prompts[0], "feat: first try") {
		t.Error("prompt missing the rejected suggestion")
	}
	if !strings.Contains(gen.prompts[0], `"feat: "`) {
		t.Error("prompt missing the forced type instruction")
	}
}

func TestSuggestPrefixForcing(t *testing.T) {
	// Post-normalization, a hinted suggestion keeps its forced prefix
	// under both casing conventions.
	tests := []struct {
		lowercase bool
		raw       string
		want      string
	}{
		{true, "Feat: Add login", "feat: add login"},
		{false, "feat: add login", "feat: Add login"},
	}

	for _, tt := range tests {
		gen := &fakeGenerator{responses: []string{tt.raw}}
		e := &Engine{Gen: gen, Model: "m", Lowercase: tt.lowercase}
		got, err := e.Suggest(context.Background(), Request{
			Kind:        prompt.CommitMessage,
			Change:      "diff",
			Hint:        prompt.HintFeat,
			Temperature: 0.3,
		})
		if err != nil {
			t.Fatalf("Suggest: %v", err)
		}
		if !strings.HasPrefix(got, "feat: ") {
			t.Errorf("lowercase=%v: %q does not start with the forced prefix", tt.lowercase, got)
		}
		if got != tt.want {
			t.Errorf("lowercase=%v: got %q, want %q", tt.lowercase, got, tt.want)
		}
	}
}

func TestSuggestPropagatesGenerationError(t *testing.T) {
	genErr := errors.New("boom")
	gen := &fakeGenerator{err: genErr}
	e := &Engine{Gen: gen, Model: "m"}

	_, err := e.Suggest(context.Background(), Request{Kind: prompt.BranchName, Change: "diff"})
	if !errors.Is(err, genErr) {
		t.Errorf("expected wrapped generator error, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	lower := &Engine{Lowercase: true}
	mixed := &Engine{Lowercase: false}

	tests := []struct {
		name string
		e    *Engine
		kind prompt.Kind
		in   string
		want string
	}{
		{"commit lowercase", lower, prompt.CommitMessage, "Feat: Add Login", "feat: add login"},
		{"commit capitalize", mixed, prompt.CommitMessage, "feat:add login", "feat: Add login"},
		{"commit no colon", mixed, prompt.CommitMessage, "add login", "add login"},
		{"commit bracketed", mixed, prompt.CommitMessage, "feat: [wip] login", "feat: [wip] login"},
		{"commit empty description", mixed, prompt.CommitMessage, "feat:", "feat:"},
		{"branch trims", lower, prompt.BranchName, "  fix/payment-bug\n", "fix/payment-bug"},
		{"branch keeps case", lower, prompt.BranchName, "fix/Payment-Bug", "fix/Payment-Bug"},
		{"pr title", lower, prompt.PullRequestTitle, "FEAT:add login", "feat: Add login"},
		{"pr title no colon", lower, prompt.PullRequestTitle, "add login flow", "add login flow"},
		{"pr body untouched", lower, prompt.PullRequestBody, "## Problem\nstuff", "## Problem\nstuff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.e.Normalize(tt.kind, tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	engines := []*Engine{{Lowercase: true}, {Lowercase: false}}
	kinds := []prompt.Kind{
		prompt.CommitMessage, prompt.BranchName,
		prompt.PullRequestTitle, prompt.PullRequestBody,
	}
	inputs := []string{
		"feat: Add login",
		"FEAT:add login",
		"fix/payment-bug",
		"  spaced out  ",
		"no colon here",
		"feat: [wip] login",
		"feat:",
		"",
		"## Problem\nlong body\n\n## Solution\nmore",
	}

	for _, e := range engines {
		for _, kind := range kinds {
			for _, in := range inputs {
				once := e.Normalize(kind, in)
				twice := e.Normalize(kind, once)
				if once != twice {
					t.Errorf("lowercase=%v kind=%v: normalize not idempotent on %q: %q != %q",
						e.Lowercase, kind, in, once, twice)
				}
			}
		}
	}
}
