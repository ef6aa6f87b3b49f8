// Package prompt renders the instruction text sent to the completion
// service for each artifact kind. Building a prompt is pure string
// composition and never fails.
package prompt

import (
	"fmt"
	"strings"
)

// Kind selects the artifact being generated. It picks the instruction
// template and the normalization rule applied downstream.
type Kind int

const (
	CommitMessage Kind = iota
	BranchName
	PullRequestTitle
	PullRequestBody
)

func (k Kind) String() string {
	switch k {
	case CommitMessage:
		return "commit message"
	case BranchName:
		return "branch name"
	case PullRequestTitle:
		return "pull request title"
	case PullRequestBody:
		return "pull request description"
	default:
		return "unknown"
	}
}

// TypeHint is an optional conventional-commit type forced onto the
// suggestion. The zero value means "auto": the model infers the type
// from the diff.
type TypeHint string

const (
	HintAuto TypeHint = ""
	HintFeat TypeHint = "feat"
	HintFix  TypeHint = "fix"
)

// ParseTypeHint maps a flag value to a TypeHint. "auto" and the empty
// string both mean no hint.
func ParseTypeHint(s string) (TypeHint, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return HintAuto, nil
	case "feat":
		return HintFeat, nil
	case "fix":
		return HintFix, nil
	default:
		return HintAuto, fmt.Errorf("unknown change type %q (want auto, feat or fix)", s)
	}
}

// Prefixes is the conventional-commit type set offered to the model
// when no hint is given.
var Prefixes = []string{
	"feat", "fix", "chore", "refactor", "test", "docs",
	"style", "perf", "ci", "build", "revert",
}

// KnownPrefix reports whether s is one of the conventional types.
func KnownPrefix(s string) bool {
	for _, p := range Prefixes {
		if s == p {
			return true
		}
	}
	return false
}

// rules holds the per-kind pieces of a prompt. The hinted variant is
// used when the caller forces a change type, unhinted when the model
// should infer one.
type rules struct {
	intro    string
	hinted   func(TypeHint) string
	unhinted string
	outro    string
}

var table = map[Kind]rules{
	CommitMessage: {
		intro: "You are an assistant that generates commit messages in the conventional commits format.\n" +
			"Based on the git diff below, identify the MOST SIGNIFICANT change and generate a short, clear commit message in English about it.\n" +
			"Focus on the main purpose of the change.\n",
		hinted: func(h TypeHint) string {
			return fmt.Sprintf("Start the message with \"%s: \" and start the text after the colon with a capital letter.\n", h)
		},
		unhinted: "Use prefixes like " + strings.Join(Prefixes, ", ") + ".\n",
		outro: "Only the message, with no extra explanations or remarks.\n" +
			"Generate ONLY ONE commit message, with no line breaks or special formatting.\n" +
			"Nothing but a commit message.",
	},
	BranchName: {
		intro: "You are an assistant that generates Git branch names.\n" +
			"Based on the git diff below, identify the MOST SIGNIFICANT change and generate a short, descriptive branch name in English for it, " +
			"using hyphens to separate words and following the 'type/short-description' format.\n" +
			"The name should reflect the main purpose of the changes.\n",
		hinted: func(h TypeHint) string {
			return fmt.Sprintf("Start the branch name with '%s/'.\n", h)
		},
		unhinted: "Use prefixes like " + strings.Join(Prefixes, "/, ") + "/.\n" +
			"Examples: feat/add-user-login, fix/resolve-payment-bug, chore/update-dependencies.\n",
		outro: "Generate ONLY the branch name, with no extra explanations or remarks.",
	},
	PullRequestTitle: {
		intro: "You are an assistant that writes pull request titles.\n" +
			"Summarize the ENTIRE accumulated diff below in ONE concise title, covering the overall purpose of the changes rather than a single edit.\n" +
			"Use the 'type: Description' format, with a lowercase conventional-commit type and a capitalized description after the colon.\n",
		hinted: func(h TypeHint) string {
			return fmt.Sprintf("Use '%s' as the type.\n", h)
		},
		unhinted: "Choose the type from " + strings.Join(Prefixes, ", ") + ".\n",
		outro:    "Generate ONLY the title, with no extra explanations or remarks.",
	},
	PullRequestBody: {
		intro: "You are an assistant that writes pull request descriptions.\n" +
			"Based on the git diff below, write a structured description with exactly these Markdown sections, in this order: '## Problem', '## Solution', '## Impact'.\n" +
			"Describe the problem being addressed, the implemented solution, and the expected impact of the change.\n",
		hinted: func(h TypeHint) string {
			return fmt.Sprintf("Frame the description as a %s change.\n", h)
		},
		unhinted: "Infer the nature of the change from the diff.\n",
		outro:    "Start the output exactly at the first section header, with no preamble, code fencing, or closing remarks.",
	},
}

// Build renders the full prompt for one generation attempt: the
// per-kind instructions, the non-repetition clause when there are
// rejected suggestions, and finally the raw diff behind a delimiter.
func Build(kind Kind, change string, hint TypeHint, history []string) string {
	r := table[kind]

	var b strings.Builder
	b.WriteString(r.intro)
	if hint != HintAuto {
		b.WriteString(r.hinted(hint))
	} else {
		b.WriteString(r.unhinted)
	}
	b.WriteString(r.outro)

	if len(history) > 0 {
		b.WriteString("\n\nCrucially, provide a different and unique suggestion from the ones I have already rejected:\n- ")
		b.WriteString(strings.Join(history, "\n- "))
	}

	b.WriteString("\n\nDiff:\n")
	b.WriteString(change)
	return b.String()
}
