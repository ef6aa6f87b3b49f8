package suggest

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sprite-ai/gitscribe/internal/prompt"
)

// Normalize applies the casing rule for the given kind. It is
// deterministic and idempotent: normalizing an already-normalized
// string returns it unchanged.
func (e *Engine) Normalize(kind prompt.Kind, s string) string {
	switch kind {
	case prompt.CommitMessage:
		if e.Lowercase {
			return strings.ToLower(s)
		}
		return capitalizeAfterColon(s, false)
	case prompt.BranchName:
		// Kebab-case slugs are case-sensitive by convention; trim only.
		return strings.TrimSpace(s)
	case prompt.PullRequestTitle:
		return capitalizeAfterColon(s, true)
	default:
		// Pull request bodies arrive already structured by the prompt.
		return s
	}
}

// capitalizeAfterColon splits on the first colon and rejoins as
// "prefix: Description". Bracketed descriptions are left alone, and a
// string without a colon passes through unchanged. When lowerPrefix is
// set the type prefix is also folded to lowercase.
func capitalizeAfterColon(s string, lowerPrefix bool) string {
	idx := strings.Index(s, ":")
	if idx < 0 {
		return s
	}

	prefix := s[:idx]
	if lowerPrefix {
		prefix = strings.ToLower(strings.TrimSpace(prefix))
	}

	desc := strings.TrimSpace(s[idx+1:])
	if desc == "" {
		return s
	}
	if !strings.HasPrefix(desc, "[") {
		desc = upperFirst(desc)
	}
	return prefix + ": " + desc
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
