package llm

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"docs: update readme", "docs: update readme"},
		{"  docs: update readme \n", "docs: update readme"},
		{"```\nfeat: add login\n```", "feat: add login"},
		{"`fix/payment-bug`", "fix/payment-bug"},
		{"```", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
