package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sprite-ai/gitscribe/internal/diff"
)

// RenderSnapshot renders a parsed staged diff with per-file headers,
// syntax-highlighted context lines, and colored add/delete lines.
func RenderSnapshot(snap *diff.Snapshot) string {
	var b strings.Builder

	for i, f := range snap.Files {
		if i > 0 {
			b.WriteString("\n")
		}
		header := fmt.Sprintf("%s %s  +%d -%d", f.Status(), f.Name(), f.AddedLines, f.DeletedLines)
		b.WriteString(fileHeaderStyle.Render(header))
		b.WriteString("\n")

		if f.IsBinary {
			b.WriteString(infoStyle.Render("  (binary file)"))
			b.WriteString("\n")
			continue
		}

		for j, hunk := range f.Hunks {
			if j > 0 {
				b.WriteString(infoStyle.Render("  ···"))
				b.WriteString("\n")
			}
			b.WriteString(renderHunk(f.Name(), hunk))
		}
	}

	return b.String()
}

func renderHunk(filename string, hunk []diff.Line) string {
	texts := make([]string, len(hunk))
	for i, l := range hunk {
		texts[i] = l.Text
	}
	highlighted := diff.Highlight(filename, texts)

	var b strings.Builder
	for i, l := range hunk {
		switch l.Op {
		case diff.OpAdd:
			b.WriteString(addedStyle.Render("+ " + l.Text))
		case diff.OpDelete:
			b.WriteString(deletedStyle.Render("- " + l.Text))
		default:
			b.WriteString("  ")
			b.WriteString(renderTokens(highlighted[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderTokens(hl diff.HighlightedLine) string {
	var b strings.Builder
	for _, tok := range hl.Tokens {
		if tok.Color == "" {
			b.WriteString(tok.Text)
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(tok.Color)).Render(tok.Text))
	}
	return b.String()
}
