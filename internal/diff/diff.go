// Package diff parses the staged-diff snapshot into a structured view
// for stats and preview display. The raw text stays the opaque change
// description forwarded to the model; parsing here is display-only.
package diff

import (
	"fmt"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
)

// LineOp classifies one line of a hunk.
type LineOp int

const (
	OpContext LineOp = iota
	OpAdd
	OpDelete
)

// Line is a single diff line with its leading marker stripped.
type Line struct {
	Op   LineOp
	Text string
}

// File is one file's worth of changes.
type File struct {
	OldName      string
	NewName      string
	IsNew        bool
	IsDeleted    bool
	IsRenamed    bool
	IsBinary     bool
	Hunks        [][]Line
	AddedLines   int
	DeletedLines int
}

// Name returns the display name for the file.
func (f *File) Name() string {
	if f.IsRenamed {
		return fmt.Sprintf("%s -> %s", f.OldName, f.NewName)
	}
	if f.IsDeleted {
		return f.OldName
	}
	if f.NewName != "" {
		return f.NewName
	}
	return f.OldName
}

// Status returns the single-letter change status.
func (f *File) Status() string {
	switch {
	case f.IsNew:
		return "A"
	case f.IsDeleted:
		return "D"
	case f.IsRenamed:
		return "R"
	default:
		return "M"
	}
}

// Snapshot is the parsed view of one captured staged diff.
type Snapshot struct {
	Raw   string
	Files []*File
}

// Empty reports whether there is nothing staged.
func (s *Snapshot) Empty() bool {
	return len(s.Files) == 0
}

// Stats returns aggregate statistics.
func (s *Snapshot) Stats() (files, added, deleted int) {
	files = len(s.Files)
	for _, f := range s.Files {
		added += f.AddedLines
		deleted += f.DeletedLines
	}
	return
}

// Parse reads a unified diff string into a Snapshot.
func Parse(raw string) (*Snapshot, error) {
	parsed, _, err := gitdiff.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing diff: %w", err)
	}

	snap := &Snapshot{Raw: raw}
	for _, f := range parsed {
		df := &File{
			OldName:   f.OldName,
			NewName:   f.NewName,
			IsNew:     f.IsNew,
			IsDeleted: f.IsDelete,
			IsRenamed: f.IsRename,
			IsBinary:  f.IsBinary,
		}

		for _, frag := range f.TextFragments {
			hunk := make([]Line, 0, len(frag.Lines))
			for _, line := range frag.Lines {
				l := Line{Text: strings.TrimSuffix(line.Line, "\n")}
				switch line.Op {
				case gitdiff.OpAdd:
					l.Op = OpAdd
					df.AddedLines++
				case gitdiff.OpDelete:
					l.Op = OpDelete
					df.DeletedLines++
				default:
					l.Op = OpContext
				}
				hunk = append(hunk, l)
			}
			df.Hunks = append(df.Hunks, hunk)
		}

		snap.Files = append(snap.Files, df)
	}

	return snap, nil
}
