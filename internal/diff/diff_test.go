package diff

import (
	"testing"
)

const sampleDiff = `diff --git a/hello.go b/hello.go
new file mode 100644
index 0000000..e69de29
--- /dev/null
+++ b/hello.go
@@ -0,0 +1,11 @@
+package main
+
+import "fmt"
+
+func main() {
+	fmt.Println("hello")
+}
+
+func add(a, b int) int {
+	return a + b
+}
diff --git a/readme.md b/readme.md
index abc1234..def5678 100644
--- a/readme.md
+++ b/readme.md
@@ -1,3 +1,4 @@
 # Project

-Old description
+New description
+Added line
`

func TestParse(t *testing.T) {
	snap, err := Parse(sampleDiff)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(snap.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(snap.Files))
	}

	f0 := snap.Files[0]
	if !f0.IsNew || f0.Status() != "A" {
		t.Error("expected hello.go to be a new file")
	}
	if f0.Name() != "hello.go" {
		t.Errorf("expected name 'hello.go', got %q", f0.Name())
	}
	if f0.AddedLines != 11 {
		t.Errorf("expected 11 added lines, got %d", f0.AddedLines)
	}

	f1 := snap.Files[1]
	if f1.Name() != "readme.md" {
		t.Errorf("expected name 'readme.md', got %q", f1.Name())
	}
	if f1.Status() != "M" {
		t.Errorf("expected status M, got %q", f1.Status())
	}
	if f1.AddedLines != 2 || f1.DeletedLines != 1 {
		t.Errorf("expected +2 -1, got +%d -%d", f1.AddedLines, f1.DeletedLines)
	}

	if len(f1.Hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(f1.Hunks))
	}
	hunk := f1.Hunks[0]
	if hunk[0].Op != OpContext || hunk[0].Text != "# Project" {
		t.Errorf("unexpected first hunk line: %+v", hunk[0])
	}
	if hunk[2].Op != OpDelete || hunk[2].Text != "Old description" {
		t.Errorf("unexpected deleted line: %+v", hunk[2])
	}
	if hunk[3].Op != OpAdd || hunk[3].Text != "New description" {
		t.Errorf("unexpected added line: %+v", hunk[3])
	}

	files, added, deleted := snap.Stats()
	if files != 2 || added != 13 || deleted != 1 {
		t.Errorf("stats: got %d files +%d -%d, want 2 files +13 -1", files, added, deleted)
	}
}

func TestParseEmpty(t *testing.T) {
	snap, err := Parse("")
	if err != nil {
		t.Fatalf("Parse empty failed: %v", err)
	}
	if !snap.Empty() {
		t.Errorf("expected empty snapshot, got %d files", len(snap.Files))
	}
}

func TestParseRawPreserved(t *testing.T) {
	snap, err := Parse(sampleDiff)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if snap.Raw != sampleDiff {
		t.Error("snapshot does not preserve the raw diff text")
	}
}
