package find

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mkfiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRun_MatchesTag(t *testing.T) {
	dir := t.TempDir()
	mkfiles(t, dir, "doc{alpha}{beta}.txt", "note{beta}.txt", "other{alpha}.txt")

	var buf strings.Builder
	result, err := Run(&buf, dir, "beta", Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Paths) != 2 {
		t.Fatalf("Paths = %v, want 2", result.Paths)
	}
	// Sorted lexicographically
	if !strings.HasSuffix(result.Paths[0], "doc{alpha}{beta}.txt") || !strings.HasSuffix(result.Paths[1], "note{beta}.txt") {
		t.Errorf("Paths = %v", result.Paths)
	}
	if !strings.Contains(buf.String(), "note{beta}.txt") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestRun_CaseSensitive(t *testing.T) {
	dir := t.TempDir()
	mkfiles(t, dir, "doc{Tag}.txt")

	result, err := Run(io.Discard, dir, "tag", Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Paths) != 0 {
		t.Errorf("Paths = %v, want none for differing case", result.Paths)
	}
}

func TestRun_RecursiveAndHidden(t *testing.T) {
	dir := t.TempDir()
	mkfiles(t, dir, "top{x}.txt", "sub/inner{x}.txt", ".hidden{x}.txt")

	result, err := Run(io.Discard, dir, "x", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Paths) != 1 {
		t.Errorf("non-recursive Paths = %v, want 1", result.Paths)
	}

	result, err = Run(io.Discard, dir, "x", Options{Recursive: true, Hidden: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Paths) != 3 {
		t.Errorf("recursive+hidden Paths = %v, want 3", result.Paths)
	}
}

func TestRun_NullOutput(t *testing.T) {
	dir := t.TempDir()
	mkfiles(t, dir, "a{x}.txt", "b{x}.txt")

	var buf strings.Builder
	if _, err := Run(&buf, dir, "x", Options{Null: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Count(out, "\x00") != 1 || strings.HasSuffix(out, "\x00") || strings.Contains(out, "\n") {
		t.Errorf("null output = %q", out)
	}
}

func TestRun_TreeOutput(t *testing.T) {
	dir := t.TempDir()
	mkfiles(t, dir, "sub/a{x}.txt", "b{x}.txt")

	var buf strings.Builder
	if _, err := Run(&buf, dir, "x", Options{Recursive: true, Tree: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "└──") || !strings.Contains(out, "sub") {
		t.Errorf("tree output = %q", out)
	}
}

func TestRun_InvalidPath(t *testing.T) {
	if _, err := Run(io.Discard, filepath.Join(t.TempDir(), "missing"), "x", Options{}); err == nil {
		t.Fatal("Run(missing) error = nil, want invalid path")
	}
}
