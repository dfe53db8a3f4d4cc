package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/libscout-dev/libscout/solib"
)

func TestRemainingAfterMatch(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	third := t.TempDir()
	for _, dir := range []string{first, third} {
		path := filepath.Join(dir, solib.LibraryFilename("multi"))
		if err := os.WriteFile(path, []byte("stub"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	dirs := []string{first, second, third}

	rest := remainingAfterMatch(dirs, "multi")
	if len(rest) != 2 || rest[0] != second {
		t.Fatalf("remainingAfterMatch = %v, want tail starting at %q", rest, second)
	}

	// Continuing the scan finds the later copy.
	next := solib.FindLibraryIn(rest, "multi")
	want := filepath.Join(third, solib.LibraryFilename("multi"))
	if next != want {
		t.Errorf("next match = %q, want %q", next, want)
	}

	if rest := remainingAfterMatch([]string{second}, "multi"); rest != nil {
		t.Errorf("remainingAfterMatch with no match = %v, want nil", rest)
	}
}

func TestCollectMatches(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	for _, dir := range []string{first, second} {
		path := filepath.Join(dir, solib.LibraryFilename("dupe"))
		if err := os.WriteFile(path, []byte("stub"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	// Duplicate segments are preserved in the search list but must not
	// repeat the resolved path.
	paths := collectMatches([]string{first, first, second}, "dupe")
	if len(paths) != 2 {
		t.Fatalf("collectMatches = %v, want 2 distinct paths", paths)
	}
	if paths[0] != filepath.Join(first, solib.LibraryFilename("dupe")) {
		t.Errorf("paths[0] = %q, want match in first directory", paths[0])
	}
	if paths[1] != filepath.Join(second, solib.LibraryFilename("dupe")) {
		t.Errorf("paths[1] = %q, want match in second directory", paths[1])
	}

	if paths := collectMatches([]string{t.TempDir()}, "dupe"); paths != nil {
		t.Errorf("collectMatches with no match = %v, want nil", paths)
	}
}
