package solib

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLibrary(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, LibraryFilename(name))
	if err := os.WriteFile(path, []byte("not a real solib"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLibraryFilename(t *testing.T) {
	got := LibraryFilename("foo")
	want := solibPrefix + "foo" + solibExtension
	if got != want {
		t.Errorf("LibraryFilename(\"foo\") = %q, want %q", got, want)
	}
}

func TestFindLibraryPath(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	third := t.TempDir()
	expected := writeLibrary(t, second, "scouted")

	t.Setenv(searchPathVar, first+searchListSep+second+searchListSep+third)

	got := FindLibraryPath("scouted")
	if got != expected {
		t.Errorf("FindLibraryPath(\"scouted\") = %q, want %q", got, expected)
	}
}

func TestFindLibraryPathFirstMatchWins(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	expected := writeLibrary(t, first, "dup")
	writeLibrary(t, second, "dup")

	t.Setenv(searchPathVar, first+searchListSep+second)

	if got := FindLibraryPath("dup"); got != expected {
		t.Errorf("FindLibraryPath(\"dup\") = %q, want first match %q", got, expected)
	}
}

func TestFindLibraryPathMissing(t *testing.T) {
	t.Setenv(searchPathVar, t.TempDir())

	if got := FindLibraryPath("no-such-library-anywhere"); got != "" {
		t.Errorf("FindLibraryPath on missing library = %q, want \"\"", got)
	}
}

func TestFindLibraryPathEmptyVariable(t *testing.T) {
	t.Setenv(searchPathVar, "")

	if got := FindLibraryPath("no-such-library-anywhere"); got != "" {
		t.Errorf("FindLibraryPath with empty search variable = %q, want \"\"", got)
	}
}

func TestFindLibraryPathSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	// A directory with the library's name must not count as a match.
	if err := os.Mkdir(filepath.Join(dir, LibraryFilename("imposter")), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv(searchPathVar, dir)

	if got := FindLibraryPath("imposter"); got != "" {
		t.Errorf("FindLibraryPath matched a directory: %q", got)
	}
}

func TestSearchPathsPreservesSegments(t *testing.T) {
	t.Setenv(searchPathVar, "/x"+searchListSep+searchListSep+"/x"+searchListSep+"/y")

	dirs := SearchPaths()
	if includeWorkingDir {
		if len(dirs) < 1 {
			t.Fatal("expected working directory as first candidate")
		}
		dirs = dirs[1:]
	}

	want := []string{"/x", "", "/x", "/y"}
	if len(dirs) != len(want) {
		t.Fatalf("SearchPaths returned %d entries, want %d: %v", len(dirs), len(want), dirs)
	}
	for i := range want {
		if dirs[i] != want[i] {
			t.Errorf("SearchPaths[%d] = %q, want %q", i, dirs[i], want[i])
		}
	}
}

func TestSearchPathsEmptyVariable(t *testing.T) {
	t.Setenv(searchPathVar, "")

	dirs := SearchPaths()
	if includeWorkingDir {
		if len(dirs) != 1 {
			t.Errorf("expected only the working directory, got %v", dirs)
		}
		return
	}
	if len(dirs) != 0 {
		t.Errorf("SearchPaths with empty variable = %v, want empty", dirs)
	}
}

func TestFindLibraryIn(t *testing.T) {
	dir := t.TempDir()
	expected := writeLibrary(t, dir, "direct")

	if got := FindLibraryIn([]string{t.TempDir(), dir}, "direct"); got != expected {
		t.Errorf("FindLibraryIn = %q, want %q", got, expected)
	}
	if got := FindLibraryIn(nil, "direct"); got != "" {
		t.Errorf("FindLibraryIn(nil, ...) = %q, want \"\"", got)
	}
}
