package solib

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/libscout-dev/libscout/fspath"
)

// SearchPathVar returns the name of the environment variable consulted on
// this platform (PATH, DYLD_LIBRARY_PATH, or LD_LIBRARY_PATH).
func SearchPathVar() string {
	return searchPathVar
}

// LibraryFilename returns the platform-specific filename for a library
// base name, e.g. "foo" becomes "libfoo.so", "libfoo.dylib", or "foo.dll".
func LibraryFilename(name string) string {
	return solibPrefix + name + solibExtension
}

// SearchPaths returns the ordered candidate directories for library
// lookups. The list mirrors the raw environment variable: order is
// significant, duplicates and empty segments are kept, and an unset or
// empty variable yields no entries. On Windows the working directory is
// prepended.
func SearchPaths() []string {
	var dirs []string
	if includeWorkingDir {
		if cwd, err := fspath.CurrentDir(); err == nil {
			dirs = append(dirs, cwd)
		}
	}
	value := os.Getenv(searchPathVar)
	if value == "" {
		return dirs
	}
	return append(dirs, strings.Split(value, searchListSep)...)
}

// FindLibraryIn scans dirs in order for the library's platform filename
// and returns the first joined path that is a regular file, or "" when no
// directory contains it.
func FindLibraryIn(dirs []string, name string) string {
	filename := LibraryFilename(name)
	for _, dir := range dirs {
		candidate := filepath.Join(dir, filename)
		if fspath.IsRegularFile(candidate) {
			return candidate
		}
	}
	return ""
}

// FindLibraryPath locates the library named name on the platform search
// path, returning the full path of the first match or "" when not found.
func FindLibraryPath(name string) string {
	return FindLibraryIn(SearchPaths(), name)
}
