// Package fspath provides thin cross-platform wrappers around filesystem
// existence checks, directory creation and removal, and lexical extension
// trimming. Predicate operations never return an error: absence and
// inaccessibility both collapse to false, so callers that only care about
// "is it there" stay branch-free. Operations that need to report why they
// failed (FileSize, CurrentDir) return the underlying OS error instead.
package fspath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Exists reports whether path refers to any existing filesystem object.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsRegularFile reports whether path refers to an existing regular file.
// Returns false on any access error.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDirectory reports whether path refers to an existing directory.
// Returns false on any access error.
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileSize returns the size of the file at path in bytes.
// Unlike the predicate helpers it surfaces the OS error, so callers can
// distinguish a missing file from an unreadable one.
func FileSize(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("sizing %s: %w", path, err)
	}
	return uint64(info.Size()), nil
}

// TempDir returns the host's directory for temporary files.
func TempDir() string {
	return os.TempDir()
}

// CurrentDir returns the process's working directory, surfacing the OS
// error when it cannot be determined.
func CurrentDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return dir, nil
}

// CreateDirectories creates path and all missing ancestors. It reports
// whether anything new was created: an already existing path yields false
// without error. Any failure also yields false.
func CreateDirectories(path string) bool {
	if Exists(path) {
		return false
	}
	return os.MkdirAll(path, 0755) == nil
}

// Remove deletes a single file or empty directory. Returns false if the
// path does not exist or the deletion fails.
func Remove(path string) bool {
	return os.Remove(path) == nil
}

// RemoveAll deletes path and, if it is a directory, everything beneath it.
// Non-directories (including symlinks, which are never followed) are
// removed directly. Directories are cleared child-first, aborting on the
// first child that cannot be removed, then removed themselves. Success is
// judged by the post-condition that path no longer exists, not by the
// individual remove calls. Sibling order is whatever the OS enumerates.
func RemoveAll(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return Remove(path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			if !RemoveAll(child) {
				return false
			}
		} else if !Remove(child) {
			return false
		}
	}

	if !Remove(path) {
		return false
	}
	return !Exists(path)
}

// RemoveExtension truncates path at its last '.' character, n times.
// The extension is purely lexical: everything from the last dot of the
// whole string to its end, with no filesystem involvement. Once no dot
// remains the path is returned as truncated so far.
func RemoveExtension(path string, n int) string {
	for i := 0; i < n; i++ {
		dot := strings.LastIndexByte(path, '.')
		if dot < 0 {
			return path
		}
		path = path[:dot]
	}
	return path
}
