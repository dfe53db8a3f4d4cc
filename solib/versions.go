package solib

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// LibraryVersion is one versioned variant of a library discovered on the
// search path.
type LibraryVersion struct {
	Path    string
	Version *semver.Version
}

// FindLibraryVersions scans the platform search path for linker-style
// versioned variants of a library: files named "<filename>.<version>",
// e.g. libfoo.so.1.2.3. Entries whose suffix does not parse as a version
// are skipped. Results are sorted newest-first; when the same version
// appears in several directories the earliest directory wins, matching
// the first-match policy of FindLibraryPath.
func FindLibraryVersions(name string) []LibraryVersion {
	return FindLibraryVersionsIn(SearchPaths(), name)
}

// FindLibraryVersionsIn is FindLibraryVersions over an explicit directory
// list.
func FindLibraryVersionsIn(dirs []string, name string) []LibraryVersion {
	prefix := LibraryFilename(name) + "."
	seen := make(map[string]bool)
	var found []LibraryVersion

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
				continue
			}
			v, err := semver.NewVersion(strings.TrimPrefix(entry.Name(), prefix))
			if err != nil {
				continue
			}
			if seen[v.String()] {
				continue
			}
			seen[v.String()] = true
			found = append(found, LibraryVersion{
				Path:    filepath.Join(dir, entry.Name()),
				Version: v,
			})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Version.GreaterThan(found[j].Version)
	})
	return found
}

// BestVersion returns the newest discovered variant satisfying the semver
// constraint, or nil when none does. An empty constraint accepts any
// version.
func BestVersion(versions []LibraryVersion, constraint string) (*LibraryVersion, error) {
	if len(versions) == 0 {
		return nil, nil
	}
	if constraint == "" {
		v := versions[0]
		return &v, nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, err
	}
	for i := range versions {
		if c.Check(versions[i].Version) {
			return &versions[i], nil
		}
	}
	return nil, nil
}
