package cli

import (
	"github.com/libscout-dev/libscout/internal/config"
	"github.com/libscout-dev/libscout/solib"
)

// searchDirs returns the effective candidate directories for CLI lookups:
// the platform search path followed by any configured extra directories.
// The library-level FindLibraryPath never sees the extras; they are a
// tool-side convenience only.
func searchDirs() []string {
	return append(solib.SearchPaths(), config.ExtraSearchPaths()...)
}
