//go:build !windows && !darwin

package solib

const (
	searchPathVar     = "LD_LIBRARY_PATH"
	searchListSep     = ":"
	solibPrefix       = "lib"
	solibExtension    = ".so"
	includeWorkingDir = false
)
