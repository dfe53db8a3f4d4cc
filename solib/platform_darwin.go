//go:build darwin

package solib

const (
	searchPathVar     = "DYLD_LIBRARY_PATH"
	searchListSep     = ":"
	solibPrefix       = "lib"
	solibExtension    = ".dylib"
	includeWorkingDir = false
)
