//go:build windows

package solib

// Windows resolves DLLs from PATH. The working directory is prepended to
// the candidate list to support containerized deployments where libraries
// sit next to the executable.
const (
	searchPathVar     = "PATH"
	searchListSep     = ";"
	solibPrefix       = ""
	solibExtension    = ".dll"
	includeWorkingDir = true
)
