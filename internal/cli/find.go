package cli

import (
	"encoding/json"
	"fmt"

	"github.com/libscout-dev/libscout/solib"
	"github.com/spf13/cobra"
)

var (
	findJSON bool
	findAll  bool
)

func init() {
	findCmd.Flags().BoolVar(&findJSON, "json", false, "Output in JSON format")
	findCmd.Flags().BoolVar(&findAll, "all", false, "List every match instead of the first (each path reported once)")
	rootCmd.AddCommand(findCmd)
}

// findResult represents a library lookup for display.
type findResult struct {
	Name     string   `json:"name"`
	Filename string   `json:"filename"`
	Found    bool     `json:"found"`
	Paths    []string `json:"paths,omitempty"`
}

var findCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Locate a shared library by base name",
	Long: `Locate a shared library on the search path by its base name.
The platform filename is computed automatically: "foo" is looked up as
libfoo.so, libfoo.dylib, or foo.dll depending on the host. The first
candidate directory containing the file wins unless --all is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	name := args[0]
	result := findResult{
		Name:     name,
		Filename: solib.LibraryFilename(name),
	}

	dirs := searchDirs()
	if findAll {
		result.Paths = collectMatches(dirs, name)
	} else if path := solib.FindLibraryIn(dirs, name); path != "" {
		result.Paths = []string{path}
	}
	result.Found = len(result.Paths) > 0

	if findJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		if !result.Found {
			return errNotFound(name)
		}
		return nil
	}

	if !result.Found {
		return errNotFound(name)
	}
	for _, path := range result.Paths {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

// collectMatches scans the whole candidate list in order and returns each
// distinct resolved path once: duplicate search segments resolve to the
// same file and would otherwise repeat it.
func collectMatches(dirs []string, name string) []string {
	seen := make(map[string]bool)
	var paths []string
	for len(dirs) > 0 {
		path := solib.FindLibraryIn(dirs, name)
		if path == "" {
			break
		}
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
		dirs = remainingAfterMatch(dirs, name)
	}
	return paths
}

// remainingAfterMatch returns the tail of dirs after the directory that
// produced the current first match, so --all can continue the scan.
func remainingAfterMatch(dirs []string, name string) []string {
	for i := range dirs {
		if solib.FindLibraryIn(dirs[i:i+1], name) != "" {
			return dirs[i+1:]
		}
	}
	return nil
}

func errNotFound(name string) error {
	return fmt.Errorf("library %q not found on search path (looked for %s)", name, solib.LibraryFilename(name))
}
