package cli

import (
	"encoding/json"
	"fmt"

	"github.com/libscout-dev/libscout/fspath"
	"github.com/libscout-dev/libscout/internal/config"
	"github.com/libscout-dev/libscout/solib"
	"github.com/spf13/cobra"
)

var pathsJSON bool

func init() {
	pathsCmd.Flags().BoolVar(&pathsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(pathsCmd)
}

// pathsOutput represents the effective search order for display.
type pathsOutput struct {
	Variable    string   `json:"variable"`
	Directories []string `json:"directories"`
	ExtraPaths  []string `json:"extra_paths,omitempty"`
}

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the candidate directories in search order",
	Long: `Print the ordered list of directories libscout scans for
libraries: the platform search variable split into segments (order,
duplicates, and empty segments preserved), followed by any extra
directories from the configuration.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := pathsOutput{
			Variable:    solib.SearchPathVar(),
			Directories: solib.SearchPaths(),
			ExtraPaths:  config.ExtraSearchPaths(),
		}

		if pathsJSON {
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling paths: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Search variable: %s\n", out.Variable)
		if len(out.Directories) == 0 && len(out.ExtraPaths) == 0 {
			fmt.Fprintln(w, "No candidate directories (variable unset or empty)")
			return nil
		}
		for i, dir := range out.Directories {
			fmt.Fprintf(w, "%3d. %s%s\n", i+1, dir, annotateDir(dir))
		}
		for i, dir := range out.ExtraPaths {
			fmt.Fprintf(w, "%3d. %s (from config)%s\n", len(out.Directories)+i+1, dir, annotateDir(dir))
		}
		return nil
	},
}

// annotateDir flags entries that will not yield matches so users can spot
// stale search paths at a glance.
func annotateDir(dir string) string {
	if dir == "" {
		return " (empty segment)"
	}
	if !fspath.IsDirectory(dir) {
		return " (missing)"
	}
	return ""
}
