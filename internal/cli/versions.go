package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/libscout-dev/libscout/solib"
	"github.com/spf13/cobra"
)

var versionsJSON bool

func init() {
	versionsCmd.Flags().BoolVar(&versionsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(versionsCmd)
}

// versionEntry represents one versioned variant for display.
type versionEntry struct {
	Version string `json:"version"`
	Path    string `json:"path"`
}

var versionsCmd = &cobra.Command{
	Use:   "versions <name>",
	Short: "List versioned variants of a library",
	Long: `List linker-convention versioned variants of a library found on
the search path (for example libfoo.so.1.2.3), newest first. Duplicate
versions in later directories are shadowed by earlier ones.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		found := solib.FindLibraryVersionsIn(searchDirs(), name)

		var entries []versionEntry
		for _, lv := range found {
			entries = append(entries, versionEntry{
				Version: lv.Version.String(),
				Path:    lv.Path,
			})
		}

		if versionsJSON {
			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling versions: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		if len(entries) == 0 {
			return fmt.Errorf("no versioned variants of %q found (looked for %s.*)",
				name, solib.LibraryFilename(name))
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "VERSION\tPATH")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\n", e.Version, e.Path)
		}
		return tw.Flush()
	},
}
