package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/libscout-dev/libscout/fspath"
	"github.com/libscout-dev/libscout/internal/config"
	"github.com/libscout-dev/libscout/solib"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the library search environment",
	Long: `Run diagnostic checks on the search environment: whether the
platform search variable is set, whether each candidate directory exists
and is a directory, and whether configured extra paths are usable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runDoctor(cmd.OutOrStdout())
		return nil
	},
}

func runDoctor(w io.Writer) {
	fmt.Fprintln(w, "Search environment check:")

	variable := solib.SearchPathVar()
	if value := os.Getenv(variable); value == "" {
		fmt.Fprintf(w, "  [WARN] %s is unset or empty\n", variable)
	} else {
		fmt.Fprintf(w, "  [ OK ] %s is set\n", variable)
	}

	for _, dir := range solib.SearchPaths() {
		checkCandidateDir(w, dir, "")
	}
	for _, dir := range config.ExtraSearchPaths() {
		checkCandidateDir(w, dir, " (from config)")
	}

	if fspath.IsRegularFile(config.FilePath()) {
		fmt.Fprintf(w, "  [ OK ] config file %s\n", config.FilePath())
	} else {
		fmt.Fprintf(w, "  [ -- ] no config file at %s\n", config.FilePath())
	}
}

func checkCandidateDir(w io.Writer, dir, origin string) {
	switch {
	case dir == "":
		fmt.Fprintf(w, "  [WARN] empty search path segment%s\n", origin)
	case !fspath.Exists(dir):
		fmt.Fprintf(w, "  [MISS] %s does not exist%s\n", dir, origin)
	case !fspath.IsDirectory(dir):
		fmt.Fprintf(w, "  [MISS] %s is not a directory%s\n", dir, origin)
	default:
		fmt.Fprintf(w, "  [ OK ] %s%s\n", dir, origin)
	}
}
