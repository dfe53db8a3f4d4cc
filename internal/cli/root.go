// Package cli wires the libscout commands. Each command lives in its own
// file and registers itself with the root command in init().
package cli

import (
	"fmt"
	"os"

	"github.com/libscout-dev/libscout/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   "libscout",
	Short: "Locate shared libraries on the platform search path",
	Long: `libscout inspects the platform's dynamic-library search path
(PATH, DYLD_LIBRARY_PATH, or LD_LIBRARY_PATH depending on the host),
locates shared libraries by base name, and checks deployments against
library manifests.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
