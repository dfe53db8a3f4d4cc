package cli

import (
	"fmt"
	"io"

	"github.com/libscout-dev/libscout/internal/manifest"
	"github.com/libscout-dev/libscout/solib"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <manifest>",
	Short: "Check a library manifest against the search path",
	Long: `Validate a library manifest file against its schema, then resolve
each declared library on the search path. Libraries with a min_version are
matched against their versioned variants. Missing optional libraries are
reported as warnings; missing required ones fail the check.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		result, err := manifest.ValidateFile(path)
		if err != nil {
			return fmt.Errorf("validating manifest: %w", err)
		}
		if !result.Valid {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Manifest %s is invalid:\n", path)
			for _, issue := range result.Issues {
				fmt.Fprintf(w, "  %s: %s\n", issue.Path, issue.Message)
			}
			return fmt.Errorf("manifest failed schema validation")
		}

		m, err := manifest.ParseFile(path)
		if err != nil {
			return fmt.Errorf("parsing manifest: %w", err)
		}

		missing, err := runManifestCheck(cmd.OutOrStdout(), m, searchDirs())
		if err != nil {
			return err
		}
		if missing > 0 {
			return fmt.Errorf("%d required libraries missing", missing)
		}
		return nil
	},
}

// requirementStatus is the outcome of resolving one manifest entry.
type requirementStatus struct {
	Path      string // resolved file, empty when nothing was found
	Found     bool
	Satisfied bool // found and meeting the version constraint, if any
}

// resolveRequirement locates a required library in dirs. Entries without a
// min_version accept either the plain platform filename or any versioned
// variant. Entries with a min_version are satisfied only by a versioned
// variant meeting the constraint; a plain file is still reported as found
// so the output can say what is on disk.
func resolveRequirement(dirs []string, req manifest.LibraryRequirement) (requirementStatus, error) {
	var status requirementStatus

	if req.MinVersion == "" {
		if path := solib.FindLibraryIn(dirs, req.Name); path != "" {
			return requirementStatus{Path: path, Found: true, Satisfied: true}, nil
		}
		if found := solib.FindLibraryVersionsIn(dirs, req.Name); len(found) > 0 {
			return requirementStatus{Path: found[0].Path, Found: true, Satisfied: true}, nil
		}
		return status, nil
	}

	found := solib.FindLibraryVersionsIn(dirs, req.Name)
	best, err := solib.BestVersion(found, ">= "+req.MinVersion)
	if err != nil {
		return status, fmt.Errorf("library %q: invalid min_version %q: %w", req.Name, req.MinVersion, err)
	}
	if best != nil {
		return requirementStatus{Path: best.Path, Found: true, Satisfied: true}, nil
	}

	// Nothing satisfies the constraint; report whatever is present.
	if len(found) > 0 {
		return requirementStatus{Path: found[0].Path, Found: true}, nil
	}
	if path := solib.FindLibraryIn(dirs, req.Name); path != "" {
		return requirementStatus{Path: path, Found: true}, nil
	}
	return status, nil
}

// runManifestCheck resolves every manifest entry, prints one status line
// per library, and returns the count of unsatisfied required entries.
func runManifestCheck(w io.Writer, m *manifest.LibraryManifest, dirs []string) (int, error) {
	fmt.Fprintf(w, "Manifest check: %s\n", m.Name)

	missing := 0
	for _, req := range m.Libraries {
		status, err := resolveRequirement(dirs, req)
		if err != nil {
			return 0, err
		}

		switch {
		case status.Satisfied:
			fmt.Fprintf(w, "  [ OK ] %s  %s\n", req.Name, status.Path)
		case status.Found:
			fmt.Fprintf(w, "  [MISS] %s  found %s but need >= %s\n", req.Name, status.Path, req.MinVersion)
			if !req.Optional {
				missing++
			}
		case req.Optional:
			fmt.Fprintf(w, "  [WARN] %s  optional, not found\n", req.Name)
		default:
			fmt.Fprintf(w, "  [MISS] %s  not found (looked for %s)\n", req.Name, solib.LibraryFilename(req.Name))
			missing++
		}
	}
	return missing, nil
}
