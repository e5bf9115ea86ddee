package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajxudir/depcheck/pkg/errors"
	"github.com/ajxudir/depcheck/pkg/manifest"
)

var (
	requiresManifestFlag string
	requiresDirFlag      string
)

var requiresCmd = &cobra.Command{
	Use:   "requires",
	Short: "List required dependencies as requires statements",
	Long:  `Print one requires statement per effectively required dependency, at any nesting depth, in manifest order.`,
	RunE:  runRequires,
}

func init() {
	requiresCmd.Flags().StringVarP(&requiresManifestFlag, "manifest", "m", "", "Manifest file path (default: discover depcheck.yml)")
	requiresCmd.Flags().StringVarP(&requiresDirFlag, "directory", "d", ".", "Directory for manifest discovery")
}

// runRequires executes the requires command.
//
// Required-ness is resolved with inheritance: nested dependencies without an
// explicit value take their parent's effective value.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments (unused)
//
// Returns:
//   - error: ExitConfigError on manifest problems
func runRequires(cmd *cobra.Command, args []string) error {
	m, err := loadManifestFunc(requiresManifestFlag, requiresDirFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	out := cmd.OutOrStdout()
	for _, name := range manifest.RequiredNames(m) {
		fmt.Fprintf(out, "requires '%s';\n", name)
	}
	return nil
}
