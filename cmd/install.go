package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajxudir/depcheck/pkg/check"
	"github.com/ajxudir/depcheck/pkg/cmdexec"
	"github.com/ajxudir/depcheck/pkg/errors"
	"github.com/ajxudir/depcheck/pkg/installcmd"
	"github.com/ajxudir/depcheck/pkg/warnings"
)

var (
	installManifestFlag string
	installDirFlag      string
	installPlatformFlag string
	installTimeoutFlag  int
	installRunFlag      bool
)

// installRunTimeoutSeconds bounds the aggregated install command when --run
// is given. Package installs routinely take minutes.
const installRunTimeoutSeconds = 600

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Resolve the install command for missing required dependencies",
	Long:  `Check the manifest, collect every required dependency that is missing or incompatible, and print the single platform install command covering all of them.`,
	RunE:  runInstall,
}

func init() {
	installCmd.Flags().StringVarP(&installManifestFlag, "manifest", "m", "", "Manifest file path (default: discover depcheck.yml)")
	installCmd.Flags().StringVarP(&installDirFlag, "directory", "d", ".", "Directory for manifest discovery and probe execution")
	installCmd.Flags().StringVarP(&installPlatformFlag, "platform", "p", "", "Platform family override (e.g. debian, darwin)")
	installCmd.Flags().IntVar(&installTimeoutFlag, "timeout", 0, "Per-probe timeout in seconds (default: 30)")
	installCmd.Flags().BoolVar(&installRunFlag, "run", false, "Execute the resolved install command instead of printing it")
}

// runInstall executes the install command.
//
// It performs the following operations:
//   - Step 1: Loads or discovers the manifest
//   - Step 2: Probes and checks every dependency
//   - Step 3: Collects install tokens for failing required dependencies,
//     covering top-level specs and one level of nested dependencies
//   - Step 4: Prints the aggregated command, or executes it with --run
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments (unused)
//
// Returns:
//   - error: ExitConfigError on manifest problems, ExitFailure when --run
//     execution fails
func runInstall(cmd *cobra.Command, args []string) error {
	m, err := loadManifestFunc(installManifestFlag, installDirFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	plat := installPlatformFlag
	if plat == "" {
		plat = detectPlatformFunc()
	}
	if plat == "" {
		warnings.Warnf("no platform family detected; falling back to the generic installer\n")
	}

	lk := newLookupFunc(m, installDirFlag, installTimeoutFlag)
	results := check.Run(cmd.Context(), m, lk)

	resolver := installcmd.NewResolver(m.Installer)
	tokens := resolver.MissingRequiredPackages(m, results, plat)

	out := cmd.OutOrStdout()
	shell, ok := resolver.Aggregate(tokens, plat)
	if !ok {
		fmt.Fprintln(out, "Nothing to install: all required dependencies are compliant.")
		return nil
	}

	if !installRunFlag {
		fmt.Fprintln(out, shell)
		return nil
	}

	fmt.Fprintf(out, "Running: %s\n", shell)
	cmdOut, err := cmdexec.ExecuteWithContext(cmd.Context(), shell, installDirFlag, installRunTimeoutSeconds, nil)
	if len(cmdOut) > 0 {
		fmt.Fprint(out, string(cmdOut))
	}
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, fmt.Errorf("install command failed: %w", err))
	}
	return nil
}
