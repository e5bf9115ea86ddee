package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ajxudir/depcheck/pkg/check"
	"github.com/ajxudir/depcheck/pkg/constants"
	"github.com/ajxudir/depcheck/pkg/display"
	"github.com/ajxudir/depcheck/pkg/errors"
	"github.com/ajxudir/depcheck/pkg/installcmd"
	"github.com/ajxudir/depcheck/pkg/lookup"
	"github.com/ajxudir/depcheck/pkg/manifest"
	"github.com/ajxudir/depcheck/pkg/output"
	"github.com/ajxudir/depcheck/pkg/platform"
	"github.com/ajxudir/depcheck/pkg/warnings"
)

var (
	checkManifestFlag string
	checkDirFlag      string
	checkPlatformFlag string
	checkOutputFlag   string
	checkTimeoutFlag  int
	checkHintsFlag    bool
)

// Swappable collaborators for command tests.
var loadManifestFunc = manifest.LoadOrDiscover
var detectPlatformFunc = platform.Detect
var newLookupFunc = func(m *manifest.Manifest, dir string, timeoutSeconds int) check.Lookup {
	return &lookup.Exec{Defaults: m.Defaults, Dir: dir, TimeoutSeconds: timeoutSeconds}
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check installed dependency versions against the manifest",
	Long:  `Probe installed versions and verify them against minimum, excluded, and recommended version constraints.`,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkManifestFlag, "manifest", "m", "", "Manifest file path (default: discover depcheck.yml)")
	checkCmd.Flags().StringVarP(&checkDirFlag, "directory", "d", ".", "Directory for manifest discovery and probe execution")
	checkCmd.Flags().StringVarP(&checkPlatformFlag, "platform", "p", "", "Platform family override (e.g. debian, darwin)")
	checkCmd.Flags().StringVarP(&checkOutputFlag, "output", "o", "", "Output format: json, csv, xml (default: table)")
	checkCmd.Flags().IntVar(&checkTimeoutFlag, "timeout", lookup.DefaultProbeTimeoutSeconds, "Per-probe timeout in seconds")
	checkCmd.Flags().BoolVar(&checkHintsFlag, "hints", false, "Show install suggestions for failing dependencies")
}

// runCheck executes the check command.
//
// It performs the following operations:
//   - Step 1: Loads or discovers the manifest
//   - Step 2: Resolves the platform family (flag override or host detection)
//   - Step 3: Probes every dependency and evaluates its version constraints
//   - Step 4: Prints results as a table or in a structured format
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments (unused)
//
// Returns:
//   - error: ExitConfigError on manifest problems, ExitFailure when a
//     required dependency fails its check
func runCheck(cmd *cobra.Command, args []string) error {
	m, err := loadManifestFunc(checkManifestFlag, checkDirFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	// Buffer warnings so they appear after the results, not interleaved.
	collector := &display.WarningCollector{}
	restore := warnings.SetWarningWriter(collector)
	defer restore()

	plat := checkPlatformFlag
	if plat == "" {
		plat = detectPlatformFunc()
	}
	if plat == "" {
		warnings.Warnf("no platform family detected; install suggestions use the generic installer\n")
	}

	lk := newLookupFunc(m, checkDirFlag, checkTimeoutFlag)
	results := check.Run(cmd.Context(), m, lk)

	format := output.ParseFormat(checkOutputFlag)
	if output.IsStructuredFormat(format) {
		report := output.NewCheckResult(plat, results, collector.Messages())
		if err := output.WriteCheckResult(cmd.OutOrStdout(), format, report); err != nil {
			return err
		}
	} else {
		printCheckTable(cmd.OutOrStdout(), m, results, plat, collector.Messages())
	}

	if check.Failed(results) {
		return errors.NewExitErrorf(errors.ExitFailure, "required dependency checks failed")
	}
	return nil
}

// printCheckTable outputs check results in table format.
//
// Displays each dependency with its required-ness, status, installed version,
// and detail column, followed by advisories, optional install hints, buffered
// warnings, and summary statistics.
//
// Parameters:
//   - w: Destination writer
//   - m: The checked manifest
//   - results: Results from check.Run, in manifest order
//   - plat: The resolved platform family key
//   - warningMessages: Warnings buffered during the run
func printCheckTable(w io.Writer, m *manifest.Manifest, results []check.Result, plat string, warningMessages []string) {
	table := buildCheckTable(results)
	fmt.Fprintln(w, table.HeaderRow())
	fmt.Fprintln(w, table.SeparatorRow())

	for _, r := range results {
		fmt.Fprintln(w, table.FormatRow(
			display.IndentName(r.Name, r.Depth),
			display.RequiredLabel(r.Required),
			display.FormatStatus(r.Status, r.Required),
			display.SafeInstalledValue(r.Installed),
			display.Details(r),
		))
	}

	printAdvisorySection(w, results)
	if checkHintsFlag {
		printHintSection(w, m, results, plat)
	}
	display.PrintWarnings(w, warningMessages)

	summary := check.Summarize(results)
	fmt.Fprintf(w, "\nTotal dependencies: %d\n", summary.Total)
	fmt.Fprintf(w, "Compliant: %d\n", summary.Compliant)
	fmt.Fprintf(w, "Missing required: %d\n", summary.MissingRequired)
	fmt.Fprintf(w, "Missing optional: %d\n", summary.MissingOptional)
	fmt.Fprintf(w, "Incompatible: %d\n", summary.Incompatible)
	fmt.Fprintf(w, "Check errors: %d\n", summary.Errors)
}

// buildCheckTable creates a table formatter with calculated column widths.
//
// Parameters:
//   - results: Check results to calculate widths from
//
// Returns:
//   - *output.Table: Configured table formatter ready for output
func buildCheckTable(results []check.Result) *output.Table {
	table := output.NewTable().
		AddColumn("NAME").
		AddColumn("REQUIRED").
		AddColumn("STATUS").
		AddColumn("INSTALLED").
		AddColumn("DETAILS")

	for _, r := range results {
		table.UpdateWidths(
			display.IndentName(r.Name, r.Depth),
			display.RequiredLabel(r.Required),
			display.FormatStatus(r.Status, r.Required),
			display.SafeInstalledValue(r.Installed),
			display.Details(r),
		)
	}

	return table
}

// printAdvisorySection prints every advisory below the results table.
//
// Parameters:
//   - w: Destination writer
//   - results: Check results, in manifest order
func printAdvisorySection(w io.Writer, results []check.Result) {
	printed := false
	for _, r := range results {
		if len(r.Advisories) == 0 {
			continue
		}
		if !printed {
			fmt.Fprintln(w)
			printed = true
		}
		display.PrintAdvisories(w, r.Name, r.Advisories)
	}
}

// printHintSection prints install suggestions for failing dependencies.
//
// Suggestions cover Missing and Incompatible results; check errors are
// skipped because reinstalling will not fix them. Dependencies explicitly
// unsupported on the platform produce no suggestion.
//
// Parameters:
//   - w: Destination writer
//   - m: The checked manifest
//   - results: Check results, in manifest order
//   - plat: The resolved platform family key
func printHintSection(w io.Writer, m *manifest.Manifest, results []check.Result, plat string) {
	specs := specsByName(m)
	resolver := installcmd.NewResolver(m.Installer)

	printed := false
	for _, r := range results {
		if r.Status != constants.StatusMissing && r.Status != constants.StatusIncompatible {
			continue
		}
		spec, ok := specs[r.Name]
		if !ok {
			continue
		}
		cmd, ok := resolver.Resolve(spec, plat)
		if !ok {
			continue
		}
		if !printed {
			fmt.Fprintln(w)
			printed = true
		}
		display.PrintHint(w, r.Name, cmd.Shell)
	}
}

// specsByName indexes every spec in the manifest, at any depth, by name.
//
// Parameters:
//   - m: The manifest to index
//
// Returns:
//   - map[string]manifest.Spec: Specs keyed by their unique names
func specsByName(m *manifest.Manifest) map[string]manifest.Spec {
	specs := make(map[string]manifest.Spec)
	manifest.Walk(m, func(s manifest.Spec, depth int, required bool) {
		specs[s.Name] = s
	})
	return specs
}
