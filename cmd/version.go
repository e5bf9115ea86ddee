package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajxudir/depcheck/pkg/constants"
)

// Version information set at build time via ldflags.
// Example: go build -ldflags="-X github.com/ajxudir/depcheck/cmd.Version=1.0.0"
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// BuildTime is the timestamp of the build.
	BuildTime = ""
	// GitCommit is the git commit hash of the build.
	GitCommit = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Long:  `Show version, build date, and system information.`,
	Run:   runVersion,
}

// Note: versionCmd is added to rootCmd in root.go's init() to control command order

// runVersion executes the version command to display build and version information.
func runVersion(cmd *cobra.Command, args []string) {
	printVersionOutput(cmd)
}

// printVersionOutput prints version, build, and runtime information.
//
// Output includes the runtime platform, Go version, build date, git commit,
// and version string.
func printVersionOutput(cmd *cobra.Command) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "  Go:       %s\n", runtime.Version())
	if BuildTime != "" {
		fmt.Fprintf(out, "  Date:     %s\n", BuildTime)
	}
	fmt.Fprintln(out)
	if GitCommit != "" {
		fmt.Fprintf(out, "  Git:      %s\n", GitCommit)
	}
	fmt.Fprintf(out, "  Version:  %s\n", Version)
}

// GetVersion returns the current version string.
//
// Returns the semantic version set at build time, or "dev" for development builds.
//
// Returns:
//   - string: Version string (e.g., "1.0.0", "dev")
func GetVersion() string {
	return Version
}

// IsDevBuild returns true if this is a development build (no release tag).
//
// Returns:
//   - bool: true if Version equals "dev"; false for tagged releases
func IsDevBuild() bool {
	return Version == "dev"
}

// GetBuildWarnings returns build-related warnings for the current binary.
//
// Returns:
//   - string: Warning message for dev builds; empty string for releases
func GetBuildWarnings() string {
	if !IsDevBuild() {
		return ""
	}

	return constants.IconWarn + "  Development build: this is an unreleased version without a version tag.\n" +
		"   For production use, please install a released version.\n"
}
