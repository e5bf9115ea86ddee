package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajxudir/depcheck/pkg/check"
	"github.com/ajxudir/depcheck/pkg/lookup"
	"github.com/ajxudir/depcheck/pkg/manifest"
)

// testManifestYAML exercises required-ness inheritance, version constraints,
// and all three platform package states.
const testManifestYAML = `
defaults:
  probe: "pkg-config --modversion {{name}}"
dependencies:
  - name: openssl
    required: true
    min_version: "1.1"
    excluded_versions:
      - version: "3.0.0"
        reason: "known regression"
    recommended_versions:
      - version: "3.2"
        reason: "performance fixes"
    platform_packages:
      debian: libssl-dev
      darwin: openssl@3
    dependencies:
      - name: zlib
  - name: libfoo
    platform_packages:
      debian: null
`

// writeManifest writes a manifest into a fresh temp directory.
//
// Returns the manifest file path.
func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "depcheck.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// resetFlags restores every command flag variable to its init() default.
// Package-level flag variables persist across executions within one test
// binary, so each test run starts from a clean slate.
func resetFlags() {
	verboseFlag = false
	versionFlag = false
	skipBuildChecksFlag = false

	checkManifestFlag = ""
	checkDirFlag = "."
	checkPlatformFlag = ""
	checkOutputFlag = ""
	checkTimeoutFlag = lookup.DefaultProbeTimeoutSeconds
	checkHintsFlag = false

	requiresManifestFlag = ""
	requiresDirFlag = "."

	installManifestFlag = ""
	installDirFlag = "."
	installPlatformFlag = ""
	installTimeoutFlag = 0
	installRunFlag = false
}

// executeCommand runs the root command with the given args and captures
// combined output.
//
// Returns the captured output and the execution error.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--skip-build-checks"}, args...))

	err := ExecuteTest()
	return buf.String(), err
}

// withStaticLookup swaps the probe-based lookup for a fixed version table
// for the duration of the test.
func withStaticLookup(t *testing.T, installed map[string]string) {
	t.Helper()
	orig := newLookupFunc
	newLookupFunc = func(m *manifest.Manifest, dir string, timeoutSeconds int) check.Lookup {
		return lookup.Static(installed)
	}
	t.Cleanup(func() { newLookupFunc = orig })
}
