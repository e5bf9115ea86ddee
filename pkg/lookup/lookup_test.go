package lookup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/depcheck/pkg/cmdexec"
	"github.com/ajxudir/depcheck/pkg/manifest"
)

// swapExecute replaces the cmdexec execution function for the test duration.
func swapExecute(t *testing.T, fn cmdexec.ExecuteWithContextFunc) {
	t.Helper()
	previous := cmdexec.ExecuteWithContext
	cmdexec.ExecuteWithContext = fn
	t.Cleanup(func() { cmdexec.ExecuteWithContext = previous })
}

// TestStaticInstalledVersion tests the map-backed lookup.
//
// It verifies:
//   - Present names return their version
//   - Absent names report not installed without error
func TestStaticInstalledVersion(t *testing.T) {
	lk := Static{"libfoo": "1.2.3"}

	v, ok, err := lk.InstalledVersion(context.Background(), manifest.Spec{Name: "libfoo"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1.2.3", v)

	_, ok, err = lk.InstalledVersion(context.Background(), manifest.Spec{Name: "libbar"})
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestExecInstalledVersion tests probe execution and output handling.
//
// It verifies:
//   - The spec-level probe wins over the manifest default
//   - The {{name}} replacement carries the spec name
//   - Probe stdout is trimmed into the version
func TestExecInstalledVersion(t *testing.T) {
	var gotCommand string
	var gotReplacements map[string]string
	swapExecute(t, func(_ context.Context, command, dir string, timeoutSeconds int, replacements map[string]string) ([]byte, error) {
		gotCommand = command
		gotReplacements = replacements
		assert.Equal(t, "/work", dir)
		assert.Equal(t, 5, timeoutSeconds)
		return []byte("  2.5.0\n"), nil
	})

	lk := &Exec{
		Defaults:       manifest.Defaults{Probe: "default-probe {{name}}"},
		Dir:            "/work",
		TimeoutSeconds: 5,
	}

	v, ok, err := lk.InstalledVersion(context.Background(), manifest.Spec{
		Name:  "libfoo",
		Probe: "libfoo --version",
	})

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2.5.0", v)
	assert.Equal(t, "libfoo --version", gotCommand)
	assert.Equal(t, map[string]string{"name": "libfoo"}, gotReplacements)
}

// TestExecDefaultProbe tests fallback to the manifest default probe.
//
// It verifies:
//   - Specs without a probe use the manifest default
//   - The default timeout is applied when none is configured
func TestExecDefaultProbe(t *testing.T) {
	var gotCommand string
	swapExecute(t, func(_ context.Context, command, dir string, timeoutSeconds int, replacements map[string]string) ([]byte, error) {
		gotCommand = command
		assert.Equal(t, DefaultProbeTimeoutSeconds, timeoutSeconds)
		return []byte("1.0"), nil
	})

	lk := &Exec{Defaults: manifest.Defaults{Probe: "default-probe {{name}}"}}

	v, ok, err := lk.InstalledVersion(context.Background(), manifest.Spec{Name: "libbar"})

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1.0", v)
	assert.Equal(t, "default-probe {{name}}", gotCommand)
}

// TestExecProbeFailureMeansNotInstalled tests failed probes.
//
// It verifies:
//   - A failing probe reports not installed, not an error
//   - Empty probe output reports not installed
func TestExecProbeFailureMeansNotInstalled(t *testing.T) {
	swapExecute(t, func(context.Context, string, string, int, map[string]string) ([]byte, error) {
		return nil, errors.New("exit status 2")
	})

	lk := &Exec{Defaults: manifest.Defaults{Probe: "probe {{name}}"}}

	_, ok, err := lk.InstalledVersion(context.Background(), manifest.Spec{Name: "libfoo"})
	require.NoError(t, err)
	assert.False(t, ok)

	swapExecute(t, func(context.Context, string, string, int, map[string]string) ([]byte, error) {
		return []byte("  \n"), nil
	})

	_, ok, err = lk.InstalledVersion(context.Background(), manifest.Spec{Name: "libfoo"})
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestExecNoProbeConfigured tests the missing-probe configuration gap.
//
// It verifies:
//   - A spec with no probe anywhere returns an error naming the dependency
func TestExecNoProbeConfigured(t *testing.T) {
	lk := &Exec{}

	_, _, err := lk.InstalledVersion(context.Background(), manifest.Spec{Name: "libfoo"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `no probe command configured for dependency "libfoo"`)
}
