package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/depcheck/pkg/errors"
)

// TestRequiresOutput tests the requires statement listing.
//
// It verifies:
//   - One statement is printed per effectively required dependency
//   - Nested dependencies inherit required-ness from their parent
//   - Optional dependencies are omitted
//   - Statements appear in manifest order
func TestRequiresOutput(t *testing.T) {
	path := writeManifest(t, testManifestYAML)

	out, err := executeCommand(t, "requires", "-m", path)
	require.NoError(t, err)

	assert.Equal(t, "requires 'openssl';\nrequires 'zlib';\n", out)
}

// TestRequiresExplicitOptOut tests required-ness overrides in nested specs.
//
// It verifies:
//   - A nested dependency can opt out of an inherited required-ness
func TestRequiresExplicitOptOut(t *testing.T) {
	path := writeManifest(t, `
dependencies:
  - name: parent
    required: true
    dependencies:
      - name: child-opt-out
        required: false
      - name: child-inherits
`)

	out, err := executeCommand(t, "requires", "-m", path)
	require.NoError(t, err)

	assert.Equal(t, "requires 'parent';\nrequires 'child-inherits';\n", out)
}

// TestRequiresManifestError tests configuration failure handling.
//
// It verifies:
//   - A missing manifest exits with the config error code
func TestRequiresManifestError(t *testing.T) {
	_, err := executeCommand(t, "requires", "-d", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
}
