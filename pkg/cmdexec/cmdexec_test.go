package cmdexec

import (
	"context"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExecuteWithContextEcho tests basic command execution.
//
// It verifies:
//   - Stdout is captured and returned
func TestExecuteWithContextEcho(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell fixture assumes a POSIX shell")
	}

	out, err := ExecuteWithContext(context.Background(), "echo hello", "", 0, nil)

	require.NoError(t, err)
	assert.Equal(t, "hello", strings.TrimSpace(string(out)))
}

// TestExecuteWithContextReplacements tests template replacement.
//
// It verifies:
//   - {{name}} placeholders are replaced with the provided value
//   - Replacement values are shell-escaped
func TestExecuteWithContextReplacements(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell fixture assumes a POSIX shell")
	}

	out, err := ExecuteWithContext(context.Background(), "echo {{name}}", "", 0,
		map[string]string{"name": "libfoo; rm -rf /"})

	require.NoError(t, err)
	assert.Equal(t, "libfoo; rm -rf /", strings.TrimSpace(string(out)),
		"the injected metacharacters must be passed literally, not executed")
}

// TestExecuteWithContextFailure tests failing commands.
//
// It verifies:
//   - Non-zero exits return an error including captured stderr
func TestExecuteWithContextFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell fixture assumes a POSIX shell")
	}

	_, err := ExecuteWithContext(context.Background(), "echo broken >&2; exit 3", "", 0, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")
	assert.Contains(t, err.Error(), "broken")
}

// TestExecuteWithContextEmptyCommand tests input validation.
//
// It verifies:
//   - Empty and whitespace-only commands are rejected
func TestExecuteWithContextEmptyCommand(t *testing.T) {
	_, err := ExecuteWithContext(context.Background(), "   ", "", 0, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command provided")
}

// TestExecuteWithContextCancelled tests pre-cancelled contexts.
//
// It verifies:
//   - A cancelled context is reported without running the command
func TestExecuteWithContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExecuteWithContext(ctx, "echo never", "", 0, nil)

	assert.ErrorIs(t, err, context.Canceled)
}

// TestShellEscape tests shell escaping rules.
//
// It verifies:
//   - Safe strings are returned unquoted
//   - Unsafe strings are single-quoted
//   - Embedded single quotes are escaped
//   - Empty strings become empty quotes
func TestShellEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"safe name", "libfoo-1.2_3", "libfoo-1.2_3"},
		{"module path", "Libfoo::Client", "Libfoo::Client"},
		{"spaces", "two words", "'two words'"},
		{"metacharacters", "a;b|c", "'a;b|c'"},
		{"single quote", "it's", "'it'\\''s'"},
		{"empty", "", "''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shellEscape(tt.input))
		})
	}
}

// TestApplyReplacements tests placeholder substitution.
//
// It verifies:
//   - All occurrences of a placeholder are replaced
//   - Unknown placeholders are left untouched
func TestApplyReplacements(t *testing.T) {
	got := applyReplacements("check {{name}} and {{name}} with {{other}}",
		map[string]string{"name": "libfoo"})

	assert.Equal(t, "check libfoo and libfoo with {{other}}", got)
}
