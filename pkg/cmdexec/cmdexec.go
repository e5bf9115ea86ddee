// Package cmdexec executes shell commands for version probes and install
// suggestions. Commands run through the user's shell with templated
// arguments; template values are shell-escaped to prevent injection.
package cmdexec

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/ajxudir/depcheck/pkg/verbose"
)

// ExecuteWithContextFunc is the function signature for context-aware command
// execution.
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - command: Command string to execute
//   - dir: Working directory for command execution (empty for inherited)
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//   - replacements: Template variable replacements (e.g., {{name}} -> spec name)
//
// Returns:
//   - []byte: Combined stdout output from the command
//   - error: Any error that occurred during execution, including cancellation
type ExecuteWithContextFunc func(ctx context.Context, command string, dir string, timeoutSeconds int, replacements map[string]string) ([]byte, error)

// ExecuteWithContext is the context-aware command execution function.
//
// This variable holds the implementation used for command execution
// throughout the application. It can be replaced with a mock for testing.
var ExecuteWithContext ExecuteWithContextFunc = executeWithContext

// executeWithContext runs a single command string through the user's shell.
//
// Template placeholders in the format {{key}} are replaced with their
// shell-escaped values before execution. Stderr is captured and included in
// the returned error on failure.
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - command: Command string to execute
//   - dir: Working directory for command execution
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//   - replacements: Template variable replacements
//
// Returns:
//   - []byte: Stdout output
//   - error: Execution failure with captured stderr, or context error
func executeWithContext(ctx context.Context, command string, dir string, timeoutSeconds int, replacements map[string]string) ([]byte, error) {
	if strings.TrimSpace(command) == "" {
		return nil, fmt.Errorf("no command provided")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if timeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSeconds)*time.Second)
		defer cancel()
	}

	resolved := applyReplacements(command, replacements)
	shell, args := getShell()

	verbose.Infof("Executing: %s", resolved)

	cmd := exec.CommandContext(ctx, shell, append(args, resolved)...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stdout.Bytes(), ctxErr
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return stdout.Bytes(), fmt.Errorf("command failed: %w: %s", err, msg)
		}
		return stdout.Bytes(), fmt.Errorf("command failed: %w", err)
	}

	return stdout.Bytes(), nil
}

// getShell returns the user's shell and args to run a command.
//
// The SHELL environment variable is checked first (Unix systems) so aliases
// and shell configuration remain available; platform defaults are used as a
// fallback.
//
// Returns:
//   - shell: The path to the shell executable
//   - args: The shell arguments needed to execute a command string
func getShell() (shell string, args []string) {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh, []string{"-c"}
	}

	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C"}
	}
	return "/bin/sh", []string{"-c"}
}

// applyReplacements applies template replacements to the command string.
//
// Placeholders in the format {{key}} are replaced with their corresponding
// values, shell-escaped to prevent command injection.
//
// Parameters:
//   - command: Command string containing template placeholders
//   - replacements: Map of template keys to replacement values
//
// Returns:
//   - string: Command string with all placeholders replaced
func applyReplacements(command string, replacements map[string]string) string {
	result := command
	for key, value := range replacements {
		placeholder := "{{" + key + "}}"
		result = strings.ReplaceAll(result, placeholder, shellEscape(value))
	}
	return result
}

// shellEscape escapes a string for safe use in shell commands.
//
// Values are wrapped in single quotes with embedded single quotes escaped.
// Safe strings (alphanumeric and a limited set of punctuation) are returned
// unquoted for readability.
//
// Parameters:
//   - s: String to escape for shell usage
//
// Returns:
//   - string: Shell-safe escaped string
func shellEscape(s string) string {
	if s == "" {
		return "''"
	}

	needsEscape := false
	for _, r := range s {
		if !isShellSafe(r) {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}

	var escaped strings.Builder
	escaped.WriteRune('\'')
	for _, r := range s {
		if r == '\'' {
			escaped.WriteString("'\\''")
		} else {
			escaped.WriteRune(r)
		}
	}
	escaped.WriteRune('\'')
	return escaped.String()
}

// isShellSafe returns true if the character is safe to use unquoted in shell.
//
// Parameters:
//   - r: Rune to check
//
// Returns:
//   - bool: true when the rune needs no quoting
func isShellSafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '-', '_', '.', '/', '@', ':', '+', '=':
		return true
	}
	return false
}
