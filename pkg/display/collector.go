package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/depcheck/pkg/constants"
)

// WarningCollector buffers warning messages instead of writing them to
// stderr, so commands can print them in a dedicated section after results.
// It implements io.Writer for use with warnings.SetWarningWriter.
type WarningCollector struct {
	messages []string
}

// Write records one warning message.
//
// Parameters:
//   - p: The warning text (a trailing newline is stripped)
//
// Returns:
//   - int: len(p)
//   - error: Always nil
func (c *WarningCollector) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	if msg != "" {
		c.messages = append(c.messages, msg)
	}
	return len(p), nil
}

// Messages returns the collected warnings in arrival order.
//
// Returns:
//   - []string: Collected warning messages
func (c *WarningCollector) Messages() []string {
	return c.messages
}

// PrintWarnings prints collected warnings with the warning icon.
//
// Parameters:
//   - w: Destination writer
//   - messages: Warning messages to print; nothing is printed when empty
func PrintWarnings(w io.Writer, messages []string) {
	if len(messages) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, msg := range messages {
		fmt.Fprintf(w, "%s  %s\n", constants.IconWarn, msg)
	}
}

// PrintAdvisories prints a dependency's advisories indented under its row.
//
// Parameters:
//   - w: Destination writer
//   - name: The dependency name
//   - advisories: Advisory messages in manifest order
func PrintAdvisories(w io.Writer, name string, advisories []string) {
	for _, advisory := range advisories {
		fmt.Fprintf(w, "%s %s: %s\n", constants.IconLightbulb, name, advisory)
	}
}

// PrintHint prints an install suggestion for a failing dependency.
//
// Parameters:
//   - w: Destination writer
//   - name: The dependency name
//   - command: The resolved install command
func PrintHint(w io.Writer, name, command string) {
	fmt.Fprintf(w, "%s %s: %s\n", constants.IconLightbulb, name, command)
}
