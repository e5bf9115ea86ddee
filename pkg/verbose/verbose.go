// Package verbose provides debug logging with documentation references.
package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable turns on verbose logging and allows debug messages to be printed.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging and prevents debug messages from being printed.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
	}
}

// getWriter returns the current writer with proper locking for internal use.
func getWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// Printf prints a formatted verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints an informational verbose message if enabled.
//
// Parameters:
//   - msg: The message string to print
func Info(msg string) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] %s\n", msg)
	}
}

// Infof prints a formatted informational verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Infof(format string, args ...any) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// DocRef represents a documentation reference for a specific topic.
//
// It contains information to help users find relevant documentation
// when troubleshooting issues or writing a manifest.
//
// Fields:
//   - Topic: A human-readable name for the documentation topic
//   - DocPath: The relative path to the documentation file or section
//   - Hint: A brief description of what the documentation covers
type DocRef struct {
	Topic   string
	DocPath string
	Hint    string
}

// Common documentation references.
var docRefs = map[string]DocRef{
	"manifest": {
		Topic:   "Manifest Format",
		DocPath: "docs/manifest.md",
		Hint:    "See manifest guide for the YAML schema and dependency fields",
	},
	"platforms": {
		Topic:   "Platform Packages",
		DocPath: "docs/manifest.md#platform-packages",
		Hint:    "Map platform family keys to package names, or null to suppress suggestions",
	},
	"probes": {
		Topic:   "Version Probes",
		DocPath: "docs/manifest.md#probes",
		Hint:    "Configure probe commands used to detect installed versions",
	},
}

// RefFor prints a documentation reference for the given topic if verbose is enabled.
//
// Parameters:
//   - topic: Documentation topic key (e.g., "manifest", "platforms", "probes")
func RefFor(topic string) {
	if !IsEnabled() {
		return
	}

	ref, ok := docRefs[strings.ToLower(strings.TrimSpace(topic))]
	if !ok {
		return
	}

	_, _ = fmt.Fprintf(getWriter(), "[DEBUG] %s: %s (%s)\n", ref.Topic, ref.Hint, ref.DocPath)
}
