// Package constants provides centralized string constants used throughout the application.
// This eliminates magic strings and provides a single source of truth for status values.
package constants

// Check status constants represent the compliance state of a dependency.
const (
	// StatusCompliant indicates the dependency is installed and passes all
	// version constraints. Advisories may still be attached.
	StatusCompliant = "Compliant"

	// StatusMissing indicates no installed version was found for the dependency.
	StatusMissing = "Missing"

	// StatusIncompatible indicates the dependency is installed but the version
	// is excluded or below the required minimum.
	StatusIncompatible = "Incompatible"

	// StatusCheckError indicates the installed version could not be evaluated,
	// typically because the version string failed to parse.
	StatusCheckError = "CheckError"
)

// Placeholder values for display when data is not available.
const (
	// PlaceholderNA is used when a value is not available.
	PlaceholderNA = "#N/A"
)

// Icon constants for status display.
// These provide visual indicators for dependency states in CLI output.
const (
	// IconSuccess indicates a successful or positive state (green circle).
	IconSuccess = "🟢"

	// IconWarning indicates a warning or caution state (orange circle).
	IconWarning = "🟠"

	// IconError indicates an error or failed state (red X).
	IconError = "❌"

	// IconInfo indicates informational or neutral state (blue circle).
	IconInfo = "🔵"

	// IconBlocked indicates a blocked or unevaluable state (stop sign).
	IconBlocked = "⛔"

	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"

	// IconLightbulb indicates a hint or suggestion.
	IconLightbulb = "💡"
)
