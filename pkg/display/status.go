// Package display formats check results for human-readable console output.
package display

import (
	"fmt"
	"strings"

	"github.com/ajxudir/depcheck/pkg/check"
	"github.com/ajxudir/depcheck/pkg/constants"
)

// indentUnit is the per-depth indentation for nested dependencies.
const indentUnit = "  "

// FormatStatus formats a result's status with the appropriate icon.
//
// Missing required dependencies are errors, missing optional ones warnings.
//
// Parameters:
//   - status: The status string (e.g., "Compliant", "Missing")
//   - required: Effective required-ness of the dependency
//
// Returns:
//   - string: Formatted status with icon prefix (e.g., "🟢 Compliant")
func FormatStatus(status string, required bool) string {
	switch status {
	case constants.StatusCompliant:
		return fmt.Sprintf("%s %s", constants.IconSuccess, constants.StatusCompliant)
	case constants.StatusMissing:
		if required {
			return fmt.Sprintf("%s %s", constants.IconError, constants.StatusMissing)
		}
		return fmt.Sprintf("%s %s", constants.IconWarning, constants.StatusMissing)
	case constants.StatusIncompatible:
		return fmt.Sprintf("%s %s", constants.IconError, constants.StatusIncompatible)
	case constants.StatusCheckError:
		return fmt.Sprintf("%s %s", constants.IconBlocked, constants.StatusCheckError)
	default:
		return status
	}
}

// IndentName indents a dependency name proportionally to its nesting depth.
//
// Parameters:
//   - name: The dependency name
//   - depth: Nesting depth (0 for top-level specs)
//
// Returns:
//   - string: The indented name
func IndentName(name string, depth int) string {
	if depth <= 0 {
		return name
	}
	return strings.Repeat(indentUnit, depth) + name
}

// Details renders the per-dependency detail column: the incompatibility
// reason, the evaluation error, advisory counts, or required-ness notes.
//
// Parameters:
//   - r: The check result
//
// Returns:
//   - string: Detail text, empty when there is nothing to say
func Details(r check.Result) string {
	switch r.Status {
	case constants.StatusIncompatible:
		return r.Reason
	case constants.StatusCheckError:
		if r.Err != nil {
			return r.Err.Error()
		}
		return ""
	case constants.StatusMissing:
		if !r.Required {
			return "optional"
		}
		return ""
	default:
		if n := len(r.Advisories); n == 1 {
			return "1 advisory"
		} else if n > 1 {
			return fmt.Sprintf("%d advisories", n)
		}
		return ""
	}
}

// SafeInstalledValue substitutes the NA placeholder for empty versions.
//
// Parameters:
//   - installed: Raw installed version, may be empty
//
// Returns:
//   - string: The version or the NA placeholder
func SafeInstalledValue(installed string) string {
	if strings.TrimSpace(installed) == "" {
		return constants.PlaceholderNA
	}
	return installed
}

// RequiredLabel renders the REQUIRED column value.
//
// Parameters:
//   - required: Effective required-ness
//
// Returns:
//   - string: "yes" or "no"
func RequiredLabel(required bool) string {
	if required {
		return "yes"
	}
	return "no"
}
