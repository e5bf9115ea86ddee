package output

import (
	"encoding/xml"

	"github.com/ajxudir/depcheck/pkg/check"
	"github.com/ajxudir/depcheck/pkg/display"
)

// CheckResult represents the output data for the check command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate statistics about the compliance check
//   - Dependencies: One entry per checked dependency, in manifest order
//   - Warnings: Warning messages raised during the check (omitted if empty)
type CheckResult struct {
	XMLName      xml.Name          `json:"-" xml:"checkResult"`
	Summary      CheckSummary      `json:"summary" xml:"summary"`
	Dependencies []CheckDependency `json:"dependencies" xml:"dependencies>dependency"`
	Warnings     []string          `json:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// CheckSummary holds summary statistics for check results.
//
// Fields:
//   - Platform: The platform the check resolved packages against
//   - Total: Total number of dependencies checked
//   - Compliant: Number of dependencies that satisfied all constraints
//   - MissingRequired: Number of required dependencies not installed
//   - MissingOptional: Number of optional dependencies not installed
//   - Incompatible: Number of dependencies with non-compliant versions
//   - Errors: Number of dependencies whose check could not be evaluated
//   - Advisories: Total advisory count across all dependencies
type CheckSummary struct {
	Platform        string `json:"platform" xml:"platform"`
	Total           int    `json:"total" xml:"total"`
	Compliant       int    `json:"compliant" xml:"compliant"`
	MissingRequired int    `json:"missing_required" xml:"missingRequired"`
	MissingOptional int    `json:"missing_optional" xml:"missingOptional"`
	Incompatible    int    `json:"incompatible" xml:"incompatible"`
	Errors          int    `json:"errors" xml:"errors"`
	Advisories      int    `json:"advisories" xml:"advisories"`
}

// CheckDependency represents a single dependency entry in the check output.
//
// Fields:
//   - Name: Dependency name as declared in the manifest
//   - Depth: Nesting depth (0 for top-level dependencies)
//   - Required: Effective required-ness after inheritance
//   - Status: Check status (e.g., "Compliant", "Missing", "Incompatible")
//   - Installed: Detected installed version (omitted if not installed)
//   - Reason: Incompatibility reason (omitted if compliant)
//   - Advisories: Non-blocking update recommendations (omitted if empty)
//   - Error: Evaluation error message (omitted if empty)
type CheckDependency struct {
	Name       string   `json:"name" xml:"name"`
	Depth      int      `json:"depth" xml:"depth"`
	Required   bool     `json:"required" xml:"required"`
	Status     string   `json:"status" xml:"status"`
	Installed  string   `json:"installed,omitempty" xml:"installed,omitempty"`
	Reason     string   `json:"reason,omitempty" xml:"reason,omitempty"`
	Advisories []string `json:"advisories,omitempty" xml:"advisories>advisory,omitempty"`
	Error      string   `json:"error,omitempty" xml:"error,omitempty"`
}

// NewCheckResult builds a CheckResult from checker output.
//
// Parameters:
//   - platform: The resolved platform identifier
//   - results: Results from check.Run, in manifest order
//   - warnings: Warning messages collected during the check
//
// Returns:
//   - *CheckResult: Structured report ready for serialization
func NewCheckResult(platform string, results []check.Result, warnings []string) *CheckResult {
	summary := check.Summarize(results)
	report := &CheckResult{
		Summary: CheckSummary{
			Platform:        platform,
			Total:           summary.Total,
			Compliant:       summary.Compliant,
			MissingRequired: summary.MissingRequired,
			MissingOptional: summary.MissingOptional,
			Incompatible:    summary.Incompatible,
			Errors:          summary.Errors,
			Advisories:      summary.Advisories,
		},
		Dependencies: make([]CheckDependency, 0, len(results)),
		Warnings:     warnings,
	}

	for _, r := range results {
		dep := CheckDependency{
			Name:       r.Name,
			Depth:      r.Depth,
			Required:   r.Required,
			Status:     r.Status,
			Installed:  r.Installed,
			Reason:     r.Reason,
			Advisories: r.Advisories,
		}
		if r.Err != nil {
			dep.Error = r.Err.Error()
		}
		report.Dependencies = append(report.Dependencies, dep)
	}
	return report
}

// csvRow renders the dependency as a CSV row matching the check headers.
func (d CheckDependency) csvRow() []string {
	return []string{
		d.Name,
		display.RequiredLabel(d.Required),
		d.Status,
		display.SafeInstalledValue(d.Installed),
		d.Reason,
		d.Error,
	}
}
