// Package check evaluates dependency specs against installed versions.
//
// The walk is fully sequential and idempotent: each spec is checked once in
// manifest order, nested dependencies one depth level deeper, and no result
// depends on shared mutable state. A failing parent never short-circuits its
// children, and no failure aborts the walk.
package check

import (
	"context"
	"fmt"

	"github.com/ajxudir/depcheck/pkg/constants"
	"github.com/ajxudir/depcheck/pkg/manifest"
	"github.com/ajxudir/depcheck/pkg/verbose"
	"github.com/ajxudir/depcheck/pkg/version"
)

// Lookup resolves the installed version of a dependency from the host
// environment. Implementations live in pkg/lookup.
type Lookup interface {
	// InstalledVersion returns the installed version string for the spec.
	//
	// Parameters:
	//   - ctx: Context for cancellation of probe commands
	//   - spec: The dependency to look up
	//
	// Returns:
	//   - string: The raw installed version
	//   - bool: false when the dependency is not installed
	//   - error: Lookup infrastructure failure (e.g., no probe configured)
	InstalledVersion(ctx context.Context, spec manifest.Spec) (string, bool, error)
}

// Result is the outcome of checking one dependency.
//
// Fields:
//   - Name: The spec name
//   - Depth: Nesting depth in the manifest (0 for top-level specs)
//   - Required: Effective required-ness after inheritance
//   - Status: One of the constants.Status* values
//   - Installed: Raw installed version, empty when missing
//   - Reason: Incompatibility reason, empty otherwise
//   - Advisories: Non-fatal upgrade suggestions, in manifest order
//   - Err: Evaluation error for StatusCheckError results
type Result struct {
	Name       string
	Depth      int
	Required   bool
	Status     string
	Installed  string
	Reason     string
	Advisories []string
	Err        error
}

// Failing reports whether this result blocks compliance.
//
// Missing and Incompatible results fail outright; CheckError results fail
// too because compliance could not be demonstrated.
//
// Returns:
//   - bool: true if the result is not Compliant
func (r Result) Failing() bool {
	return r.Status != constants.StatusCompliant
}

// Check evaluates a single spec against an installed version.
//
// Evaluation order for an installed dependency:
//  1. Normalize the installed version (a parse failure yields CheckError).
//  2. An excluded version matching the installed version wins over every
//     other verdict.
//  3. An installed version below MinVersion is incompatible.
//  4. Otherwise the dependency is compliant; every recommended version above
//     the installed one contributes an advisory.
//
// When the dependency is not installed the verdict is Missing and none of
// the version constraints are consulted.
//
// Parameters:
//   - spec: The dependency spec to evaluate
//   - installed: Raw installed version string
//   - found: false when no installed version exists
//   - required: Effective required-ness for the result
//
// Returns:
//   - Result: The check outcome (Depth is left at 0 for single-spec checks)
func Check(spec manifest.Spec, installed string, found bool, required bool) Result {
	result := Result{Name: spec.Name, Required: required}

	if !found {
		result.Status = constants.StatusMissing
		return result
	}
	result.Installed = installed

	normalized, err := version.Normalize(installed)
	if err != nil {
		result.Status = constants.StatusCheckError
		result.Err = err
		return result
	}

	for _, note := range spec.ExcludedVersions {
		excluded, err := version.Normalize(note.Version)
		if err != nil {
			result.Status = constants.StatusCheckError
			result.Err = fmt.Errorf("excluded version for %s: %w", spec.Name, err)
			return result
		}
		if excluded == normalized {
			result.Status = constants.StatusIncompatible
			result.Reason = fmt.Sprintf("Version %s not supported! %s", installed, note.Reason)
			return result
		}
	}

	if spec.MinVersion != "" {
		minimum, err := version.Normalize(spec.MinVersion)
		if err != nil {
			result.Status = constants.StatusCheckError
			result.Err = fmt.Errorf("min version for %s: %w", spec.Name, err)
			return result
		}
		if normalized.Less(minimum) {
			result.Status = constants.StatusIncompatible
			result.Reason = fmt.Sprintf("Version %s installed but %s or higher is required!", installed, spec.MinVersion)
			return result
		}
	}

	result.Status = constants.StatusCompliant
	for _, note := range spec.RecommendedVersions {
		recommended, err := version.Normalize(note.Version)
		if err != nil {
			result.Status = constants.StatusCheckError
			result.Err = fmt.Errorf("recommended version for %s: %w", spec.Name, err)
			result.Advisories = nil
			return result
		}
		if normalized.Less(recommended) {
			result.Advisories = append(result.Advisories,
				fmt.Sprintf("Please consider updating to version %s or higher: %s", note.Version, note.Reason))
		}
	}

	return result
}

// Run walks the manifest and checks every spec, nested dependencies included.
//
// One environment query is made per dependency through the lookup. A lookup
// infrastructure error marks that single dependency as CheckError and the
// walk continues with its siblings and children.
//
// Parameters:
//   - ctx: Context for probe cancellation
//   - m: The manifest to walk
//   - lk: Installed-version collaborator
//
// Returns:
//   - []Result: One result per spec, in depth-first manifest order
func Run(ctx context.Context, m *manifest.Manifest, lk Lookup) []Result {
	var results []Result

	manifest.Walk(m, func(spec manifest.Spec, depth int, required bool) {
		verbose.Infof("Checking %s (depth=%d required=%v)", spec.Name, depth, required)

		installed, found, err := lk.InstalledVersion(ctx, spec)

		var result Result
		if err != nil {
			result = Result{
				Name:     spec.Name,
				Required: required,
				Status:   constants.StatusCheckError,
				Err:      err,
			}
		} else {
			result = Check(spec, installed, found, required)
		}
		result.Depth = depth

		verbose.Infof("Result for %s: %s", spec.Name, result.Status)
		results = append(results, result)
	})

	return results
}

// Failed reports whether any required dependency, at any depth, failed.
//
// Optional-dependency failures never affect this signal.
//
// Parameters:
//   - results: Results from Run
//
// Returns:
//   - bool: true when the overall run must exit non-zero
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Required && r.Failing() {
			return true
		}
	}
	return false
}

// Summary aggregates result counts for reporting.
//
// Fields mirror the per-status counts plus advisory totals.
type Summary struct {
	Total           int
	Compliant       int
	MissingRequired int
	MissingOptional int
	Incompatible    int
	Errors          int
	Advisories      int
}

// Summarize counts results by status.
//
// Parameters:
//   - results: Results from Run
//
// Returns:
//   - Summary: Aggregated counts
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case constants.StatusCompliant:
			s.Compliant++
		case constants.StatusMissing:
			if r.Required {
				s.MissingRequired++
			} else {
				s.MissingOptional++
			}
		case constants.StatusIncompatible:
			s.Incompatible++
		case constants.StatusCheckError:
			s.Errors++
		}
		s.Advisories += len(r.Advisories)
	}
	return s
}
