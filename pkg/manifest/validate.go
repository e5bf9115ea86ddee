package manifest

import (
	"errors"
	"fmt"

	"github.com/ajxudir/depcheck/pkg/version"
)

// Validate checks the structural invariants of the manifest.
//
// Enforced invariants:
//   - Every spec has a non-empty name
//   - Names are unique across all depths
//   - MinVersion, ExcludedVersions, and RecommendedVersions entries normalize
//   - Installer family overrides carry a non-empty template
//
// Installed versions are runtime input and are not validated here; constraint
// versions are static data, so a malformed one is a manifest bug surfaced at
// load time rather than a miscompare at check time.
//
// Returns:
//   - error: All violations joined, or nil when the manifest is valid
func (m *Manifest) Validate() error {
	var errs []error

	seen := make(map[string]bool)
	for i := range m.Specs {
		errs = append(errs, validateSpec(&m.Specs[i], seen)...)
	}

	for key, family := range m.Installer.Families {
		if family.Template == "" {
			errs = append(errs, fmt.Errorf("installer family %q has an empty template", key))
		}
	}

	return errors.Join(errs...)
}

// validateSpec validates a single spec and its nested dependencies.
//
// Parameters:
//   - s: The spec to validate
//   - seen: Names already encountered, for uniqueness enforcement
//
// Returns:
//   - []error: Violations found in this spec subtree
func validateSpec(s *Spec, seen map[string]bool) []error {
	var errs []error

	if s.Name == "" {
		errs = append(errs, errors.New("dependency with empty name"))
	} else if seen[s.Name] {
		errs = append(errs, fmt.Errorf("duplicate dependency name %q", s.Name))
	} else {
		seen[s.Name] = true
	}

	if s.MinVersion != "" {
		if _, err := version.Normalize(s.MinVersion); err != nil {
			errs = append(errs, fmt.Errorf("dependency %q: invalid min_version: %w", s.Name, err))
		}
	}
	for _, note := range s.ExcludedVersions {
		if _, err := version.Normalize(note.Version); err != nil {
			errs = append(errs, fmt.Errorf("dependency %q: invalid excluded version: %w", s.Name, err))
		}
	}
	for _, note := range s.RecommendedVersions {
		if _, err := version.Normalize(note.Version); err != nil {
			errs = append(errs, fmt.Errorf("dependency %q: invalid recommended version: %w", s.Name, err))
		}
	}

	for i := range s.Dependencies {
		errs = append(errs, validateSpec(&s.Dependencies[i], seen)...)
	}

	return errs
}
