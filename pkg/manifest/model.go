// Package manifest defines the static dependency manifest: an ordered,
// immutable table of dependency specs with version constraints, per-platform
// install packages, and nested dependencies. Manifests are constructed once
// (in code or from YAML) and never mutated during a run.
package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Manifest is the root of a dependency manifest.
//
// Fields:
//   - Installer: Install-command templates (generic fallback and per-family overrides)
//   - Defaults: Default settings inherited by every spec (e.g., the version probe)
//   - Specs: Ordered top-level dependency specs
type Manifest struct {
	Installer InstallerCfg `yaml:"installer,omitempty"`
	Defaults  Defaults     `yaml:"defaults,omitempty"`
	Specs     []Spec       `yaml:"dependencies"`
}

// Defaults holds settings applied to specs that do not override them.
type Defaults struct {
	// Probe is the default shell command used to detect an installed version.
	// The {{name}} placeholder is replaced with the spec name. A spec-level
	// probe takes precedence.
	Probe string `yaml:"probe,omitempty"`
}

// InstallerCfg configures install-command templates.
//
// Fields:
//   - Generic: Template for the platform-independent fallback command; %s is
//     replaced with the package tokens. Empty means the built-in default.
//   - Families: Per-platform-family template overrides keyed by family key
type InstallerCfg struct {
	Generic  string               `yaml:"generic,omitempty"`
	Families map[string]FamilyCfg `yaml:"families,omitempty"`
}

// FamilyCfg overrides the install templates for one platform family.
//
// Fields:
//   - Template: Command template; %s is replaced with the package tokens
//   - SubTemplate: Optional per-package wrapper applied to each token before
//     the tokens are joined into Template (two-stage composition)
type FamilyCfg struct {
	Template    string `yaml:"template"`
	SubTemplate string `yaml:"sub_template,omitempty"`
}

// VersionNote pairs a version threshold with a human-readable reason.
//
// Fields:
//   - Version: The version string the note applies to
//   - Reason: Why the version is excluded or recommended
type VersionNote struct {
	Version string `yaml:"version"`
	Reason  string `yaml:"reason,omitempty"`
}

// Spec describes one dependency in the manifest.
//
// Fields:
//   - Name: Unique human-readable identifier (e.g., a library name)
//   - Required: Whether a failure is fatal; nil inherits from the parent spec
//     (top-level specs default to optional)
//   - MinVersion: Optional minimum version string
//   - ExcludedVersions: Versions that are known-broken even when >= MinVersion
//   - RecommendedVersions: Versions below which a non-fatal advisory is issued
//   - PlatformPackages: Platform family key to install package mapping; an
//     explicit null marks the dependency unsupported on that platform
//   - Probe: Optional shell command overriding the manifest default probe
//   - Dependencies: Nested specs checked one depth level deeper
type Spec struct {
	Name                string                     `yaml:"name"`
	Required            *bool                      `yaml:"required,omitempty"`
	MinVersion          string                     `yaml:"min_version,omitempty"`
	ExcludedVersions    []VersionNote              `yaml:"excluded_versions,omitempty"`
	RecommendedVersions []VersionNote              `yaml:"recommended_versions,omitempty"`
	PlatformPackages    PlatformPackages           `yaml:"platform_packages,omitempty"`
	Probe               string                     `yaml:"probe,omitempty"`
	Dependencies        []Spec                     `yaml:"dependencies,omitempty"`
}

// EffectiveRequired resolves the spec's required-ness under a parent.
//
// Specs without an explicit required value inherit the parent's effective
// value; top-level specs are resolved against false.
//
// Parameters:
//   - parent: The effective required-ness of the enclosing spec
//
// Returns:
//   - bool: true if this spec is required
func (s Spec) EffectiveRequired(parent bool) bool {
	if s.Required != nil {
		return *s.Required
	}
	return parent
}

// ProbeCommand resolves the probe command for this spec.
//
// Parameters:
//   - defaults: The manifest defaults to fall back to
//
// Returns:
//   - string: The spec probe if set, otherwise the default probe
func (s Spec) ProbeCommand(defaults Defaults) string {
	if s.Probe != "" {
		return s.Probe
	}
	return defaults.Probe
}

// PlatformPackages maps platform family keys to install package mappings.
//
// The map carries its own YAML unmarshaler: yaml.v3 short-circuits explicit
// null values to the zero value without consulting the value type's
// unmarshaler, so the mapping nodes must be walked directly to keep an
// explicit null distinct from a named empty string.
type PlatformPackages map[string]PlatformPackage

// UnmarshalYAML decodes the platform mapping node by node.
//
// Parameters:
//   - value: The YAML node to decode
//
// Returns:
//   - error: When the node is not a mapping or a value fails to decode
func (pp *PlatformPackages) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("platform_packages must map platform families to package names or null")
	}

	out := make(PlatformPackages, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var key string
		if err := value.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("platform family key: %w", err)
		}

		var pkg PlatformPackage
		if err := pkg.UnmarshalYAML(value.Content[i+1]); err != nil {
			return fmt.Errorf("platform %s: %w", key, err)
		}
		out[key] = pkg
	}

	*pp = out
	return nil
}

// PlatformPackage is the three-state per-platform install mapping.
//
// A platform family key can be absent from a spec's PlatformPackages (fall
// back to the generic installer), present with an explicit null (dependency
// unsupported on that platform, suppress any suggestion), or present with a
// concrete package name. Absence is represented by a map miss; this type
// only distinguishes the latter two states.
type PlatformPackage struct {
	unsupported bool
	name        string
}

// Named creates a PlatformPackage carrying a concrete package name.
//
// Parameters:
//   - name: The platform-specific install package name
//
// Returns:
//   - PlatformPackage: A named mapping
func Named(name string) PlatformPackage {
	return PlatformPackage{name: name}
}

// Unsupported creates the explicit "unsupported on this platform" marker.
//
// Returns:
//   - PlatformPackage: An unsupported mapping
func Unsupported() PlatformPackage {
	return PlatformPackage{unsupported: true}
}

// IsUnsupported reports whether this mapping is the explicit unsupported marker.
//
// Returns:
//   - bool: true if the dependency is unsupported on the platform
func (p PlatformPackage) IsUnsupported() bool {
	return p.unsupported
}

// PackageName returns the concrete package name of a named mapping.
//
// Returns:
//   - string: The package name, empty for the unsupported marker
func (p PlatformPackage) PackageName() string {
	return p.name
}

// UnmarshalYAML decodes either an explicit null (unsupported marker) or a
// scalar package name.
//
// Parameters:
//   - value: The YAML node to decode
//
// Returns:
//   - error: Decode error for non-scalar values
func (p *PlatformPackage) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*p = Unsupported()
		return nil
	}

	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("platform package must be a package name or null: %w", err)
	}
	*p = Named(name)
	return nil
}

// MarshalYAML encodes the mapping back to a scalar or explicit null.
//
// Returns:
//   - interface{}: The package name, or nil for the unsupported marker
//   - error: Always nil
func (p PlatformPackage) MarshalYAML() (interface{}, error) {
	if p.unsupported {
		return nil, nil
	}
	return p.name, nil
}
