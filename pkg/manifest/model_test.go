package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// boolPtr returns a pointer to the given bool for manifest literals.
func boolPtr(b bool) *bool {
	return &b
}

// TestPlatformPackageUnmarshal tests YAML decoding of the three-state mapping.
//
// It verifies:
//   - A scalar value decodes to a named mapping
//   - An explicit null decodes to the unsupported marker, distinct from a
//     quoted empty string
//   - An absent key stays absent (map miss)
func TestPlatformPackageUnmarshal(t *testing.T) {
	input := `
debian: libfoo-dev
darwin: null
alpine: ~
suse: ""
`
	var packages PlatformPackages
	require.NoError(t, yaml.Unmarshal([]byte(input), &packages))

	debian, ok := packages["debian"]
	require.True(t, ok)
	assert.False(t, debian.IsUnsupported())
	assert.Equal(t, "libfoo-dev", debian.PackageName())

	darwin, ok := packages["darwin"]
	require.True(t, ok)
	assert.True(t, darwin.IsUnsupported())
	assert.Empty(t, darwin.PackageName())

	alpine, ok := packages["alpine"]
	require.True(t, ok)
	assert.True(t, alpine.IsUnsupported(), "tilde is an explicit null")

	suse, ok := packages["suse"]
	require.True(t, ok)
	assert.False(t, suse.IsUnsupported(), "quoted empty string is a named mapping")

	_, ok = packages["redhat"]
	assert.False(t, ok, "absent key must stay absent")
}

// TestSpecUnmarshalKeepsExplicitNull tests the mapping inside a full spec.
//
// It verifies:
//   - An explicit null survives decoding through the Spec struct, so
//     YAML-loaded manifests suppress install suggestions the same way
//     in-memory manifests do
func TestSpecUnmarshalKeepsExplicitNull(t *testing.T) {
	input := `
name: libfoo
platform_packages:
  debian: null
  darwin: openssl@3
`
	var spec Spec
	require.NoError(t, yaml.Unmarshal([]byte(input), &spec))

	assert.True(t, spec.PlatformPackages["debian"].IsUnsupported())
	assert.Equal(t, "openssl@3", spec.PlatformPackages["darwin"].PackageName())
}

// TestPlatformPackageUnmarshalRejectsNonScalar tests decode errors.
//
// It verifies:
//   - Sequence values are rejected with a descriptive error
//   - Non-mapping platform_packages nodes are rejected
func TestPlatformPackageUnmarshalRejectsNonScalar(t *testing.T) {
	var packages PlatformPackages

	err := yaml.Unmarshal([]byte("debian: [one, two]\n"), &packages)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package name or null")

	err = yaml.Unmarshal([]byte("- debian\n- darwin\n"), &packages)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must map platform families")
}

// TestPlatformPackageMarshalRoundTrip tests encoding back to YAML.
//
// It verifies:
//   - Named mappings marshal to their package name
//   - Unsupported mappings marshal to null and decode back as unsupported
func TestPlatformPackageMarshalRoundTrip(t *testing.T) {
	original := PlatformPackages{
		"debian": Named("libfoo-dev"),
		"darwin": Unsupported(),
	}

	data, err := yaml.Marshal(original)
	require.NoError(t, err)

	var decoded PlatformPackages
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

// TestEffectiveRequired tests required-ness resolution.
//
// It verifies:
//   - Explicit values win over the parent
//   - Unset values inherit the parent's effective value
func TestEffectiveRequired(t *testing.T) {
	tests := []struct {
		name     string
		spec     Spec
		parent   bool
		expected bool
	}{
		{"explicit true under optional parent", Spec{Required: boolPtr(true)}, false, true},
		{"explicit false under required parent", Spec{Required: boolPtr(false)}, true, false},
		{"inherit required parent", Spec{}, true, true},
		{"inherit optional parent", Spec{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.spec.EffectiveRequired(tt.parent))
		})
	}
}

// TestProbeCommand tests probe resolution against manifest defaults.
//
// It verifies:
//   - A spec-level probe takes precedence
//   - The default probe is used when the spec has none
func TestProbeCommand(t *testing.T) {
	defaults := Defaults{Probe: "query-version {{name}}"}

	withProbe := Spec{Name: "libfoo", Probe: "libfoo --version"}
	assert.Equal(t, "libfoo --version", withProbe.ProbeCommand(defaults))

	withoutProbe := Spec{Name: "libbar"}
	assert.Equal(t, "query-version {{name}}", withoutProbe.ProbeCommand(defaults))
}
