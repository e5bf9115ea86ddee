// Package lookup provides installed-version collaborators for the checker.
//
// A lookup answers one question per dependency: what version, if any, is
// installed on the host. Implementations are side-effect-free from the
// checker's perspective; a failed probe simply means "not installed".
package lookup

import (
	"context"
	"fmt"
	"strings"

	"github.com/ajxudir/depcheck/pkg/cmdexec"
	"github.com/ajxudir/depcheck/pkg/manifest"
	"github.com/ajxudir/depcheck/pkg/verbose"
)

// Static is a map-backed lookup keyed by spec name, for embedding programs
// that already know their environment and for tests.
type Static map[string]string

// InstalledVersion returns the mapped version for the spec name.
//
// Parameters:
//   - ctx: Unused; Static never blocks
//   - spec: The dependency to look up
//
// Returns:
//   - string: The mapped version
//   - bool: false when the name is absent from the map
//   - error: Always nil
func (s Static) InstalledVersion(_ context.Context, spec manifest.Spec) (string, bool, error) {
	v, ok := s[spec.Name]
	return v, ok, nil
}

// DefaultProbeTimeoutSeconds bounds a single version probe.
const DefaultProbeTimeoutSeconds = 30

// Exec probes the host by running each spec's probe command through the
// shell. The probe's trimmed stdout is the installed version; a failing
// probe or empty output means the dependency is not installed.
//
// Fields:
//   - Defaults: Manifest defaults supplying the fallback probe command
//   - Dir: Working directory for probe commands
//   - TimeoutSeconds: Per-probe timeout (0 uses DefaultProbeTimeoutSeconds)
type Exec struct {
	Defaults       manifest.Defaults
	Dir            string
	TimeoutSeconds int
}

// InstalledVersion runs the spec's probe command and interprets its output.
//
// The {{name}} placeholder in the probe is replaced with the spec name. A
// spec without any probe (neither spec-level nor manifest default) is a
// configuration gap reported as an error rather than as "not installed".
//
// Parameters:
//   - ctx: Context for probe cancellation
//   - spec: The dependency to look up
//
// Returns:
//   - string: Trimmed probe output
//   - bool: false when the probe failed or produced no output
//   - error: When no probe command is configured for the spec
func (e *Exec) InstalledVersion(ctx context.Context, spec manifest.Spec) (string, bool, error) {
	probe := spec.ProbeCommand(e.Defaults)
	if probe == "" {
		verbose.RefFor("probes")
		return "", false, fmt.Errorf("no probe command configured for dependency %q", spec.Name)
	}

	timeout := e.TimeoutSeconds
	if timeout <= 0 {
		timeout = DefaultProbeTimeoutSeconds
	}

	out, err := cmdexec.ExecuteWithContext(ctx, probe, e.Dir, timeout, map[string]string{"name": spec.Name})
	if err != nil {
		verbose.Infof("Probe for %s failed, treating as not installed: %v", spec.Name, err)
		return "", false, nil
	}

	installed := strings.TrimSpace(string(out))
	if installed == "" {
		return "", false, nil
	}
	return installed, true, nil
}
