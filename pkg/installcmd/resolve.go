// Package installcmd resolves platform-specific install commands for
// dependency specs and aggregates them over a check run.
package installcmd

import (
	"fmt"
	"strings"

	"github.com/iancoleman/orderedmap"

	"github.com/ajxudir/depcheck/pkg/check"
	"github.com/ajxudir/depcheck/pkg/constants"
	"github.com/ajxudir/depcheck/pkg/manifest"
	"github.com/ajxudir/depcheck/pkg/verbose"
)

// DefaultGenericTemplate is the platform-independent fallback installer.
// Manifests for other ecosystems override it via installer.generic.
const DefaultGenericTemplate = "cpanm %s"

// Family holds the install templates for one platform family.
//
// Fields:
//   - Template: Command template; %s receives the space-joined package tokens
//   - SubTemplate: Optional per-package wrapper applied to each token before
//     joining, for package managers that wrap a sub-installer
type Family struct {
	Template    string
	SubTemplate string
}

// builtinFamilies covers the common package-manager ecosystems. Manifest
// installer.families entries override or extend these.
var builtinFamilies = map[string]Family{
	"debian":  {Template: "apt-get install -y %s"},
	"redhat":  {Template: "dnf install -y %s"},
	"arch":    {Template: "pacman -S --noconfirm %s"},
	"alpine":  {Template: "apk add %s"},
	"suse":    {Template: "zypper install -y %s"},
	"darwin":  {Template: "brew install %s"},
	"freebsd": {Template: "pkg install -y %s"},
}

// Command is a resolved install suggestion.
//
// Fields:
//   - Shell: The fully formatted shell invocation; callers never re-parse it
//   - Package: The package token the command installs
type Command struct {
	Shell   string
	Package string
}

// Resolver resolves install commands against a merged family table.
type Resolver struct {
	families map[string]Family
	generic  string
}

// NewResolver builds a resolver from the manifest installer configuration.
//
// Builtin families are merged with manifest overrides; manifest entries win.
//
// Parameters:
//   - cfg: The manifest installer section
//
// Returns:
//   - *Resolver: Resolver ready for lookups
func NewResolver(cfg manifest.InstallerCfg) *Resolver {
	families := make(map[string]Family, len(builtinFamilies)+len(cfg.Families))
	for key, fam := range builtinFamilies {
		families[key] = fam
	}
	for key, fam := range cfg.Families {
		families[key] = Family{Template: fam.Template, SubTemplate: fam.SubTemplate}
	}

	generic := cfg.Generic
	if generic == "" {
		generic = DefaultGenericTemplate
	}

	return &Resolver{families: families, generic: generic}
}

// Resolve produces the install suggestion for one spec on one platform.
//
// The platform key is an opaque lookup key with one fallback and one
// suppression case:
//   - Key absent from the spec's PlatformPackages: the generic template is
//     used with the spec name as the package token.
//   - Key present but explicitly unsupported: no suggestion is offered.
//   - Key present with a package name: the platform family's template is
//     used, composed through its sub-template when one is defined. A named
//     package on a platform without a family template falls back to the
//     generic template with that package token.
//
// Parameters:
//   - spec: The dependency spec
//   - platform: The platform family key
//
// Returns:
//   - Command: The resolved install command
//   - bool: false when no suggestion should be offered
func (r *Resolver) Resolve(spec manifest.Spec, platform string) (Command, bool) {
	pp, present := spec.PlatformPackages[platform]

	if !present {
		verbose.Infof("No %s mapping for %s, using generic installer", platform, spec.Name)
		return Command{
			Shell:   fmt.Sprintf(r.generic, spec.Name),
			Package: spec.Name,
		}, true
	}

	if pp.IsUnsupported() {
		verbose.Infof("%s is unsupported on %s, suppressing install suggestion", spec.Name, platform)
		return Command{}, false
	}

	pkg := pp.PackageName()
	family, ok := r.families[platform]
	if !ok {
		return Command{
			Shell:   fmt.Sprintf(r.generic, pkg),
			Package: pkg,
		}, true
	}

	token := pkg
	if family.SubTemplate != "" {
		token = fmt.Sprintf(family.SubTemplate, token)
	}

	return Command{
		Shell:   fmt.Sprintf(family.Template, token),
		Package: pkg,
	}, true
}

// MissingRequiredPackages returns the install package tokens for every
// required spec whose check result is Missing or Incompatible, covering
// top-level specs and one level of nested dependencies.
//
// Tokens are deduplicated by first-seen order, parent before child. Specs
// explicitly unsupported on the platform contribute no token.
//
// Parameters:
//   - m: The manifest that was checked
//   - results: Results from check.Run over the same manifest
//   - platform: The platform family key
//
// Returns:
//   - []string: Ordered, deduplicated package tokens
func (r *Resolver) MissingRequiredPackages(m *manifest.Manifest, results []check.Result, platform string) []string {
	byName := make(map[string]check.Result, len(results))
	for _, res := range results {
		byName[res.Name] = res
	}

	tokens := orderedmap.New()
	for _, spec := range m.Specs {
		required := spec.EffectiveRequired(false)
		r.collectToken(spec, required, byName, platform, tokens)

		for _, child := range spec.Dependencies {
			r.collectToken(child, child.EffectiveRequired(required), byName, platform, tokens)
		}
	}

	return tokens.Keys()
}

// collectToken adds the spec's package token when it is a required spec
// failing with Missing or Incompatible.
func (r *Resolver) collectToken(spec manifest.Spec, required bool, byName map[string]check.Result, platform string, tokens *orderedmap.OrderedMap) {
	if !required {
		return
	}

	result, ok := byName[spec.Name]
	if !ok {
		return
	}
	if result.Status != constants.StatusMissing && result.Status != constants.StatusIncompatible {
		return
	}

	cmd, ok := r.Resolve(spec, platform)
	if !ok {
		return
	}
	tokens.Set(cmd.Package, true)
}

// Aggregate formats the single shell command installing all given tokens.
//
// The platform family's template is applied once over the joined tokens,
// each token first wrapped by the family sub-template when one is defined.
// Platforms without a family template use the generic template.
//
// Parameters:
//   - tokens: Package tokens from MissingRequiredPackages
//   - platform: The platform family key
//
// Returns:
//   - string: The aggregated shell command
//   - bool: false when there is nothing to install
func (r *Resolver) Aggregate(tokens []string, platform string) (string, bool) {
	if len(tokens) == 0 {
		return "", false
	}

	family, ok := r.families[platform]
	if !ok {
		return fmt.Sprintf(r.generic, strings.Join(tokens, " ")), true
	}

	wrapped := tokens
	if family.SubTemplate != "" {
		wrapped = make([]string, len(tokens))
		for i, token := range tokens {
			wrapped[i] = fmt.Sprintf(family.SubTemplate, token)
		}
	}

	return fmt.Sprintf(family.Template, strings.Join(wrapped, " ")), true
}
