package manifest

// RequiredNames returns the names of every required spec, at any depth,
// flattened in manifest order.
//
// Required-ness is resolved with inheritance: nested specs without an
// explicit value take their parent's effective value.
//
// Parameters:
//   - m: The manifest to walk
//
// Returns:
//   - []string: Ordered names of all effectively required specs
func RequiredNames(m *Manifest) []string {
	var names []string
	for _, s := range m.Specs {
		names = appendRequiredNames(names, s, false)
	}
	return names
}

// appendRequiredNames accumulates required spec names depth-first.
//
// Parameters:
//   - names: Accumulator
//   - s: Current spec
//   - parent: Effective required-ness of the enclosing spec
//
// Returns:
//   - []string: The extended accumulator
func appendRequiredNames(names []string, s Spec, parent bool) []string {
	required := s.EffectiveRequired(parent)
	if required {
		names = append(names, s.Name)
	}
	for _, child := range s.Dependencies {
		names = appendRequiredNames(names, child, required)
	}
	return names
}

// Walk visits every spec in manifest order, depth-first, with its depth and
// effective required-ness.
//
// Parameters:
//   - m: The manifest to walk
//   - visit: Callback invoked for each spec
func Walk(m *Manifest, visit func(s Spec, depth int, required bool)) {
	for _, s := range m.Specs {
		walkSpec(s, 0, false, visit)
	}
}

// walkSpec visits one spec subtree.
func walkSpec(s Spec, depth int, parent bool, visit func(s Spec, depth int, required bool)) {
	required := s.EffectiveRequired(parent)
	visit(s, depth, required)
	for _, child := range s.Dependencies {
		walkSpec(child, depth+1, required, visit)
	}
}
