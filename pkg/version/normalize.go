// Package version normalizes dotted version strings into a fixed-width
// encoding with a total order, sufficient for equality and threshold
// comparisons without full semantic-versioning precedence rules.
package version

import (
	"fmt"
	"strings"
)

// segmentCount is the number of version segments encoded.
// Segments beyond this are ignored; missing trailing segments default to 0.
const segmentCount = 5

// segmentDigits is the zero-padded width of each encoded segment.
const segmentDigits = 4

// Normalized is the fixed-width encoding of a dotted version string: each
// of the first five numeric segments zero-padded to four digits and
// concatenated. Because every Normalized value has the same width,
// lexicographic comparison is exactly numeric comparison, so the built-in
// string ordering is the version ordering.
//
// The encoding would need 20 decimal digits as a machine integer, which
// overflows uint64 for realistic date-based majors (e.g. "2026.1"), so the
// digit string itself is the canonical representation.
type Normalized string

// Zero is the normalized form of an empty or undefined version.
var Zero = Normalized(strings.Repeat("0", segmentCount*segmentDigits))

// ParseError reports a version string that cannot be normalized.
//
// Fields:
//   - Raw: The original version string
//   - Segment: The offending segment
//   - Reason: Why the segment was rejected
type ParseError struct {
	Raw     string
	Segment string
	Reason  string
}

// Error implements the error interface.
//
// Returns:
//   - string: Diagnostic naming the raw version and the offending segment
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse version %q: segment %q %s", e.Raw, e.Segment, e.Reason)
}

// Normalize converts a dotted version string into its fixed-width encoding.
//
// Rules:
//   - An empty string or the literal token "undef" normalizes to Zero.
//   - Underscores and hyphens are segment separators equivalent to '.'.
//   - The string splits into at most five numeric segments; extras are
//     ignored and missing trailing segments default to 0.
//   - Trailing separators are dropped ("1." normalizes like "1").
//   - Non-numeric segments, interior empty segments, and segments longer
//     than four digits return a *ParseError instead of silently encoding
//     garbage.
//
// Parameters:
//   - raw: The version string to normalize (e.g., "1.2.3", "4.1_05")
//
// Returns:
//   - Normalized: The fixed-width encoding
//   - error: *ParseError when a segment cannot be encoded
func Normalize(raw string) (Normalized, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "undef" {
		return Zero, nil
	}

	unified := strings.NewReplacer("_", ".", "-", ".").Replace(trimmed)
	unified = strings.TrimRight(unified, ".")
	if unified == "" {
		return Zero, nil
	}

	segments := strings.Split(unified, ".")
	if len(segments) > segmentCount {
		segments = segments[:segmentCount]
	}

	var encoded strings.Builder
	encoded.Grow(segmentCount * segmentDigits)

	for _, seg := range segments {
		if seg == "" {
			return Zero, &ParseError{Raw: raw, Segment: seg, Reason: "is empty"}
		}
		if len(seg) > segmentDigits {
			return Zero, &ParseError{Raw: raw, Segment: seg, Reason: "exceeds four digits"}
		}
		for _, r := range seg {
			if r < '0' || r > '9' {
				return Zero, &ParseError{Raw: raw, Segment: seg, Reason: "is not numeric"}
			}
		}
		encoded.WriteString(strings.Repeat("0", segmentDigits-len(seg)))
		encoded.WriteString(seg)
	}

	for i := len(segments); i < segmentCount; i++ {
		encoded.WriteString(strings.Repeat("0", segmentDigits))
	}

	return Normalized(encoded.String()), nil
}

// Less reports whether n orders strictly before other.
//
// Parameters:
//   - other: The normalized version to compare against
//
// Returns:
//   - bool: true if n < other under the version ordering
func (n Normalized) Less(other Normalized) bool {
	return n < other
}

// Compare orders two normalized versions.
//
// Parameters:
//   - other: The normalized version to compare against
//
// Returns:
//   - int: -1 if n < other, 0 if equal, +1 if n > other
func (n Normalized) Compare(other Normalized) int {
	switch {
	case n < other:
		return -1
	case n > other:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether raw normalizes without error.
//
// Parameters:
//   - raw: The version string to validate
//
// Returns:
//   - bool: true if Normalize(raw) succeeds
func IsValid(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}
