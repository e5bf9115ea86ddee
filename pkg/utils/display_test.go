package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDisplayWidth tests the behavior of DisplayWidth.
//
// It verifies:
//   - ASCII strings count one cell per character
//   - Wide characters count two cells
//   - Empty strings have zero width
func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty", "", 0},
		{"ascii", "libfoo", 6},
		{"wide characters", "依存", 4},
		{"mixed", "v1.0 依存", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayWidth(tt.input))
		})
	}
}

// TestToWidth tests the behavior of ToWidth.
//
// It verifies:
//   - Strings are padded with spaces to the target width
//   - Strings at or beyond the target width are returned unchanged
//   - Non-positive widths return the original string
func TestToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"pads short string", "ok", 5, "ok   "},
		{"already wide enough", "exact", 5, "exact"},
		{"longer than width", "toolong", 3, "toolong"},
		{"zero width", "x", 0, "x"},
		{"negative width", "x", -2, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToWidth(tt.input, tt.width))
		})
	}
}

// TestMax tests the behavior of Max.
//
// It verifies:
//   - The maximum value is returned
//   - Empty input returns 0
func TestMax(t *testing.T) {
	assert.Equal(t, 9, Max(3, 9, 1))
	assert.Equal(t, -1, Max(-5, -1))
	assert.Equal(t, 0, Max())
}
