package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTableFormatting tests the dynamic-width table builder.
//
// It verifies:
//   - Column widths start at the header width and grow with data
//   - The header, separator, and data rows align
//   - The last column is never padded
func TestTableFormatting(t *testing.T) {
	table := NewTable().
		AddColumn("NAME").
		AddColumn("STATUS").
		AddColumn("DETAILS")

	table.UpdateWidths("libfoo-long-name", "Compliant", "")
	table.UpdateWidths("x", "Missing", "optional")

	assert.Equal(t, "NAME              STATUS     DETAILS", table.HeaderRow())
	assert.Equal(t, "----------------  ---------  --------", table.SeparatorRow())
	assert.Equal(t, "libfoo-long-name  Compliant", table.FormatRow("libfoo-long-name", "Compliant", ""))
	assert.Equal(t, "x                 Missing    optional", table.FormatRow("x", "Missing", "optional"))
}

// TestTableUnicodeWidths tests width handling for wide runes.
//
// It verifies:
//   - Emoji-bearing cells are padded by display width, not byte length
func TestTableUnicodeWidths(t *testing.T) {
	table := NewTable().
		AddColumn("ST").
		AddColumn("NAME")

	// "🟢 OK" displays as 5 columns: 2 for the emoji, a space, and "OK".
	table.UpdateWidths("🟢 OK", "libfoo")

	assert.Equal(t, "🟢 OK  libfoo", table.FormatRow("🟢 OK", "libfoo"))
	assert.Equal(t, "ST     NAME", table.HeaderRow())
}

// TestTableExtraAndMissingValues tests row value count mismatches.
//
// It verifies:
//   - Missing values render as empty cells
//   - Extra values beyond the column count are dropped
func TestTableExtraAndMissingValues(t *testing.T) {
	table := NewTable().
		AddColumn("A").
		AddColumn("B")

	assert.Equal(t, "x", table.FormatRow("x"))
	assert.Equal(t, "x  y", table.FormatRow("x", "y", "z"))
}
