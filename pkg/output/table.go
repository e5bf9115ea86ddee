package output

import (
	"strings"

	"github.com/ajxudir/depcheck/pkg/utils"
)

// Column represents a single table column with its header and current width.
//
// Fields:
//   - Header: The display text for this column's header
//   - Width: The current display width for this column in characters
type Column struct {
	Header string
	Width  int
}

// Table provides a flexible table formatter with dynamic column widths.
// It handles Unicode-aware width calculations and consistent formatting.
type Table struct {
	columns   []Column
	separator string
}

// NewTable creates a new table formatter and returns a pointer to it.
//
// The table is initialized with an empty column list and a default separator
// of two spaces.
//
// Returns:
//   - *Table: A new table instance ready for column configuration
func NewTable() *Table {
	return &Table{
		columns:   make([]Column, 0),
		separator: "  ",
	}
}

// AddColumn adds a column with the given header and returns the table.
//
// The initial width is the display width of the header.
//
// Parameters:
//   - header: The text to display in the column header
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddColumn(header string) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.DisplayWidth(header),
	})
	return t
}

// UpdateWidths grows column widths to fit the given row values.
//
// Values beyond the configured column count are ignored.
//
// Parameters:
//   - values: One value per column, in column order
func (t *Table) UpdateWidths(values ...string) {
	for i, value := range values {
		if i >= len(t.columns) {
			break
		}
		t.columns[i].Width = utils.Max(t.columns[i].Width, utils.DisplayWidth(value))
	}
}

// HeaderRow formats the header row with current column widths.
//
// Returns:
//   - string: The formatted header row
func (t *Table) HeaderRow() string {
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Header
	}
	return t.FormatRow(headers...)
}

// SeparatorRow formats the dashed separator under the header.
//
// Returns:
//   - string: A row of dashes matching each column width
func (t *Table) SeparatorRow() string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = strings.Repeat("-", col.Width)
	}
	return strings.Join(parts, t.separator)
}

// FormatRow formats one data row, padding each value to its column width.
//
// The final column is not padded, so rows carry no trailing whitespace.
//
// Parameters:
//   - values: One value per column, in column order
//
// Returns:
//   - string: The formatted row
func (t *Table) FormatRow(values ...string) string {
	parts := make([]string, 0, len(t.columns))
	for i, col := range t.columns {
		value := ""
		if i < len(values) {
			value = values[i]
		}
		if i == len(t.columns)-1 {
			parts = append(parts, value)
		} else {
			parts = append(parts, utils.ToWidth(value, col.Width))
		}
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}
