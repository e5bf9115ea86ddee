package output

import (
	"fmt"
	"io"
)

// WriteCheckResult writes check results in the specified format.
//
// It performs the following operations:
//   - Step 1: Creates a formatter for the requested format
//   - Step 2: Writes the check result using format-specific logic
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, or FormatCSV)
//   - result: Check result data to write
//
// Returns:
//   - error: When format is unsupported, returns an error; when write fails, returns the underlying error; otherwise returns nil
func WriteCheckResult(w io.Writer, format Format, result *CheckResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		return writeCheckCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeCheckCSV writes check results in CSV format using the formatter.
//
// Parameters:
//   - f: The formatter instance to use for CSV writing
//   - result: Check result data containing dependency entries
//
// Returns:
//   - error: When CSV write fails; returns nil on success
func writeCheckCSV(f *Formatter, result *CheckResult) error {
	headers := []string{"NAME", "REQUIRED", "STATUS", "INSTALLED", "REASON", "ERROR"}
	rows := make([][]string, 0, len(result.Dependencies))
	for _, dep := range result.Dependencies {
		rows = append(rows, dep.csvRow())
	}
	return f.WriteCSV(headers, rows)
}
