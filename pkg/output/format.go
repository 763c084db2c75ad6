// Package output renders resolved workspace packages to a terminal sink.
// The default is an aligned text table; CSV, JSON, and XML are available
// as structured alternatives for machine consumption.
package output

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is the default aligned text listing.
	FormatTable Format = "table"
	// FormatCSV outputs data as comma-separated values.
	FormatCSV Format = "csv"
	// FormatJSON outputs data as JSON.
	FormatJSON Format = "json"
	// FormatXML outputs data as XML.
	FormatXML Format = "xml"
)

// Formats lists every supported format in help-text order.
var Formats = []Format{FormatTable, FormatJSON, FormatCSV, FormatXML}

// ValidateFormat parses a format string and rejects unknown values.
//
// An empty string is accepted and means FormatTable.
//
// Parameters:
//   - s: Format string to parse
//
// Returns:
//   - Format: The parsed format
//   - error: When s names no supported format
func ValidateFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	default:
		return FormatTable, fmt.Errorf("unknown output format %q (expected one of %s)", s, formatNames())
	}
}

func formatNames() string {
	names := make([]string, 0, len(Formats))
	for _, f := range Formats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// IsStructured reports whether f is a machine-readable format (not table).
func (f Format) IsStructured() bool {
	return IsStructuredFormat(f)
}

// IsStructuredFormat returns true if the format requires structured output (not table).
//
// Parameters:
//   - f: The format to check
//
// Returns:
//   - bool: true if format is CSV, JSON, or XML; false for table format
func IsStructuredFormat(f Format) bool {
	return f == FormatCSV || f == FormatJSON || f == FormatXML
}

// Formatter handles writing data in a specific format.
//
// Fields:
//   - format: The output format (CSV, JSON, XML, or Table)
//   - writer: Destination for formatted output
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a new formatter for the given format and writer.
//
// Parameters:
//   - format: The desired output format
//   - writer: Destination for formatted output
//
// Returns:
//   - *Formatter: A new formatter instance ready to write data
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// WriteCSV writes a header row followed by rows as CSV.
//
// csv.Writer buffers all writes and only reports errors via Error() after Flush().
//
// Parameters:
//   - headers: Column headers for the CSV
//   - rows: Data rows, each row should have the same number of columns as headers
//
// Returns:
//   - error: When write or flush fails, returns the underlying error; otherwise returns nil
func (f *Formatter) WriteCSV(headers []string, rows [][]string) error {
	w := csv.NewWriter(f.writer)

	_ = w.Write(headers)
	for _, row := range rows {
		_ = w.Write(row)
	}

	w.Flush()
	return w.Error()
}

// WriteJSON writes data as compact JSON followed by a newline.
//
// Parameters:
//   - data: Data structure to encode as JSON (must be marshallable)
//
// Returns:
//   - error: When encoding or writing fails, returns the underlying error; otherwise returns nil
func (f *Formatter) WriteJSON(data any) error {
	return json.NewEncoder(f.writer).Encode(data)
}

// WriteXML writes the XML header and data with 2-space indentation.
//
// Parameters:
//   - data: Data structure to encode as XML (must be marshallable and have xml tags)
//
// Returns:
//   - error: When encoding or writing fails, returns the underlying error; otherwise returns nil
func (f *Formatter) WriteXML(data any) error {
	if _, err := io.WriteString(f.writer, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}
	_, err := io.WriteString(f.writer, "\n")
	return err
}
