package output

import (
	"encoding/xml"

	"github.com/ajxudir/workspaces/pkg/workspace"
)

// ListResult is the XML document for a package listing.
//
// JSON output encodes the package slice directly; XML needs a named root.
//
// Fields:
//   - XMLName: XML root element name
//   - Packages: Resolved packages in listing order
type ListResult struct {
	XMLName  xml.Name            `xml:"packages"`
	Packages []workspace.Package `xml:"package"`
}

// ListOptions controls how WriteList renders packages.
//
// Fields:
//   - Format: FormatTable for aligned text, anything else for structured output
//   - Long: Show version and relative path columns
//   - All: Mark private packages with a (PRIVATE) suffix
type ListOptions struct {
	Format Format
	Long   bool
	All    bool
}

// listHeaders are the CSV column headers, one per encoded Package field.
var listHeaders = []string{"NAME", "VERSION", "LOCATION", "PRIVATE", "INDEPENDENT"}
