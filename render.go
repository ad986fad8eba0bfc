package tabgenie

import "io"

// ExportFormat names an output format of a table.
type ExportFormat string

// Supported export formats.
const (
	FormatTxt       ExportFormat = "txt"
	FormatTriples   ExportFormat = "triples"
	FormatJSON      ExportFormat = "json"
	FormatHTML      ExportFormat = "html"
	FormatCSV       ExportFormat = "csv"
	FormatMarkdown  ExportFormat = "md"
	FormatRDF       ExportFormat = "rdf"
	FormatReference ExportFormat = "reference"
	FormatXLSX      ExportFormat = "xlsx"
)

// ExportFormats lists every supported format.
var ExportFormats = []ExportFormat{
	FormatTxt, FormatTriples, FormatJSON, FormatHTML, FormatCSV,
	FormatMarkdown, FormatRDF, FormatReference, FormatXLSX,
}

// ParseExportFormat returns the format named s.
func ParseExportFormat(s string) (ExportFormat, error) {
	for _, f := range ExportFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", Errorf(EINVALID, "unknown export format %q", s)
}

// Extension returns the file extension used for exported files.
func (f ExportFormat) Extension() string {
	return string(f)
}

// HTMLFormat selects the flavour of rendered HTML.
type HTMLFormat string

const (
	// HTMLWeb renders collapsible properties for interactive browsing.
	HTMLWeb HTMLFormat = "web"
	// HTMLExport renders a plain properties table for files.
	HTMLExport HTMLFormat = "export"
)

// HTMLOptions configures HTML rendering.
type HTMLOptions struct {
	Format HTMLFormat

	// DisplayedProps lists the properties expanded by default in the web
	// format.
	DisplayedProps []string

	// IncludeProps controls the properties table in the export format.
	IncludeProps bool
}

// HTMLRenderer renders tables as HTML.
type HTMLRenderer interface {
	RenderHTML(t *Table, opts HTMLOptions) (string, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// Sheet is one table written to a workbook.
type Sheet struct {
	Name  string
	Table *Table
}

// WorkbookWriter writes tables as spreadsheet workbooks, one sheet per
// table.
type WorkbookWriter interface {
	WriteWorkbook(w io.Writer, sheets []Sheet, includeProps bool) error
}

// TripleEncoder serializes triples to a graph format.
type TripleEncoder interface {
	EncodeTriples(w io.Writer, triples []Triple) error
}

// TableParser builds a table from an HTML document containing a <table>
// element. Spanning cells are expanded into dummies.
type TableParser interface {
	ParseTable(html string) (*Table, error)
}

// TextRenderer draws tables for a terminal.
type TextRenderer interface {
	RenderText(w io.Writer, t *Table, includeProps bool) error
}
