package mock

import (
	"io"

	"github.com/fwojciec/tabgenie"
)

var _ tabgenie.HTMLRenderer = (*HTMLRenderer)(nil)

// HTMLRenderer is a mock implementation of tabgenie.HTMLRenderer.
type HTMLRenderer struct {
	RenderHTMLFn func(t *tabgenie.Table, opts tabgenie.HTMLOptions) (string, error)
}

func (r *HTMLRenderer) RenderHTML(t *tabgenie.Table, opts tabgenie.HTMLOptions) (string, error) {
	return r.RenderHTMLFn(t, opts)
}

var _ tabgenie.Converter = (*Converter)(nil)

// Converter is a mock implementation of tabgenie.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ tabgenie.WorkbookWriter = (*WorkbookWriter)(nil)

// WorkbookWriter is a mock implementation of tabgenie.WorkbookWriter.
type WorkbookWriter struct {
	WriteWorkbookFn func(w io.Writer, sheets []tabgenie.Sheet, includeProps bool) error
}

func (ww *WorkbookWriter) WriteWorkbook(w io.Writer, sheets []tabgenie.Sheet, includeProps bool) error {
	return ww.WriteWorkbookFn(w, sheets, includeProps)
}

var _ tabgenie.TripleEncoder = (*TripleEncoder)(nil)

// TripleEncoder is a mock implementation of tabgenie.TripleEncoder.
type TripleEncoder struct {
	EncodeTriplesFn func(w io.Writer, triples []tabgenie.Triple) error
}

func (e *TripleEncoder) EncodeTriples(w io.Writer, triples []tabgenie.Triple) error {
	return e.EncodeTriplesFn(w, triples)
}

var _ tabgenie.TableParser = (*TableParser)(nil)

// TableParser is a mock implementation of tabgenie.TableParser.
type TableParser struct {
	ParseTableFn func(html string) (*tabgenie.Table, error)
}

func (p *TableParser) ParseTable(html string) (*tabgenie.Table, error) {
	return p.ParseTableFn(html)
}

var _ tabgenie.TextRenderer = (*TextRenderer)(nil)

// TextRenderer is a mock implementation of tabgenie.TextRenderer.
type TextRenderer struct {
	RenderTextFn func(w io.Writer, t *tabgenie.Table, includeProps bool) error
}

func (r *TextRenderer) RenderText(w io.Writer, t *tabgenie.Table, includeProps bool) error {
	return r.RenderTextFn(w, t, includeProps)
}
