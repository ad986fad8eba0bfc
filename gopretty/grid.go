// Package gopretty renders tables for the terminal.
package gopretty

import (
	"io"

	"github.com/fwojciec/tabgenie"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var _ tabgenie.TextRenderer = (*GridRenderer)(nil)

// HighlightMarker surrounds the values of highlighted cells.
const HighlightMarker = "*"

// GridRenderer draws tables as box-drawn grids.
type GridRenderer struct {
	Style table.Style
}

// NewGridRenderer creates a renderer using the light box style with header
// text left as is.
func NewGridRenderer() *GridRenderer {
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	return &GridRenderer{Style: style}
}

// RenderText writes the properties of t followed by its grid. Leading rows
// made only of column headers are drawn as the grid header, with equal
// neighbouring header values merged. Dummy cells outside the header are
// left blank and highlighted values are wrapped in HighlightMarker.
func (r *GridRenderer) RenderText(w io.Writer, t *tabgenie.Table, includeProps bool) error {
	if includeProps && t.Props.Len() > 0 {
		props := r.newWriter(w)
		props.SetTitle("properties")
		for _, key := range t.Props.Keys() {
			props.AppendRow(table.Row{key, t.Props.Value(key)})
		}
		props.Render()
	}

	if t.RowCount() == 0 {
		_, err := io.WriteString(w, "(empty table)\n")
		return err
	}

	grid := r.newWriter(w)
	merge := table.RowConfig{AutoMerge: true}
	headerRows := 0
	for _, row := range t.Cells {
		if !columnHeaders(row) || headerRows == t.RowCount()-1 {
			break
		}
		grid.AppendHeader(headerRow(row), merge)
		headerRows++
	}
	for _, row := range t.Cells[headerRows:] {
		out := make(table.Row, len(row))
		for j, c := range row {
			out[j] = display(c)
		}
		grid.AppendRow(out)
	}
	grid.Render()
	return nil
}

func (r *GridRenderer) newWriter(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(r.Style)
	return tw
}

func columnHeaders(row []*tabgenie.Cell) bool {
	for _, c := range row {
		if !c.IsColHeader {
			return false
		}
	}
	return len(row) > 0
}

func headerRow(row []*tabgenie.Cell) table.Row {
	out := make(table.Row, len(row))
	for j, c := range row {
		out[j] = c.Value
		if c.IsHighlighted && !c.IsDummy {
			out[j] = HighlightMarker + c.Value + HighlightMarker
		}
	}
	return out
}

func display(c *tabgenie.Cell) string {
	switch {
	case c.IsDummy:
		return ""
	case c.IsHighlighted:
		return HighlightMarker + c.Value + HighlightMarker
	default:
		return c.Value
	}
}
