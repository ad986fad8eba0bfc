package tabgenie

import "strings"

// PropagateHeaderHighlights highlights the non-blank row and column headers
// labelling every highlighted data cell. When such a header is a dummy, its
// anchor is highlighted as well.
//
// Merges must be materialized before calling it. Running it again has no
// further effect.
func PropagateHeaderHighlights(t *Table) {
	for i, row := range t.Cells {
		for j, c := range row {
			if !c.IsHighlighted || c.IsHeader() {
				continue
			}
			headers := append(t.RowHeaders(i), t.ColHeaders(j)...)
			for _, h := range headers {
				if strings.TrimSpace(h.Value) == "" {
					continue
				}
				h.IsHighlighted = true
				if h.IsDummy && h.Main != nil {
					if anchor := t.Cell(h.Main.Row, h.Main.Col); anchor != nil {
						anchor.IsHighlighted = true
					}
				}
			}
		}
	}
}
