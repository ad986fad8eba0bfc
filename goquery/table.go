package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tabgenie"
)

var _ tabgenie.TableParser = (*TableParser)(nil)

// TableParser reads the first <table> of an HTML document into a grid.
//
// Rows made only of <th> cells become column headers; a <th> in any other
// row becomes a row header. Spans are expanded into dummies, spans running
// past the last row are clipped and short rows are padded with empty cells
// so the result is always regular. A <caption> is stored as the "title"
// property and cells with the highlight class are marked as highlighted.
type TableParser struct {
	// HighlightClass marks highlighted cells. Defaults to "table-active".
	HighlightClass string
}

// NewTableParser creates a new TableParser.
func NewTableParser() *TableParser {
	return &TableParser{HighlightClass: "table-active"}
}

type parsedCell struct {
	sel     *goquery.Selection
	colspan int
	rowspan int
}

// ParseTable parses html and returns the table it contains.
// Returns EINVALID if the document has no table or the table has no rows.
func (p *TableParser) ParseTable(html string) (*tabgenie.Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, tabgenie.Errorf(tabgenie.EINVALID, "failed to parse HTML: %v", err)
	}

	tbl := doc.Find("table").First()
	if tbl.Length() == 0 {
		return nil, tabgenie.Errorf(tabgenie.EINVALID, "no table found")
	}

	// Rows of nested tables belong to those tables.
	var rows [][]parsedCell
	tbl.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return tr.Closest("table").IsSelection(tbl)
	}).Each(func(_ int, tr *goquery.Selection) {
		var row []parsedCell
		tr.ChildrenFiltered("th, td").Each(func(_ int, sel *goquery.Selection) {
			row = append(row, parsedCell{
				sel:     sel,
				colspan: spanAttr(sel, "colspan"),
				rowspan: spanAttr(sel, "rowspan"),
			})
		})
		if len(row) > 0 {
			rows = append(rows, row)
		}
	})
	if len(rows) == 0 {
		return nil, tabgenie.Errorf(tabgenie.EINVALID, "table has no rows")
	}

	width := gridWidth(rows)
	t := tabgenie.NewTable()
	if caption := text(tbl.ChildrenFiltered("caption").First()); caption != "" {
		t.Props.Set("title", caption)
	}

	w := tabgenie.NewGridWriter(t)
	for i, row := range rows {
		headerRow := allHeaders(row)
		for _, pc := range row {
			c := tabgenie.NewCell(text(pc.sel))
			c.Colspan = pc.colspan
			c.Rowspan = min(pc.rowspan, len(rows)-i)
			if goquery.NodeName(pc.sel) == "th" {
				c.IsColHeader = headerRow
				c.IsRowHeader = !headerRow
			}
			c.IsHighlighted = p.HighlightClass != "" && pc.sel.HasClass(p.HighlightClass)
			w.Add(c)
		}
		for w.Pos().Col < width {
			w.Add(tabgenie.NewCell(""))
		}
		w.SaveRow()
	}

	return t, nil
}

// gridWidth returns the number of columns the rows occupy once spans are
// expanded.
func gridWidth(rows [][]parsedCell) int {
	occupied := make(map[tabgenie.Position]bool)
	width := 0
	for i, row := range rows {
		col := 0
		for _, pc := range row {
			for occupied[tabgenie.Position{Row: i, Col: col}] {
				col++
			}
			for r := i; r < i+pc.rowspan && r < len(rows); r++ {
				for c := col; c < col+pc.colspan; c++ {
					occupied[tabgenie.Position{Row: r, Col: c}] = true
				}
			}
			col += pc.colspan
			width = max(width, col)
		}
	}
	return width
}

func allHeaders(row []parsedCell) bool {
	for _, pc := range row {
		if goquery.NodeName(pc.sel) != "th" {
			return false
		}
	}
	return true
}

func spanAttr(sel *goquery.Selection, name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(sel.AttrOr(name, "1")))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// text returns the text of sel with whitespace collapsed.
func text(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}
