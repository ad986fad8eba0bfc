package tabgenie_test

import "github.com/fwojciec/tabgenie"

// newGrid builds a table from rows of values. Cells of the first row become
// column headers and, when rowHeaders is set, the first cell of every other
// row becomes a row header.
func newGrid(rows [][]string, rowHeaders bool) *tabgenie.Table {
	tab := tabgenie.NewTable()
	for i, row := range rows {
		for j, v := range row {
			switch {
			case i == 0:
				tab.AddCell(tabgenie.NewColHeader(v))
			case j == 0 && rowHeaders:
				tab.AddCell(tabgenie.NewRowHeader(v))
			default:
				tab.AddCell(tabgenie.NewCell(v))
			}
		}
		tab.SaveRow()
	}
	return tab
}

// plainGrid builds a table without any header cells.
func plainGrid(rows [][]string) *tabgenie.Table {
	tab := tabgenie.NewTable()
	for _, row := range rows {
		for _, v := range row {
			tab.AddCell(tabgenie.NewCell(v))
		}
		tab.SaveRow()
	}
	return tab
}

func highlighted(tab *tabgenie.Table) map[int]bool {
	set := make(map[int]bool)
	for _, c := range tab.HighlightedCells() {
		set[c.ID] = true
	}
	return set
}
