package tabgenie_test

import (
	"testing"

	"github.com/fwojciec/tabgenie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spanCell(v string, rowspan, colspan int) *tabgenie.Cell {
	c := tabgenie.NewCell(v)
	c.Rowspan = rowspan
	c.Colspan = colspan
	return c
}

func TestGridWriter(t *testing.T) {
	t.Parallel()

	t.Run("fills column spans on the same row", func(t *testing.T) {
		t.Parallel()

		tab := tabgenie.NewTable()
		w := tabgenie.NewGridWriter(tab)
		w.Add(spanCell("wide", 1, 2))
		w.Add(tabgenie.NewCell("c"))
		w.SaveRow()
		w.Add(tabgenie.NewCell("x"))
		w.Add(tabgenie.NewCell("y"))
		w.Add(tabgenie.NewCell("z"))
		w.SaveRow()

		require.NoError(t, tab.Validate())
		assert.Equal(t, 3, tab.ColCount())
		assert.True(t, tab.Cell(0, 1).IsDummy)
		assert.Equal(t, "wide", tab.Cell(0, 1).Value)
		assert.Equal(t, "c", tab.Cell(0, 2).Value)
	})

	t.Run("inserts row spans into later rows", func(t *testing.T) {
		t.Parallel()

		tab := tabgenie.NewTable()
		w := tabgenie.NewGridWriter(tab)
		w.Add(tabgenie.NewCell("a"))
		w.Add(spanCell("tall", 2, 1))
		w.Add(tabgenie.NewCell("b"))
		w.SaveRow()
		w.Add(tabgenie.NewCell("c"))
		w.Add(tabgenie.NewCell("d"))
		w.SaveRow()

		require.NoError(t, tab.Validate())
		assert.Equal(t, []string{"c", "tall", "d"}, values(tab.Cells[1]))
		assert.Equal(t, &tabgenie.Position{Row: 0, Col: 1}, tab.Cell(1, 1).Main)
	})

	t.Run("flushes trailing row spans", func(t *testing.T) {
		t.Parallel()

		tab := tabgenie.NewTable()
		w := tabgenie.NewGridWriter(tab)
		w.Add(tabgenie.NewCell("a"))
		w.Add(spanCell("tall", 2, 1))
		w.SaveRow()
		w.Add(tabgenie.NewCell("b"))
		w.SaveRow()

		require.NoError(t, tab.Validate())
		assert.Equal(t, []string{"b", "tall"}, values(tab.Cells[1]))
	})

	t.Run("restores a block spanning rows and columns", func(t *testing.T) {
		t.Parallel()

		tab := tabgenie.NewTable()
		w := tabgenie.NewGridWriter(tab)
		w.Add(spanCell("block", 2, 2))
		w.Add(tabgenie.NewCell("a"))
		w.SaveRow()
		assert.Equal(t, tabgenie.Position{Row: 1, Col: 2}, w.Pos())
		w.Add(tabgenie.NewCell("b"))
		w.SaveRow()

		require.NoError(t, tab.Validate())
		assert.Equal(t, []string{"block", "block", "b"}, values(tab.Cells[1]))
		for _, c := range tab.Cells[1][:2] {
			assert.True(t, c.IsDummy)
			assert.Equal(t, 1, c.Rowspan)
		}
	})

	t.Run("keeps highlights on the anchor", func(t *testing.T) {
		t.Parallel()

		tab := tabgenie.NewTable()
		w := tabgenie.NewGridWriter(tab)
		c := spanCell("wide", 1, 2)
		c.IsHighlighted = true
		w.Add(c)
		w.SaveRow()

		assert.True(t, tab.Cell(0, 0).IsHighlighted)
		assert.False(t, tab.Cell(0, 1).IsHighlighted)
	})
}

func values(cells []*tabgenie.Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.Value
	}
	return out
}
