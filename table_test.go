package tabgenie_test

import (
	"testing"

	"github.com/fwojciec/tabgenie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_AddCell(t *testing.T) {
	t.Parallel()

	t.Run("assigns sequential ids in insertion order", func(t *testing.T) {
		t.Parallel()

		tab := plainGrid([][]string{{"a", "b"}, {"c", "d"}})

		for i, c := range tab.FlatCells() {
			assert.Equal(t, i, c.ID)
		}
	})

	t.Run("round-trips every cell through its id", func(t *testing.T) {
		t.Parallel()

		tab := tabgenie.NewTable()
		var added []*tabgenie.Cell
		for i := 0; i < 3; i++ {
			for j := 0; j < 4; j++ {
				c := tabgenie.NewCell("x")
				tab.AddCell(c)
				added = append(added, c)
			}
			tab.SaveRow()
		}

		seen := make(map[int]bool)
		for _, c := range added {
			assert.False(t, seen[c.ID], "duplicate id %d", c.ID)
			seen[c.ID] = true

			got, ok := tab.CellByID(c.ID)
			require.True(t, ok)
			assert.Same(t, c, got)
		}
	})

	t.Run("normalizes non-positive spans", func(t *testing.T) {
		t.Parallel()

		tab := tabgenie.NewTable()
		c := &tabgenie.Cell{Value: "x"}
		tab.AddCell(c)

		assert.Equal(t, 1, c.Colspan)
		assert.Equal(t, 1, c.Rowspan)
	})

	t.Run("works on a zero table", func(t *testing.T) {
		t.Parallel()

		var tab tabgenie.Table
		tab.AddCell(tabgenie.NewCell("x"))
		tab.SaveRow()

		_, ok := tab.CellByID(0)
		assert.True(t, ok)
	})
}

func TestTable_SaveRow(t *testing.T) {
	t.Parallel()

	t.Run("ignores an empty row buffer", func(t *testing.T) {
		t.Parallel()

		tab := tabgenie.NewTable()
		tab.AddCell(tabgenie.NewCell("a"))
		tab.SaveRow()
		tab.SaveRow()

		assert.Equal(t, 1, tab.RowCount())
	})
}

func TestTable_Cell(t *testing.T) {
	t.Parallel()

	tab := plainGrid([][]string{{"a", "b"}, {"c", "d"}})

	assert.Equal(t, "d", tab.Cell(1, 1).Value)
	assert.Nil(t, tab.Cell(2, 0))
	assert.Nil(t, tab.Cell(0, 2))
	assert.Nil(t, tab.Cell(-1, 0))
	assert.Nil(t, tab.Cell(0, -1))
}

func TestTable_CellByID(t *testing.T) {
	t.Parallel()

	tab := plainGrid([][]string{{"a"}})

	_, ok := tab.CellByID(7)

	assert.False(t, ok)
}

func TestTable_Headers(t *testing.T) {
	t.Parallel()

	tab := newGrid([][]string{
		{"", "2019", "2020"},
		{"Sales", "10", "12"},
		{"Costs", "7", "9"},
	}, true)

	t.Run("returns row headers of a row", func(t *testing.T) {
		t.Parallel()

		headers := tab.RowHeaders(2)

		require.Len(t, headers, 1)
		assert.Equal(t, "Costs", headers[0].Value)
	})

	t.Run("returns column headers of a column", func(t *testing.T) {
		t.Parallel()

		headers := tab.ColHeaders(1)

		require.Len(t, headers, 1)
		assert.Equal(t, "2019", headers[0].Value)
	})

	t.Run("supports multi-level column headers", func(t *testing.T) {
		t.Parallel()

		multi := tabgenie.NewTable()
		multi.AddCell(tabgenie.NewColHeader("Year"))
		multi.SaveRow()
		multi.AddCell(tabgenie.NewColHeader("2019"))
		multi.SaveRow()
		multi.AddCell(tabgenie.NewCell("10"))
		multi.SaveRow()

		headers := multi.ColHeaders(0)

		require.Len(t, headers, 2)
		assert.Equal(t, "Year", headers[0].Value)
		assert.Equal(t, "2019", headers[1].Value)
	})

	t.Run("returns empty result out of range", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, tab.RowHeaders(10))
		assert.Empty(t, tab.RowHeaders(-1))
		assert.Empty(t, tab.ColHeaders(10))
		assert.Empty(t, tab.ColHeaders(-1))
	})
}

func TestTable_Highlights(t *testing.T) {
	t.Parallel()

	tab := plainGrid([][]string{{"a", "b"}, {"c", "d"}})
	assert.False(t, tab.HasHighlights())
	assert.Empty(t, tab.HighlightedCells())

	tab.Cell(1, 0).IsHighlighted = true

	assert.True(t, tab.HasHighlights())
	require.Len(t, tab.HighlightedCells(), 1)
	assert.Equal(t, "c", tab.HighlightedCells()[0].Value)
}

func TestTable_References(t *testing.T) {
	t.Parallel()

	t.Run("prefers multiple references", func(t *testing.T) {
		t.Parallel()

		tab := tabgenie.NewTable()
		tab.SetOutput(tabgenie.OutputReference, "single")
		tab.SetOutput(tabgenie.OutputReferences, "one", "two")

		assert.Equal(t, []string{"one", "two"}, tab.References())
	})

	t.Run("falls back to the single reference", func(t *testing.T) {
		t.Parallel()

		tab := tabgenie.NewTable()
		tab.SetOutput(tabgenie.OutputReference, "single")

		assert.Equal(t, []string{"single"}, tab.References())
	})

	t.Run("returns nothing without references", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, tabgenie.NewTable().References())
	})
}

func TestTable_ColCount(t *testing.T) {
	t.Parallel()

	tab := plainGrid([][]string{{"a"}, {"b", "c", "d"}})

	assert.Equal(t, 2, tab.RowCount())
	assert.Equal(t, 3, tab.ColCount())
}

func TestTable_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a regular grid", func(t *testing.T) {
		t.Parallel()

		tab := plainGrid([][]string{{"a", "b"}, {"c", "d"}})

		assert.NoError(t, tab.Validate())
	})

	t.Run("rejects rows of different length", func(t *testing.T) {
		t.Parallel()

		tab := plainGrid([][]string{{"a", "b"}, {"c"}})

		assert.Equal(t, tabgenie.EIRREGULAR, tabgenie.ErrorCode(tab.Validate()))
	})

	t.Run("rejects an unsaved row", func(t *testing.T) {
		t.Parallel()

		tab := plainGrid([][]string{{"a"}})
		tab.AddCell(tabgenie.NewCell("b"))

		assert.Equal(t, tabgenie.EIRREGULAR, tabgenie.ErrorCode(tab.Validate()))
	})

	t.Run("rejects a dummy without anchor", func(t *testing.T) {
		t.Parallel()

		tab := plainGrid([][]string{{"a", "b"}})
		tab.Cell(0, 1).IsDummy = true

		assert.Equal(t, tabgenie.EANCHOR, tabgenie.ErrorCode(tab.Validate()))
	})

	t.Run("rejects an anchor that does not cover the dummy", func(t *testing.T) {
		t.Parallel()

		tab := plainGrid([][]string{{"a", "b"}})
		tab.Cell(0, 1).IsDummy = true
		tab.Cell(0, 1).Main = &tabgenie.Position{Row: 0, Col: 0}

		assert.Equal(t, tabgenie.EANCHOR, tabgenie.ErrorCode(tab.Validate()))
	})
}

func TestTable_WithEdits(t *testing.T) {
	t.Parallel()

	t.Run("leaves the original untouched", func(t *testing.T) {
		t.Parallel()

		tab := plainGrid([][]string{{"a", "b"}, {"c", "d"}})
		tab.Props.Set("title", "T")

		edited, err := tab.WithEdits(map[int]string{1: "B"})
		require.NoError(t, err)

		assert.Equal(t, "B", edited.Cell(0, 1).Value)
		assert.Equal(t, "b", tab.Cell(0, 1).Value)
		assert.Equal(t, "T", edited.Props.Value("title"))

		c, ok := edited.CellByID(1)
		require.True(t, ok)
		assert.Same(t, edited.Cell(0, 1), c)
	})

	t.Run("isolates concurrent edit sets", func(t *testing.T) {
		t.Parallel()

		tab := plainGrid([][]string{{"a", "b"}})

		first, err := tab.WithEdits(map[int]string{0: "first"})
		require.NoError(t, err)
		second, err := tab.WithEdits(map[int]string{0: "second"})
		require.NoError(t, err)

		assert.Equal(t, "first", first.Cell(0, 0).Value)
		assert.Equal(t, "second", second.Cell(0, 0).Value)
		assert.Equal(t, "a", tab.Cell(0, 0).Value)
	})

	t.Run("propagates the value to dummies of an edited anchor", func(t *testing.T) {
		t.Parallel()

		tab := plainGrid([][]string{{"a", "b"}, {"a", "d"}})
		require.NoError(t, tabgenie.MaterializeMerges(tab, []tabgenie.MergeRegion{{FirstRow: 0, FirstCol: 0, LastRow: 1, LastCol: 0}}))

		edited, err := tab.WithEdits(map[int]string{0: "A"})
		require.NoError(t, err)

		assert.Equal(t, "A", edited.Cell(1, 0).Value)
	})

	t.Run("clears markup of edited cells", func(t *testing.T) {
		t.Parallel()

		tab := tabgenie.NewTable()
		tab.AddCell(&tabgenie.Cell{Value: "x", Markup: "<b>x</b>"})
		tab.SaveRow()

		edited, err := tab.WithEdits(map[int]string{0: "y"})
		require.NoError(t, err)

		assert.Equal(t, "y", edited.Cell(0, 0).Display())
	})

	t.Run("rejects unknown cell ids", func(t *testing.T) {
		t.Parallel()

		tab := plainGrid([][]string{{"a"}})

		_, err := tab.WithEdits(map[int]string{5: "x"})

		assert.Equal(t, tabgenie.ENOTFOUND, tabgenie.ErrorCode(err))
	})
}
