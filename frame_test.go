package tabgenie_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fwojciec/tabgenie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFrame(t *testing.T) {
	t.Parallel()

	t.Run("names columns after the header row", func(t *testing.T) {
		t.Parallel()

		tab := newGrid([][]string{{"team", "points"}, {"Sparta", "71"}}, false)

		f := tabgenie.ToFrame(tab)

		assert.Equal(t, []string{"team", "points"}, f.Columns)
		assert.Equal(t, [][]string{{"Sparta", "71"}}, f.Rows)
	})

	t.Run("joins stacked header rows", func(t *testing.T) {
		t.Parallel()

		tab := newGrid([][]string{
			{"Name", "Year", "Year"},
			{"Name", "2019", "2020"},
			{"a", "1", "2"},
		}, false)
		for j := 0; j < 3; j++ {
			tab.Cell(1, j).IsColHeader = true
		}
		require.NoError(t, tabgenie.MaterializeMerges(tab, []tabgenie.MergeRegion{
			{FirstRow: 0, FirstCol: 0, LastRow: 1, LastCol: 0},
			{FirstRow: 0, FirstCol: 1, LastRow: 0, LastCol: 2},
		}))

		f := tabgenie.ToFrame(tab)

		assert.Equal(t, []string{"Name", "Year 2019", "Year 2020"}, f.Columns)
		assert.Equal(t, [][]string{{"a", "1", "2"}}, f.Rows)
	})

	t.Run("numbers columns without headers", func(t *testing.T) {
		t.Parallel()

		f := tabgenie.ToFrame(plainGrid([][]string{{"a", "b"}}))

		assert.Equal(t, []string{"0", "1"}, f.Columns)
		assert.Equal(t, [][]string{{"a", "b"}}, f.Rows)
	})
}

func TestFrame_CSV(t *testing.T) {
	t.Parallel()

	tab := newGrid([][]string{{"name", "note"}, {"a", "x, y"}}, false)

	got, err := tabgenie.ToFrame(tab).CSV()

	require.NoError(t, err)
	assert.Equal(t, "name,note\na,\"x, y\"\n", got)
}

func TestToJSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes cells and ordered properties", func(t *testing.T) {
		t.Parallel()

		tab := newGrid([][]string{{"h"}, {"v"}}, false)
		tab.Props.Set("title", "T")
		tab.Props.Set("category", "C")

		b, err := tabgenie.ToJSON(tab, true)
		require.NoError(t, err)

		var got struct {
			Data       [][]tabgenie.Cell `json:"data"`
			Properties map[string]string `json:"properties"`
		}
		require.NoError(t, json.Unmarshal(b, &got))
		require.Len(t, got.Data, 2)
		assert.Equal(t, "h", got.Data[0][0].Value)
		assert.True(t, got.Data[0][0].IsColHeader)
		assert.Equal(t, map[string]string{"title": "T", "category": "C"}, got.Properties)
		assert.Less(t, strings.Index(string(b), `"title"`), strings.Index(string(b), `"category"`))
	})

	t.Run("omits properties when asked", func(t *testing.T) {
		t.Parallel()

		tab := newGrid([][]string{{"h"}}, false)
		tab.Props.Set("title", "T")

		b, err := tabgenie.ToJSON(tab, false)

		require.NoError(t, err)
		assert.NotContains(t, string(b), "properties")
	})
}
