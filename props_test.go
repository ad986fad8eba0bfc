package tabgenie_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/tabgenie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProps(t *testing.T) {
	t.Parallel()

	t.Run("keeps insertion order across updates", func(t *testing.T) {
		t.Parallel()

		var p tabgenie.Props
		p.Set("title", "a")
		p.Set("url", "b")
		p.Set("title", "c")

		assert.Equal(t, []string{"title", "url"}, p.Keys())
		assert.Equal(t, "c", p.Value("title"))
		assert.Equal(t, 2, p.Len())
	})

	t.Run("skips empty values with SetNonEmpty", func(t *testing.T) {
		t.Parallel()

		var p tabgenie.Props
		p.SetNonEmpty("title", "")

		_, ok := p.Get("title")
		assert.False(t, ok)
	})

	t.Run("deletes keys", func(t *testing.T) {
		t.Parallel()

		var p tabgenie.Props
		p.Set("a", "1")
		p.Set("b", "2")
		p.Set("c", "3")
		p.Delete("b")
		p.Delete("missing")

		assert.Equal(t, []string{"a", "c"}, p.Keys())
	})

	t.Run("marshals as an ordered object", func(t *testing.T) {
		t.Parallel()

		var p tabgenie.Props
		p.Set("z", "1")
		p.Set("a", "2")

		b, err := json.Marshal(&p)

		require.NoError(t, err)
		assert.Equal(t, `{"z":"1","a":"2"}`, string(b))
	})

	t.Run("unmarshals keeping document order", func(t *testing.T) {
		t.Parallel()

		var p tabgenie.Props
		p.Set("stale", "x")

		err := json.Unmarshal([]byte(`{"title": "Films", "category": "Art", "id": "7"}`), &p)

		require.NoError(t, err)
		assert.Equal(t, []string{"title", "category", "id"}, p.Keys())
		assert.Equal(t, "Art", p.Value("category"))
		_, ok := p.Get("stale")
		assert.False(t, ok)
	})

	t.Run("rejects non-string values", func(t *testing.T) {
		t.Parallel()

		var p tabgenie.Props

		err := json.Unmarshal([]byte(`{"id": 7}`), &p)

		assert.ErrorContains(t, err, `value of "id"`)
	})

	t.Run("survives a round trip through a table", func(t *testing.T) {
		t.Parallel()

		tab := tabgenie.NewTable()
		tab.Props.Set("title", "Films")
		tab.Props.Set("year", "2001")

		b, err := json.Marshal(tab)
		require.NoError(t, err)
		var decoded tabgenie.Table
		require.NoError(t, json.Unmarshal(b, &decoded))

		assert.Equal(t, []string{"title", "year"}, decoded.Props.Keys())
		assert.Equal(t, "2001", decoded.Props.Value("year"))
	})
}
