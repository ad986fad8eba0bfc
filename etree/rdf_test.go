package etree_test

import (
	"bytes"
	"testing"

	"github.com/beevik/etree"
	"github.com/fwojciec/tabgenie"
	tgetree "github.com/fwojciec/tabgenie/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRDFEncoder_EncodeTriples(t *testing.T) {
	t.Parallel()

	t.Run("groups triples by subject", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := tgetree.NewRDFEncoder().EncodeTriples(&buf, []tabgenie.Triple{
			{"Prague", "capital of", "Czechia"},
			{"Brno", "region", "South Moravia"},
			{"Prague", "population", "1.3M & growing"},
		})
		require.NoError(t, err)

		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

		root := doc.SelectElement("RDF")
		require.NotNil(t, root)
		assert.Equal(t, tgetree.RDFNamespace, root.SelectAttrValue("xmlns:rdf", ""))

		descs := root.SelectElements("Description")
		require.Len(t, descs, 2)
		assert.Equal(t, "http://tabgenie.local/entity/Prague", descs[0].SelectAttrValue("rdf:about", ""))
		assert.Equal(t, "Czechia", descs[0].SelectElement("capital_of").Text())
		assert.Equal(t, "1.3M & growing", descs[0].SelectElement("population").Text())
		assert.Equal(t, "South Moravia", descs[1].SelectElement("region").Text())
	})

	t.Run("writes an empty document without triples", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, tgetree.NewRDFEncoder().EncodeTriples(&buf, nil))

		assert.Contains(t, buf.String(), "<rdf:RDF")
		assert.NotContains(t, buf.String(), "rdf:Description")
	})

	t.Run("uses a custom namespace", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		enc := &tgetree.RDFEncoder{Namespace: "http://example.org/"}
		require.NoError(t, enc.EncodeTriples(&buf, []tabgenie.Triple{{"a", "b", "c"}}))

		assert.Contains(t, buf.String(), `rdf:about="http://example.org/entity/a"`)
		assert.Contains(t, buf.String(), `xmlns:tg="http://example.org/property/"`)
	})
}

func TestPropertyName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "birth_place", tgetree.PropertyName("birth place"))
	assert.Equal(t, "_2019", tgetree.PropertyName("2019"))
	assert.Equal(t, "a_b", tgetree.PropertyName("a/b"))
	assert.Equal(t, "v1.2-x", tgetree.PropertyName("v1.2-x"))
	assert.Equal(t, "property", tgetree.PropertyName("  "))
}

func TestResourceName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Alan_Bean", tgetree.ResourceName(" Alan  Bean "))
	assert.Equal(t, "a%2Fb", tgetree.ResourceName("a/b"))
}
