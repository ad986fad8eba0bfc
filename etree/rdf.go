// Package etree serializes triples as RDF/XML.
package etree

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"unicode"

	"github.com/beevik/etree"
	"github.com/fwojciec/tabgenie"
)

var _ tabgenie.TripleEncoder = (*RDFEncoder)(nil)

// Namespaces used in the generated documents.
const (
	RDFNamespace     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	DefaultNamespace = "http://tabgenie.local/"
)

// RDFEncoder writes triples as an rdf:RDF document. Triples sharing a
// subject are grouped into one rdf:Description in order of first
// appearance. Subjects become resources under Namespace + "entity/",
// predicates become elements in the Namespace + "property/" vocabulary and
// objects are written as literals.
type RDFEncoder struct {
	Namespace string
}

// NewRDFEncoder creates an encoder using DefaultNamespace.
func NewRDFEncoder() *RDFEncoder {
	return &RDFEncoder{Namespace: DefaultNamespace}
}

// EncodeTriples writes the RDF/XML document to w.
func (e *RDFEncoder) EncodeTriples(w io.Writer, triples []tabgenie.Triple) error {
	ns := e.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("rdf:RDF")
	root.CreateAttr("xmlns:rdf", RDFNamespace)
	root.CreateAttr("xmlns:tg", ns+"property/")

	descriptions := make(map[string]*etree.Element)
	for _, tr := range triples {
		desc, ok := descriptions[tr.Subject()]
		if !ok {
			desc = root.CreateElement("rdf:Description")
			desc.CreateAttr("rdf:about", ns+"entity/"+ResourceName(tr.Subject()))
			descriptions[tr.Subject()] = desc
		}
		desc.CreateElement("tg:" + PropertyName(tr.Predicate())).SetText(tr.Object())
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write rdf: %w", err)
	}
	return nil
}

// ResourceName turns a subject into an IRI path segment.
func ResourceName(s string) string {
	return url.PathEscape(strings.Join(strings.Fields(s), "_"))
}

// PropertyName turns a predicate into an XML local name. Characters that
// are not allowed in names become underscores.
func PropertyName(s string) string {
	var b strings.Builder
	for i, r := range strings.Join(strings.Fields(s), "_") {
		switch {
		case r == '_' || unicode.IsLetter(r):
			b.WriteRune(r)
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
			b.WriteRune(r)
		case unicode.IsDigit(r):
			b.WriteString("_")
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "property"
	}
	return b.String()
}
