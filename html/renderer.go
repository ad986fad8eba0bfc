// Package html renders tabgenie tables as HTML documents.
package html

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/fwojciec/tabgenie"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Renderer implements tabgenie.HTMLRenderer at compile time.
var _ tabgenie.HTMLRenderer = (*Renderer)(nil)

// CSS classes shared with the web frontend.
const (
	MainTableClass  = "table table-sm table-bordered caption-top main-table"
	MetaTableClass  = "table table-sm table-borderless caption-top meta-table"
	SimpleMetaClass = "table table-sm caption-top meta-table"
	HighlightClass  = "table-active"
)

// Renderer renders tables with golang.org/x/net/html node trees.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderHTML renders the properties and the grid of t wrapped in a <div>.
// Dummy cells are omitted; their anchors carry the spans.
func (r *Renderer) RenderHTML(t *tabgenie.Table, opts tabgenie.HTMLOptions) (string, error) {
	root := element(atom.Div)

	switch {
	case opts.Format == tabgenie.HTMLWeb && t.Props.Len() > 0:
		root.AppendChild(webMeta(&t.Props, opts.DisplayedProps))
	case opts.Format == tabgenie.HTMLExport && opts.IncludeProps && t.Props.Len() > 0:
		root.AppendChild(simpleMeta(&t.Props))
	}

	main, err := mainTable(t)
	if err != nil {
		return "", err
	}
	root.AppendChild(main)

	return renderNode(root)
}

func mainTable(t *tabgenie.Table) (*html.Node, error) {
	tbody := element(atom.Tbody, attr("id", "main-table-body"))
	for _, row := range t.Cells {
		tr := element(atom.Tr)
		for _, c := range row {
			if c.IsDummy {
				continue
			}
			cell, err := cellNode(c)
			if err != nil {
				return nil, err
			}
			tr.AppendChild(cell)
		}
		tbody.AppendChild(tr)
	}

	table := element(atom.Table, attr("class", MainTableClass))
	table.AppendChild(withText(element(atom.Caption), "data"))
	table.AppendChild(tbody)
	return table, nil
}

func cellNode(c *tabgenie.Cell) (*html.Node, error) {
	a := atom.Td
	if c.IsHeader() {
		a = atom.Th
	}
	n := element(a,
		attr("colspan", strconv.Itoa(c.Colspan)),
		attr("rowspan", strconv.Itoa(c.Rowspan)),
		attr("cell_idx", strconv.Itoa(c.ID)),
	)
	if c.IsHighlighted {
		n.Attr = append(n.Attr, attr("class", HighlightClass))
	}

	if c.Markup == "" {
		return withText(n, c.Value), nil
	}
	children, err := html.ParseFragment(strings.NewReader(c.Markup), n)
	if err != nil {
		return nil, tabgenie.Errorf(tabgenie.EINVALID, "cell %d: invalid markup: %v", c.ID, err)
	}
	for _, child := range children {
		n.AppendChild(child)
	}
	return n, nil
}

// webMeta renders properties as collapsible rows toggled by buttons. Rows of
// displayed properties start expanded.
func webMeta(props *tabgenie.Props, displayed []string) *html.Node {
	show := make(map[string]bool, len(displayed))
	for _, key := range displayed {
		show[key] = true
	}

	buttons := element(atom.Div, attr("class", "prop-buttons"))
	tbody := element(atom.Tbody)
	for _, key := range props.Keys() {
		rowClass, expanded := "collapse", "false"
		if show[key] {
			rowClass, expanded = "collapse show", "true"
		}
		wrapperClass := rowClass + " row_" + key + " collapsible"

		tr := element(atom.Tr)
		tr.AppendChild(wrapped(element(atom.Th), wrapperClass, key))
		tr.AppendChild(wrapped(element(atom.Td), wrapperClass, props.Value(key)))
		tbody.AppendChild(tr)

		buttons.AppendChild(withText(element(atom.Button,
			attr("type", "button"),
			attr("class", "prop-btn btn btn-outline-primary btn-sm"),
			attr("data-bs-toggle", "collapse"),
			attr("data-bs-target", ".row_"+key),
			attr("aria-expanded", expanded),
			attr("aria-controls", "row_"+key),
		), key))
	}

	table := element(atom.Table, attr("class", MetaTableClass))
	table.AppendChild(tbody)

	meta := element(atom.Div)
	meta.AppendChild(withText(element(atom.Div, attr("id", "prop-caption")), "properties"))
	meta.AppendChild(buttons)
	meta.AppendChild(table)
	return meta
}

func simpleMeta(props *tabgenie.Props) *html.Node {
	tbody := element(atom.Tbody)
	for _, key := range props.Keys() {
		tr := element(atom.Tr)
		tr.AppendChild(withText(element(atom.Th), key))
		tr.AppendChild(withText(element(atom.Td), props.Value(key)))
		tbody.AppendChild(tr)
	}

	table := element(atom.Table, attr("class", SimpleMetaClass))
	table.AppendChild(withText(element(atom.Caption), "properties"))
	table.AppendChild(tbody)
	return table
}

// wrapped nests text in two <div>s; the outer one is the collapse target.
func wrapped(parent *html.Node, class, text string) *html.Node {
	outer := element(atom.Div, attr("class", class))
	outer.AppendChild(withText(element(atom.Div), text))
	parent.AppendChild(outer)
	return parent
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
