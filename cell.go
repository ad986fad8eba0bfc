package tabgenie

// Position addresses a cell in the grid by zero-based row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cell is the atomic unit of a Table grid.
type Cell struct {
	ID    int    `json:"id"`
	Value string `json:"value"`

	// Markup is optional pre-rendered inline HTML. Renderers prefer it over
	// Value; text views always use Value.
	Markup string `json:"markup,omitempty"`

	Colspan int `json:"colspan"`
	Rowspan int `json:"rowspan"`

	IsColHeader   bool `json:"isColHeader"`
	IsRowHeader   bool `json:"isRowHeader"`
	IsHighlighted bool `json:"isHighlighted"`
	IsDummy       bool `json:"isDummy"`

	// Main points to the anchor of the merged region covering a dummy cell.
	// Nil unless IsDummy is set.
	Main *Position `json:"mainCell,omitempty"`
}

// NewCell returns a cell holding value with a 1x1 span.
func NewCell(value string) *Cell {
	return &Cell{Value: value, Colspan: 1, Rowspan: 1}
}

// NewColHeader returns a column header cell.
func NewColHeader(value string) *Cell {
	c := NewCell(value)
	c.IsColHeader = true
	return c
}

// NewRowHeader returns a row header cell.
func NewRowHeader(value string) *Cell {
	c := NewCell(value)
	c.IsRowHeader = true
	return c
}

// IsHeader reports whether the cell labels a row or a column.
func (c *Cell) IsHeader() bool {
	return c.IsColHeader || c.IsRowHeader
}

// Display returns the markup if present, otherwise the plain value.
func (c *Cell) Display() string {
	if c.Markup != "" {
		return c.Markup
	}
	return c.Value
}

// covers reports whether the span rectangle anchored at anchor contains pos.
func (c *Cell) covers(anchor, pos Position) bool {
	return pos.Row >= anchor.Row && pos.Row < anchor.Row+c.Rowspan &&
		pos.Col >= anchor.Col && pos.Col < anchor.Col+c.Colspan
}

// dummyOf turns c into a dummy of the anchor cell located at anchorPos.
// Spans reset to 1; only the anchor carries the real span.
func (c *Cell) dummyOf(anchor *Cell, anchorPos Position) {
	c.IsDummy = true
	c.Value = anchor.Value
	c.Markup = anchor.Markup
	c.IsColHeader = anchor.IsColHeader
	c.IsRowHeader = anchor.IsRowHeader
	c.IsHighlighted = anchor.IsHighlighted
	c.Colspan = 1
	c.Rowspan = 1
	c.Main = &Position{Row: anchorPos.Row, Col: anchorPos.Col}
}

func (c *Cell) clone() *Cell {
	cp := *c
	if c.Main != nil {
		m := *c.Main
		cp.Main = &m
	}
	return &cp
}
