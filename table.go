package tabgenie

import "sort"

// Output keys used by dataset adapters.
const (
	OutputReference  = "reference"
	OutputReferences = "references"
)

// Table is an ordered grid of cells plus metadata and named outputs.
//
// A Table is built with the row-buffer protocol: AddCell appends to the
// current row and SaveRow flushes it into the grid. Once construction is
// complete (rows flushed, merges materialized, highlights propagated) the
// table is treated as immutable; use WithEdits to obtain a modified copy.
type Table struct {
	Props   Props               `json:"properties"`
	Cells   [][]*Cell           `json:"data"`
	Outputs map[string][]string `json:"outputs,omitempty"`

	nextID  int
	current []*Cell
	byID    map[int]*Cell
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		Outputs: make(map[string][]string),
		byID:    make(map[int]*Cell),
	}
}

// AddCell assigns the next sequential ID to c and appends it to the current
// row buffer. Spans below 1 are normalized to 1.
func (t *Table) AddCell(c *Cell) {
	if t.byID == nil {
		t.byID = make(map[int]*Cell)
	}
	if c.Colspan < 1 {
		c.Colspan = 1
	}
	if c.Rowspan < 1 {
		c.Rowspan = 1
	}
	c.ID = t.nextID
	t.current = append(t.current, c)
	t.byID[c.ID] = c
	t.nextID++
}

// SaveRow moves the row buffer into the grid. It is a no-op when the buffer
// is empty.
func (t *Table) SaveRow() {
	if len(t.current) == 0 {
		return
	}
	t.Cells = append(t.Cells, t.current)
	t.current = nil
}

// Cell returns the cell at row i and column j, or nil if out of range.
func (t *Table) Cell(i, j int) *Cell {
	if i < 0 || i >= len(t.Cells) {
		return nil
	}
	row := t.Cells[i]
	if j < 0 || j >= len(row) {
		return nil
	}
	return row[j]
}

// CellByID returns the cell that was added with the given ID.
func (t *Table) CellByID(id int) (*Cell, bool) {
	c, ok := t.byID[id]
	return c, ok
}

// RowCount returns the number of saved rows.
func (t *Table) RowCount() int {
	return len(t.Cells)
}

// ColCount returns the length of the longest saved row.
func (t *Table) ColCount() int {
	n := 0
	for _, row := range t.Cells {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// RowHeaders returns the row header cells of row i. An out-of-range row
// yields an empty result.
func (t *Table) RowHeaders(i int) []*Cell {
	if i < 0 || i >= len(t.Cells) {
		return nil
	}
	var headers []*Cell
	for _, c := range t.Cells[i] {
		if c.IsRowHeader {
			headers = append(headers, c)
		}
	}
	return headers
}

// ColHeaders returns the column header cells of column j, top to bottom.
// Rows too short to reach column j are skipped.
func (t *Table) ColHeaders(j int) []*Cell {
	if j < 0 {
		return nil
	}
	var headers []*Cell
	for _, row := range t.Cells {
		if j >= len(row) {
			continue
		}
		if row[j].IsColHeader {
			headers = append(headers, row[j])
		}
	}
	return headers
}

// FlatCells returns all cells in row-major order.
func (t *Table) FlatCells() []*Cell {
	var cells []*Cell
	for _, row := range t.Cells {
		cells = append(cells, row...)
	}
	return cells
}

// HasHighlights reports whether any cell is highlighted.
func (t *Table) HasHighlights() bool {
	for _, row := range t.Cells {
		for _, c := range row {
			if c.IsHighlighted {
				return true
			}
		}
	}
	return false
}

// HighlightedCells returns the highlighted cells in row-major order.
func (t *Table) HighlightedCells() []*Cell {
	var cells []*Cell
	for _, row := range t.Cells {
		for _, c := range row {
			if c.IsHighlighted {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// SetOutput stores named output texts, replacing previous values.
func (t *Table) SetOutput(key string, values ...string) {
	if t.Outputs == nil {
		t.Outputs = make(map[string][]string)
	}
	t.Outputs[key] = append([]string(nil), values...)
}

// Output returns the texts stored under key.
func (t *Table) Output(key string) []string {
	return t.Outputs[key]
}

// References returns the reference texts of the table. Multi-reference
// datasets store them under OutputReferences; single-reference datasets
// under OutputReference.
func (t *Table) References() []string {
	if refs := t.Outputs[OutputReferences]; len(refs) > 0 {
		return refs
	}
	return t.Outputs[OutputReference]
}

// Validate checks the grid invariants that every downstream view relies on:
// equal row lengths, positive spans and consistent dummy anchors.
func (t *Table) Validate() error {
	if len(t.current) > 0 {
		return Errorf(EIRREGULAR, "unsaved row with %d cells", len(t.current))
	}
	for i, row := range t.Cells {
		if len(row) != len(t.Cells[0]) {
			return Errorf(EIRREGULAR, "row %d has %d cells, row 0 has %d", i, len(row), len(t.Cells[0]))
		}
	}
	for i, row := range t.Cells {
		for j, c := range row {
			if c.Colspan < 1 || c.Rowspan < 1 {
				return Errorf(EINVALID, "cell (%d, %d) has span %dx%d", i, j, c.Rowspan, c.Colspan)
			}
			if !c.IsDummy {
				continue
			}
			if c.Main == nil {
				return Errorf(EANCHOR, "dummy cell (%d, %d) has no anchor", i, j)
			}
			anchor := t.Cell(c.Main.Row, c.Main.Col)
			if anchor == nil || anchor.IsDummy {
				return Errorf(EANCHOR, "dummy cell (%d, %d) points to invalid anchor (%d, %d)", i, j, c.Main.Row, c.Main.Col)
			}
			if !anchor.covers(*c.Main, Position{Row: i, Col: j}) {
				return Errorf(EANCHOR, "anchor (%d, %d) does not cover dummy cell (%d, %d)", c.Main.Row, c.Main.Col, i, j)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the table. Cell IDs are preserved.
func (t *Table) Clone() *Table {
	cp := &Table{
		Props:   t.Props.clone(),
		Outputs: make(map[string][]string, len(t.Outputs)),
		nextID:  t.nextID,
		byID:    make(map[int]*Cell, len(t.byID)),
	}
	for k, v := range t.Outputs {
		cp.Outputs[k] = append([]string(nil), v...)
	}
	if t.Cells != nil {
		cp.Cells = make([][]*Cell, len(t.Cells))
	}
	for i, row := range t.Cells {
		cp.Cells[i] = make([]*Cell, len(row))
		for j, c := range row {
			cc := c.clone()
			cp.Cells[i][j] = cc
			cp.byID[cc.ID] = cc
		}
	}
	for _, c := range t.current {
		cc := c.clone()
		cp.current = append(cp.current, cc)
		cp.byID[cc.ID] = cc
	}
	return cp
}

// WithEdits returns a copy of the table with the values of the given cells
// replaced. Dummy cells anchored at an edited cell receive the new value as
// well. The receiver is never modified.
func (t *Table) WithEdits(edits map[int]string) (*Table, error) {
	cp := t.Clone()
	if len(edits) == 0 {
		return cp, nil
	}

	ids := make([]int, 0, len(edits))
	for id := range edits {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	edited := make(map[Position]string)
	for _, id := range ids {
		c, ok := cp.CellByID(id)
		if !ok {
			return nil, Errorf(ENOTFOUND, "cell %d not found", id)
		}
		c.Value = edits[id]
		c.Markup = ""
		if pos, ok := cp.position(c); ok && !c.IsDummy {
			edited[pos] = c.Value
		}
	}

	for _, row := range cp.Cells {
		for _, c := range row {
			if !c.IsDummy || c.Main == nil {
				continue
			}
			if v, ok := edited[*c.Main]; ok {
				c.Value = v
				c.Markup = ""
			}
		}
	}
	return cp, nil
}

// position returns the grid position of c.
func (t *Table) position(c *Cell) (Position, bool) {
	for i, row := range t.Cells {
		for j, rc := range row {
			if rc == c {
				return Position{Row: i, Col: j}, true
			}
		}
	}
	return Position{}, false
}
