package tabgenie

// GridWriter builds a regular grid from rows whose cells carry spans but
// omit the positions those spans cover.
//
// Each spanning cell is written once as an anchor. Covered positions on the
// same row are filled immediately with dummies; covered positions on later
// rows are remembered and inserted when the writer reaches them.
type GridWriter struct {
	t       *Table
	row     int
	col     int
	pending map[Position]Position
}

// NewGridWriter returns a writer appending rows to t.
func NewGridWriter(t *Table) *GridWriter {
	return &GridWriter{
		t:       t,
		row:     t.RowCount(),
		pending: make(map[Position]Position),
	}
}

// Pos returns the grid position the next written cell will occupy.
func (w *GridWriter) Pos() Position {
	w.fill()
	return Position{Row: w.row, Col: w.col}
}

// Add writes c at the next free grid position of the current row, followed
// by the dummies covering the rest of its span.
func (w *GridWriter) Add(c *Cell) {
	w.fill()
	w.t.AddCell(c)

	anchorPos := Position{Row: w.row, Col: w.col}
	for rs := 0; rs < c.Rowspan; rs++ {
		for cs := 0; cs < c.Colspan; cs++ {
			switch {
			case rs == 0 && cs == 0:
			case rs == 0:
				w.t.AddCell(w.dummy(c, anchorPos))
			default:
				w.pending[Position{Row: w.row + rs, Col: w.col + cs}] = anchorPos
			}
		}
	}
	w.col += c.Colspan
}

// SaveRow flushes the remaining covered positions of the current row and
// starts a new one.
func (w *GridWriter) SaveRow() {
	w.fill()
	w.t.SaveRow()
	w.row++
	w.col = 0
}

// fill inserts pending dummies located at the current position.
func (w *GridWriter) fill() {
	for {
		anchorPos, ok := w.pending[Position{Row: w.row, Col: w.col}]
		if !ok {
			return
		}
		delete(w.pending, Position{Row: w.row, Col: w.col})
		w.t.AddCell(w.dummy(w.t.Cell(anchorPos.Row, anchorPos.Col), anchorPos))
		w.col++
	}
}

func (w *GridWriter) dummy(anchor *Cell, anchorPos Position) *Cell {
	d := &Cell{}
	d.dummyOf(anchor, anchorPos)
	// Highlights of spanning cells stay on the anchor.
	d.IsHighlighted = false
	return d
}
