package tabgenie

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
)

// Frame is a rectangular view of a table with named columns, as consumed
// by spreadsheet-style exports.
type Frame struct {
	Columns []string
	Rows    [][]string
}

// ToFrame flattens t into a frame. Leading rows made only of header cells
// name the columns; stacked header rows are joined with a space. Covered
// positions carry the value of their anchor. Without header rows columns
// are numbered from 0.
func ToFrame(t *Table) *Frame {
	width := t.ColCount()
	f := &Frame{}

	headerRows := 0
	for _, row := range t.Cells {
		if !allHeaders(row) {
			break
		}
		headerRows++
	}
	if headerRows == len(t.Cells) && headerRows > 0 {
		// A table made only of headers keeps its first row as column names.
		headerRows = 1
	}

	f.Columns = make([]string, width)
	for j := 0; j < width; j++ {
		var parts []string
		for i := 0; i < headerRows; i++ {
			v := ""
			if c := t.Cell(i, j); c != nil {
				v = c.Value
			}
			if len(parts) > 0 && parts[len(parts)-1] == v {
				continue
			}
			parts = append(parts, v)
		}
		name := strings.TrimSpace(strings.Join(parts, " "))
		if headerRows == 0 {
			name = strconv.Itoa(j)
		}
		f.Columns[j] = name
	}

	for i := headerRows; i < len(t.Cells); i++ {
		row := make([]string, width)
		for j := range row {
			if c := t.Cell(i, j); c != nil {
				row[j] = c.Value
			}
		}
		f.Rows = append(f.Rows, row)
	}
	return f
}

func allHeaders(row []*Cell) bool {
	if len(row) == 0 {
		return false
	}
	for _, c := range row {
		if !c.IsHeader() {
			return false
		}
	}
	return true
}

// CSV encodes the frame with a header line of column names.
func (f *Frame) CSV() (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(f.Columns); err != nil {
		return "", err
	}
	if err := w.WriteAll(f.Rows); err != nil {
		return "", err
	}
	return buf.String(), nil
}
