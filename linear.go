package tabgenie

import (
	"fmt"
	"strings"
)

// LinearStyle selects how cells are addressed in linearized text.
type LinearStyle string

const (
	// StyleIndex prefixes every cell with its grid coordinates: [i][j] value.
	StyleIndex LinearStyle = "index"
	// StyleMarkers prefixes every row with [R] and every cell with [H] or [C].
	StyleMarkers LinearStyle = "markers"
	// StyleStructure is an alias of StyleMarkers.
	StyleStructure LinearStyle = "structure"
	// Style2D renders rows as pipe-delimited lines.
	Style2D LinearStyle = "2d"
)

// ParseLinearStyle returns the style named s.
func ParseLinearStyle(s string) (LinearStyle, error) {
	switch LinearStyle(s) {
	case StyleIndex, StyleMarkers, Style2D:
		return LinearStyle(s), nil
	case StyleStructure:
		return StyleMarkers, nil
	}
	return "", Errorf(EINVALID, "unknown linearization style %q", s)
}

// PropsMode selects which table properties prefix the linearized text.
type PropsMode string

const (
	PropsAll     PropsMode = "all"
	PropsFactual PropsMode = "factual"
	PropsNone    PropsMode = "none"
)

const propsDelimiter = "==================="

// ParsePropsMode returns the props mode named s. An empty string selects
// PropsAll.
func ParsePropsMode(s string) (PropsMode, error) {
	switch PropsMode(s) {
	case "":
		return PropsAll, nil
	case PropsAll, PropsFactual, PropsNone:
		return PropsMode(s), nil
	}
	return "", Errorf(EINVALID, "unknown props mode %q", s)
}

// LinearOptions configures Linearize.
type LinearOptions struct {
	Style LinearStyle
	Props PropsMode

	// HighlightedOnly restricts output to highlighted cells when the table
	// has any.
	HighlightedOnly bool

	// CellIDs, when set, replaces grid traversal: exactly these cells are
	// emitted in the given order as a single row.
	CellIDs []int
}

type linearCell struct {
	pos  Position
	cell *Cell
}

// Linearize flattens t into text for model input.
func Linearize(t *Table, opts LinearOptions) string {
	style := opts.Style
	switch style {
	case "":
		style = Style2D
	case StyleStructure:
		style = StyleMarkers
	}

	var b strings.Builder
	writeLinearProps(&b, t, style, opts.Props)

	rows := linearRows(t, opts)
	switch style {
	case Style2D:
		for _, row := range rows {
			for _, lc := range row {
				fmt.Fprintf(&b, "| %s ", lc.cell.Value)
			}
			b.WriteString("|\n")
		}
	case StyleMarkers:
		var tokens []string
		for _, row := range rows {
			tokens = append(tokens, "[R]")
			for _, lc := range row {
				marker := "[C]"
				if lc.cell.IsHeader() {
					marker = "[H]"
				}
				tokens = append(tokens, marker+" "+lc.cell.Value)
			}
		}
		writeTokens(&b, tokens)
	case StyleIndex:
		var tokens []string
		for _, row := range rows {
			for _, lc := range row {
				tokens = append(tokens, fmt.Sprintf("[%d][%d] %s", lc.pos.Row, lc.pos.Col, lc.cell.Value))
			}
		}
		writeTokens(&b, tokens)
	}
	return b.String()
}

func writeTokens(b *strings.Builder, tokens []string) {
	if len(tokens) == 0 {
		return
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(strings.Join(tokens, " "))
}

// linearRows selects the cells to emit, grouped by row.
func linearRows(t *Table, opts LinearOptions) [][]linearCell {
	if len(opts.CellIDs) > 0 {
		var row []linearCell
		for _, id := range opts.CellIDs {
			c, ok := t.CellByID(id)
			if !ok {
				continue
			}
			row = append(row, linearCell{pos: Position{Row: 0, Col: len(row)}, cell: c})
		}
		if len(row) == 0 {
			return nil
		}
		return [][]linearCell{row}
	}

	highlightedOnly := opts.HighlightedOnly && t.HasHighlights()
	var rows [][]linearCell
	for i, cells := range t.Cells {
		var row []linearCell
		for j, c := range cells {
			if highlightedOnly && !c.IsHighlighted {
				continue
			}
			row = append(row, linearCell{pos: Position{Row: i, Col: j}, cell: c})
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}

func writeLinearProps(b *strings.Builder, t *Table, style LinearStyle, mode PropsMode) {
	keys := linearPropKeys(t, mode)
	if len(keys) == 0 {
		return
	}
	if style == Style2D {
		b.WriteString(propsDelimiter + "\n")
		for _, k := range keys {
			fmt.Fprintf(b, "%s: %s\n", k, t.Props.Value(k))
		}
		b.WriteString(propsDelimiter + "\n")
		return
	}
	tokens := make([]string, 0, len(keys))
	for _, k := range keys {
		tokens = append(tokens, fmt.Sprintf("[%s] %s", k, t.Props.Value(k)))
	}
	b.WriteString(strings.Join(tokens, " "))
}

func linearPropKeys(t *Table, mode PropsMode) []string {
	switch mode {
	case PropsNone:
		return nil
	case PropsFactual:
		var keys []string
		for _, k := range t.Props.Keys() {
			if strings.Contains(k, "title") || strings.Contains(k, "category") {
				keys = append(keys, k)
			}
		}
		return keys
	default:
		return t.Props.Keys()
	}
}
