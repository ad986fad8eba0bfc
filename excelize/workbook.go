// Package excelize writes tables as XLSX workbooks.
package excelize

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/tabgenie"
	"github.com/xuri/excelize/v2"
)

var _ tabgenie.WorkbookWriter = (*WorkbookWriter)(nil)

// HighlightColor fills highlighted cells.
const HighlightColor = "FFF2CC"

// maxSheetName is the longest sheet name Excel accepts.
const maxSheetName = 31

// WorkbookWriter writes one worksheet per table.
//
// When properties are included they are written first as bold key cells
// next to their values, followed by an empty row and the grid. Header
// cells are bold, highlighted cells are filled and spanning cells become
// merged ranges.
type WorkbookWriter struct{}

// NewWorkbookWriter creates a new WorkbookWriter.
func NewWorkbookWriter() *WorkbookWriter {
	return &WorkbookWriter{}
}

// WriteWorkbook writes the sheets to w. Sheet names are sanitized and made
// unique. Returns EINVALID when sheets is empty.
func (ww *WorkbookWriter) WriteWorkbook(w io.Writer, sheets []tabgenie.Sheet, includeProps bool) error {
	if len(sheets) == 0 {
		return tabgenie.Errorf(tabgenie.EINVALID, "no sheets to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	styles := &styleSet{f: f, ids: make(map[styleKey]int)}
	used := make(map[string]bool)
	for i, s := range sheets {
		name := sheetName(s.Name, i, used)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}

		if err := writeSheet(f, styles, name, s.Table, includeProps); err != nil {
			return fmt.Errorf("write sheet %q: %w", name, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, styles *styleSet, sheet string, t *tabgenie.Table, includeProps bool) error {
	row := 1
	if includeProps && t.Props.Len() > 0 {
		for _, key := range t.Props.Keys() {
			if err := setCell(f, styles, sheet, 1, row, key, styleKey{bold: true}); err != nil {
				return err
			}
			if err := setCell(f, styles, sheet, 2, row, t.Props.Value(key), styleKey{}); err != nil {
				return err
			}
			row++
		}
		row++
	}

	for i, cells := range t.Cells {
		for j, c := range cells {
			if c.IsDummy {
				continue
			}
			key := styleKey{bold: c.IsHeader(), fill: c.IsHighlighted}
			if err := setCell(f, styles, sheet, j+1, row+i, c.Value, key); err != nil {
				return err
			}
			if c.Colspan == 1 && c.Rowspan == 1 {
				continue
			}
			first, _ := excelize.CoordinatesToCellName(j+1, row+i)
			last, _ := excelize.CoordinatesToCellName(j+c.Colspan, row+i+c.Rowspan-1)
			if err := f.MergeCell(sheet, first, last); err != nil {
				return err
			}
			if id, err := styles.id(key); err != nil {
				return err
			} else if id != 0 {
				if err := f.SetCellStyle(sheet, first, last, id); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func setCell(f *excelize.File, styles *styleSet, sheet string, col, row int, value string, key styleKey) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, name, value); err != nil {
		return err
	}
	id, err := styles.id(key)
	if err != nil || id == 0 {
		return err
	}
	return f.SetCellStyle(sheet, name, name, id)
}

type styleKey struct {
	bold bool
	fill bool
}

// styleSet creates each cell style once per workbook.
type styleSet struct {
	f   *excelize.File
	ids map[styleKey]int
}

// id returns the style for key, or 0 for the default style.
func (s *styleSet) id(key styleKey) (int, error) {
	if key == (styleKey{}) {
		return 0, nil
	}
	if id, ok := s.ids[key]; ok {
		return id, nil
	}

	style := &excelize.Style{Font: &excelize.Font{Bold: key.bold}}
	if key.fill {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{HighlightColor}}
	}
	id, err := s.f.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("create style: %w", err)
	}
	s.ids[key] = id
	return id, nil
}

// sheetName strips characters Excel rejects, truncates the name and makes
// it unique among used names.
func sheetName(name string, i int, used map[string]bool) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" {
		name = fmt.Sprintf("table_%d", i)
	}
	name = truncate(name, maxSheetName)

	candidate := name
	for n := 1; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf("_%d", n)
		candidate = truncate(name, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
