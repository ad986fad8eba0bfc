package datasets

import (
	"encoding/json"
	"errors"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/fwojciec/tabgenie"
)

// HiTab reads hierarchical statistical tables. The source grid is dense
// and lists merged regions separately; they are materialized after the
// grid is built. Regions that do not fit the grid are logged and skipped.
type HiTab struct {
	logger *slog.Logger
}

// NewHiTab creates the HiTab adapter. A nil logger discards warnings.
func NewHiTab(logger *slog.Logger) *HiTab {
	return &HiTab{logger: loggerOrDiscard(logger)}
}

type hitabContent struct {
	Title         text                   `json:"title"`
	Texts         [][]string             `json:"texts"`
	TopHeaderRows int                    `json:"top_header_rows_num"`
	LeftHeaderCol int                    `json:"left_header_columns_num"`
	MergedRegions []tabgenie.MergeRegion `json:"merged_regions"`
}

type hitabEntry struct {
	SubSentence  string          `json:"sub_sentence"`
	TableID      text            `json:"table_id"`
	TableSource  text            `json:"table_source"`
	TableContent *hitabContent   `json:"table_content"`
	LinkedCells  json.RawMessage `json:"linked_cells"`
}

func (d *HiTab) Info() tabgenie.DatasetInfo {
	return tabgenie.DatasetInfo{
		Name:        "hitab",
		Description: "Hierarchical tables from statistical reports with aligned sentences.",
		Source:      "kasnerz/hitab",
		License:     "C-UDA 1.0",
		Task:        "Write a sentence describing the highlighted cells of the table.",
	}
}

func (d *HiTab) PrepareTable(entry tabgenie.Entry) (*tabgenie.Table, error) {
	var e hitabEntry
	if err := decode("hitab", entry, &e); err != nil {
		return nil, err
	}
	if e.TableContent == nil || len(e.TableContent.Texts) == 0 {
		return nil, malformed("hitab", "missing table content")
	}
	linked, err := linkedCells(e.LinkedCells)
	if err != nil {
		return nil, malformed("hitab", "linked cells: %v", err)
	}

	content := e.TableContent
	t := tabgenie.NewTable()
	t.Props.Set("title", content.Title.String())
	t.Props.SetNonEmpty("table_id", e.TableID.String())
	t.Props.SetNonEmpty("table_source", e.TableSource.String())
	setReference(t, e.SubSentence)

	for i, row := range content.Texts {
		for j, v := range row {
			t.AddCell(&tabgenie.Cell{
				Value:         v,
				IsColHeader:   i < content.TopHeaderRows-1,
				IsRowHeader:   j < content.LeftHeaderCol,
				IsHighlighted: linked[tabgenie.Position{Row: i, Col: j}],
			})
		}
		t.SaveRow()
	}

	if err := tabgenie.MaterializeMerges(t, content.MergedRegions); err != nil {
		var merr *tabgenie.MergeError
		for _, skipped := range unjoin(err) {
			if errors.As(skipped, &merr) {
				d.logger.Warn("merge region skipped", "dataset", "hitab", "region", merr.Region.String(), "reason", merr.Reason)
			}
		}
	}

	tabgenie.PropagateHeaderHighlights(t)
	return finish(t)
}

var cellPattern = regexp.MustCompile(`\((\d+),\s*(\d+)\)`)

// linkedCells collects the cell positions mentioned in a linked-cells
// annotation. Positions appear either as two-element arrays or as "(i, j)"
// strings, in keys or values, at any depth.
func linkedCells(raw json.RawMessage) (map[tabgenie.Position]bool, error) {
	cells := make(map[tabgenie.Position]bool)
	if len(raw) == 0 {
		return cells, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}

	addString := func(s string) {
		for _, m := range cellPattern.FindAllStringSubmatch(s, -1) {
			i, _ := strconv.Atoi(m[1])
			j, _ := strconv.Atoi(m[2])
			cells[tabgenie.Position{Row: i, Col: j}] = true
		}
	}
	var walk func(v any)
	walk = func(v any) {
		switch v := v.(type) {
		case string:
			addString(v)
		case map[string]any:
			for k, child := range v {
				addString(k)
				walk(child)
			}
		case []any:
			if len(v) == 2 {
				i, iok := v[0].(float64)
				j, jok := v[1].(float64)
				if iok && jok {
					cells[tabgenie.Position{Row: int(i), Col: int(j)}] = true
					return
				}
			}
			for _, child := range v {
				walk(child)
			}
		}
	}
	walk(v)
	return cells, nil
}

// unjoin returns the errors wrapped by a joined error.
func unjoin(err error) []error {
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		return u.Unwrap()
	}
	return []error{err}
}
