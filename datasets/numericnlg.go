package datasets

import (
	"strconv"

	"github.com/fwojciec/tabgenie"
)

// NumericNLG reads result tables from scientific papers with several
// levels of column and row headers.
type NumericNLG struct{}

// NewNumericNLG creates the NumericNLG adapter.
func NewNumericNLG() *NumericNLG {
	return &NumericNLG{}
}

type numericNLGEntry struct {
	Description       string     `json:"description"`
	HeaderMention     text       `json:"header_mention"`
	TableIDPaper      text       `json:"table_id_paper"`
	TableID           text       `json:"table_id"`
	TableName         string     `json:"table_name"`
	Caption           string     `json:"caption"`
	Dir               text       `json:"dir"`
	MetricsLoc        text       `json:"metrics_loc"`
	MetricsType       text       `json:"metrics_type"`
	PaperID           text       `json:"paper_id"`
	PageNo            text       `json:"page_no"`
	TargetEntity      text       `json:"target_entity"`
	Valid             text       `json:"valid"`
	ColumnHeaderLevel text       `json:"column_header_level"`
	RowHeaderLevel    text       `json:"row_header_level"`
	ColumnHeaders     [][]string `json:"column_headers"`
	RowHeaders        [][]string `json:"row_headers"`
	Contents          [][]string `json:"contents"`
}

func (d *NumericNLG) Info() tabgenie.DatasetInfo {
	return tabgenie.DatasetInfo{
		Name:        "numericnlg",
		Description: "Numerical result tables from scientific papers with their descriptions.",
		Source:      "kasnerz/numericnlg",
		License:     "CC BY-SA 4.0",
		Task:        "Write a description of the numerical results in the table.",
	}
}

func (d *NumericNLG) PrepareTable(entry tabgenie.Entry) (*tabgenie.Table, error) {
	var e numericNLGEntry
	if err := decode("numericnlg", entry, &e); err != nil {
		return nil, err
	}
	colLevels, err := level(e.ColumnHeaderLevel)
	if err != nil {
		return nil, malformed("numericnlg", "column header level: %v", err)
	}
	rowLevels, err := level(e.RowHeaderLevel)
	if err != nil {
		return nil, malformed("numericnlg", "row header level: %v", err)
	}
	if len(e.RowHeaders) < len(e.Contents) {
		return nil, malformed("numericnlg", "%d row headers for %d rows", len(e.RowHeaders), len(e.Contents))
	}

	t := tabgenie.NewTable()
	t.Props.Set("title", e.TableName)
	t.Props.SetNonEmpty("caption", e.Caption)
	for _, p := range []struct {
		key   string
		value text
	}{
		{"header_mention", e.HeaderMention},
		{"table_id_paper", e.TableIDPaper},
		{"table_id", e.TableID},
		{"dir", e.Dir},
		{"metrics_loc", e.MetricsLoc},
		{"metrics_type", e.MetricsType},
		{"paper_id", e.PaperID},
		{"page_no", e.PageNo},
		{"target_entity", e.TargetEntity},
		{"valid", e.Valid},
	} {
		t.Props.SetNonEmpty(p.key, p.value.String())
	}
	setReferences(t, nil, e.Description)

	// Column header levels are stored per column, top level first. The
	// corner above the row headers is one empty spanning cell.
	w := tabgenie.NewGridWriter(t)
	for i := range colLevels {
		if rowLevels > 0 {
			w.Add(&tabgenie.Cell{Colspan: rowLevels, IsColHeader: true})
		}
		for _, headers := range e.ColumnHeaders {
			v := ""
			if i < len(headers) {
				v = headers[i]
			}
			w.Add(tabgenie.NewColHeader(v))
		}
		w.SaveRow()
	}
	for i, row := range e.Contents {
		for _, h := range e.RowHeaders[i] {
			w.Add(tabgenie.NewRowHeader(h))
		}
		for _, v := range row {
			w.Add(tabgenie.NewCell(v))
		}
		w.SaveRow()
	}
	return finish(t)
}

func level(v text) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v.String())
}
