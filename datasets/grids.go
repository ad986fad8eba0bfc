package datasets

import (
	"slices"
	"strings"

	"github.com/fwojciec/tabgenie"
)

// WikiSQL reads Wikipedia tables paired with questions and SQL queries.
type WikiSQL struct{}

// NewWikiSQL creates the WikiSQL adapter.
func NewWikiSQL() *WikiSQL {
	return &WikiSQL{}
}

type wikiSQLEntry struct {
	Question string `json:"question"`
	SQL      struct {
		HumanReadable string `json:"human_readable"`
	} `json:"sql"`
	Table struct {
		ID           string     `json:"id"`
		Name         string     `json:"name"`
		Caption      string     `json:"caption"`
		SectionTitle string     `json:"section_title"`
		PageTitle    string     `json:"page_title"`
		Header       []string   `json:"header"`
		Rows         [][]string `json:"rows"`
	} `json:"table"`
}

func (d *WikiSQL) Info() tabgenie.DatasetInfo {
	return tabgenie.DatasetInfo{
		Name:        "wikisql",
		Description: "Wikipedia tables with SQL queries and the questions they answer.",
		Source:      "wikisql",
		License:     "BSD 3-Clause",
		Task:        "Write a question answered by the SQL query over the table.",
	}
}

func (d *WikiSQL) PrepareTable(entry tabgenie.Entry) (*tabgenie.Table, error) {
	var e wikiSQLEntry
	if err := decode("wikisql", entry, &e); err != nil {
		return nil, err
	}
	if len(e.Table.Header) == 0 {
		return nil, malformed("wikisql", "missing table header")
	}

	t := tabgenie.NewTable()
	for _, title := range []string{e.Table.Caption, e.Table.SectionTitle, e.Table.PageTitle} {
		if title = strings.TrimSpace(title); title != "" {
			t.Props.Set("title", title)
			break
		}
	}
	t.Props.SetNonEmpty("sql", e.SQL.HumanReadable)
	t.Props.SetNonEmpty("id", e.Table.ID)
	t.Props.SetNonEmpty("name", e.Table.Name)
	setReferences(t, nil, e.Question)

	addHeaderRow(t, e.Table.Header)
	addDataRows(t, e.Table.Rows)
	return finish(t)
}

// LogicNLG reads Wikipedia tables whose linked columns are highlighted.
type LogicNLG struct{}

// NewLogicNLG creates the LogicNLG adapter.
func NewLogicNLG() *LogicNLG {
	return &LogicNLG{}
}

type logicNLGEntry struct {
	Ref           string     `json:"ref"`
	Title         string     `json:"title"`
	TableID       string     `json:"table_id"`
	Template      string     `json:"template"`
	LinkedColumns []int      `json:"linked_columns"`
	Table         [][]string `json:"table"`
}

func (d *LogicNLG) Info() tabgenie.DatasetInfo {
	return tabgenie.DatasetInfo{
		Name:        "logicnlg",
		Description: "Wikipedia tables with statements requiring logical inference.",
		Source:      "kasnerz/logicnlg",
		License:     "MIT",
		Task:        "Write a statement that can be logically inferred from the highlighted columns.",
	}
}

func (d *LogicNLG) PrepareTable(entry tabgenie.Entry) (*tabgenie.Table, error) {
	var e logicNLGEntry
	if err := decode("logicnlg", entry, &e); err != nil {
		return nil, err
	}
	if len(e.Table) == 0 {
		return nil, malformed("logicnlg", "missing table")
	}

	t := tabgenie.NewTable()
	t.Props.Set("title", e.Title)
	t.Props.SetNonEmpty("table_id", e.TableID)
	t.Props.SetNonEmpty("template", e.Template)
	t.Props.Set("linked_columns", jsonProp(e.LinkedColumns))
	t.Props.Set("disclaimer", "Column highlighting is determined automatically in the original dataset and can contain errors.")
	setReference(t, e.Ref)

	for i, row := range e.Table {
		for j, v := range row {
			t.AddCell(&tabgenie.Cell{
				Value:         v,
				IsColHeader:   i == 0,
				IsHighlighted: slices.Contains(e.LinkedColumns, j),
			})
		}
		t.SaveRow()
	}
	return finish(t)
}

// ChartToTextS reads the data tables behind Statista charts.
type ChartToTextS struct{}

// NewChartToTextS creates the Chart-To-Text Statista adapter.
func NewChartToTextS() *ChartToTextS {
	return &ChartToTextS{}
}

type chartToTextEntry struct {
	Ref     string     `json:"ref"`
	Title   string     `json:"title"`
	Content [][]string `json:"content"`
}

func (d *ChartToTextS) Info() tabgenie.DatasetInfo {
	return tabgenie.DatasetInfo{
		Name:        "charttotext-s",
		Description: "Data tables of Statista charts with human-written summaries.",
		Source:      "kasnerz/charttotext-s",
		License:     "GPL-3.0",
		Task:        "Write a summary of the chart data.",
	}
}

func (d *ChartToTextS) PrepareTable(entry tabgenie.Entry) (*tabgenie.Table, error) {
	var e chartToTextEntry
	if err := decode("charttotext-s", entry, &e); err != nil {
		return nil, err
	}
	if len(e.Content) == 0 {
		return nil, malformed("charttotext-s", "missing content")
	}

	t := tabgenie.NewTable()
	t.Props.Set("title", e.Title)
	setReference(t, e.Ref)
	addHeaderRow(t, e.Content[0])
	addDataRows(t, e.Content[1:])
	return finish(t)
}
