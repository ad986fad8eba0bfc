package datasets

import (
	"html"
	"regexp"
	"strings"

	"github.com/fwojciec/tabgenie"
)

// SciGen reads tables from scientific papers. Cell text carries inline
// markers: [BOLD] values are rendered bold, [EMPTY] cells are blank and
// italics are dropped.
type SciGen struct{}

// NewSciGen creates the SciGen adapter.
func NewSciGen() *SciGen {
	return &SciGen{}
}

type sciGenEntry struct {
	Text               string     `json:"text"`
	TableCaption       string     `json:"table_caption"`
	Paper              string     `json:"paper"`
	PaperID            text       `json:"paper_id"`
	TableColumnNames   []string   `json:"table_column_names"`
	TableContentValues [][]string `json:"table_content_values"`
}

var sciGenInlineTags = regexp.MustCompile(`</*(italic|bold)>|\[ITALIC\]`)

func (d *SciGen) Info() tabgenie.DatasetInfo {
	return tabgenie.DatasetInfo{
		Name:        "scigen",
		Description: "Tables from scientific articles with descriptions requiring arithmetic reasoning.",
		Source:      "kasnerz/scigen",
		License:     "CC BY-NC-SA 4.0",
		Task:        "Write a description of the results in the table.",
	}
}

func (d *SciGen) PrepareTable(entry tabgenie.Entry) (*tabgenie.Table, error) {
	var e sciGenEntry
	if err := decode("scigen", entry, &e); err != nil {
		return nil, err
	}
	if len(e.TableColumnNames) == 0 {
		return nil, malformed("scigen", "missing column names")
	}

	t := tabgenie.NewTable()
	t.Props.Set("title", strings.ReplaceAll(e.TableCaption, "[CONTINUE]", "\n"))
	t.Props.SetNonEmpty("paper", e.Paper)
	t.Props.SetNonEmpty("paper_id", e.PaperID.String())
	setReferences(t, nil, strings.ReplaceAll(e.Text, "[CONTINUE]", "\n"))

	for _, name := range e.TableColumnNames {
		c := sciGenCell(name)
		c.Markup = ""
		c.IsColHeader = true
		t.AddCell(c)
	}
	t.SaveRow()
	for _, row := range e.TableContentValues {
		for _, v := range row {
			t.AddCell(sciGenCell(v))
		}
		t.SaveRow()
	}
	return finish(t)
}

func sciGenCell(s string) *tabgenie.Cell {
	s = sciGenInlineTags.ReplaceAllString(s, "")
	if strings.Contains(s, "[BOLD]") {
		s = strings.TrimSpace(strings.ReplaceAll(s, "[BOLD]", ""))
		return &tabgenie.Cell{Value: s, Markup: "<b>" + html.EscapeString(s) + "</b>"}
	}
	if strings.Contains(s, "[EMPTY]") {
		return tabgenie.NewCell("")
	}
	return tabgenie.NewCell(s)
}
