package datasets

import (
	"strconv"

	"github.com/fwojciec/tabgenie"
)

// Logic2Text reads Wikipedia tables with logical forms. The annotation of
// the logical form points at the cells the description talks about; those
// cells and their column headers are highlighted.
type Logic2Text struct{}

// NewLogic2Text creates the Logic2Text adapter.
func NewLogic2Text() *Logic2Text {
	return &Logic2Text{}
}

type logic2TextEntry struct {
	Sent        string          `json:"sent"`
	Topic       string          `json:"topic"`
	URL         string          `json:"url"`
	Wiki        string          `json:"wiki"`
	Action      string          `json:"action"`
	Interpret   string          `json:"interpret"`
	LogicStr    string          `json:"logic_str"`
	Annotation  map[string]text `json:"annotation"`
	TableHeader []string        `json:"table_header"`
	TableCont   [][]string      `json:"table_cont"`
}

func (d *Logic2Text) Info() tabgenie.DatasetInfo {
	return tabgenie.DatasetInfo{
		Name:        "logic2text",
		Description: "Wikipedia tables with logical forms and their descriptions.",
		Source:      "kasnerz/logic2text",
		License:     "MIT",
		Task:        "Write a description of the table following the logical form.",
	}
}

func (d *Logic2Text) PrepareTable(entry tabgenie.Entry) (*tabgenie.Table, error) {
	var e logic2TextEntry
	if err := decode("logic2text", entry, &e); err != nil {
		return nil, err
	}
	if len(e.TableHeader) == 0 {
		return nil, malformed("logic2text", "missing table header")
	}

	t := tabgenie.NewTable()
	t.Props.Set("title", e.Topic)
	t.Props.SetNonEmpty("url", e.URL)
	t.Props.SetNonEmpty("wiki", e.Wiki)
	t.Props.SetNonEmpty("action", e.Action)
	t.Props.SetNonEmpty("interpret", e.Interpret)
	t.Props.SetNonEmpty("logic_str", e.LogicStr)
	if len(e.Annotation) > 0 {
		t.Props.Set("annotation", jsonProp(e.Annotation))
	}
	setReferences(t, nil, e.Sent)

	addHeaderRow(t, e.TableHeader)
	ann := annotation(e.Annotation)
	for i, row := range e.TableCont {
		for j, v := range row {
			t.AddCell(&tabgenie.Cell{Value: v, IsHighlighted: ann.selects(i, j)})
		}
		t.SaveRow()
	}

	tabgenie.PropagateHeaderHighlights(t)
	return finish(t)
}

// annotation holds the 1-based row and column references of a logical
// form annotation.
type annotation map[string]text

func (a annotation) has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := a[k]; !ok {
			return false
		}
	}
	return true
}

// is reports whether the annotation field key refers to index n (0-based).
func (a annotation) is(key string, n int) bool {
	v, ok := a[key]
	return ok && v.String() == strconv.Itoa(n+1)
}

// selects reports whether data cell (i, j) is referenced. Which fields are
// present depends on the kind of logical form.
func (a annotation) selects(i, j int) bool {
	switch {
	case a.has("row_1", "row_2", "col", "col_other"):
		return (a.is("row_1", i) || a.is("row_2", i)) && (a.is("col", j) || a.is("col_other", j))
	case a.has("row", "col", "col_other"):
		return a.is("row", i) && (a.is("col", j) || a.is("col_other", j))
	case a.has("col"):
		return a.is("col", j)
	case a.has("col_superlative", "row_superlative"):
		return (a.is("col_superlative", j) && a.is("row_superlative", i)) ||
			(a.is("other_col", j) && a.is("row_superlative", i)) ||
			(a.is("col_superlative", j) && a.is("other_row", i))
	default:
		return false
	}
}
