package datasets

import (
	"strings"

	"github.com/fwojciec/tabgenie"
)

// CACAPO reads attribute-value records from news reports in several
// domains and languages.
type CACAPO struct{}

// NewCACAPO creates the CACAPO adapter.
func NewCACAPO() *CACAPO {
	return &CACAPO{}
}

type cacapoEntry struct {
	Lex struct {
		Text []string `json:"text"`
	} `json:"lex"`
	Category           string `json:"category"`
	Lang               string `json:"lang"`
	ModifiedTripleSets struct {
		MTripleSet [][]string `json:"mtriple_set"`
	} `json:"modified_triple_sets"`
}

func (d *CACAPO) Info() tabgenie.DatasetInfo {
	return tabgenie.DatasetInfo{
		Name:        "cacapo",
		Description: "Sports, weather, stock and incident reports in English and Dutch aligned with attribute-value data.",
		Source:      "kasnerz/cacapo",
		License:     "CC BY 4.0",
		Task:        "Write a sentence describing the following data.",
	}
}

func (d *CACAPO) PrepareTable(entry tabgenie.Entry) (*tabgenie.Table, error) {
	var e cacapoEntry
	if err := decode("cacapo", entry, &e); err != nil {
		return nil, err
	}
	if len(e.ModifiedTripleSets.MTripleSet) == 0 {
		return nil, malformed("cacapo", "missing triple set")
	}

	var keys, values []string
	for _, kv := range e.ModifiedTripleSets.MTripleSet[0] {
		key, value, ok := strings.Cut(kv, " | ")
		if !ok {
			return nil, malformed("cacapo", "invalid attribute %q", kv)
		}
		keys = append(keys, key)
		values = append(values, value)
	}

	t := tabgenie.NewTable()
	t.Props.SetNonEmpty("category", e.Category)
	t.Props.SetNonEmpty("lang", e.Lang)
	setReferences(t, e.Lex.Text, "")
	addKeyValueRows(t, keys, values)
	return finish(t)
}

// WikiTableText reads single Wikipedia table rows as key/value pairs.
type WikiTableText struct{}

// NewWikiTableText creates the WikiTableText adapter.
func NewWikiTableText() *WikiTableText {
	return &WikiTableText{}
}

type wikiTableTextEntry struct {
	Reference string   `json:"reference"`
	RowNumber text     `json:"row_number"`
	Headers   []string `json:"headers"`
	Content   []string `json:"content"`
}

func (d *WikiTableText) Info() tabgenie.DatasetInfo {
	return tabgenie.DatasetInfo{
		Name:        "wikitabletext",
		Description: "Rows of Wikipedia tables described by single sentences.",
		Source:      "kasnerz/wikitabletext",
		License:     "CC BY 4.0",
		Task:        "Write a sentence describing the table row.",
	}
}

func (d *WikiTableText) PrepareTable(entry tabgenie.Entry) (*tabgenie.Table, error) {
	var e wikiTableTextEntry
	if err := decode("wikitabletext", entry, &e); err != nil {
		return nil, err
	}
	if len(e.Headers) == 0 {
		return nil, malformed("wikitabletext", "missing headers")
	}
	if len(e.Headers) != len(e.Content) {
		return nil, malformed("wikitabletext", "%d headers for %d values", len(e.Headers), len(e.Content))
	}

	t := tabgenie.NewTable()
	t.Props.SetNonEmpty("row_number", e.RowNumber.String())
	setReference(t, e.Reference)
	addKeyValueRows(t, e.Headers, e.Content)
	return finish(t)
}

// WikiBio reads Wikipedia biography infoboxes.
type WikiBio struct{}

// NewWikiBio creates the WikiBio adapter.
func NewWikiBio() *WikiBio {
	return &WikiBio{}
}

type wikiBioEntry struct {
	TargetText string `json:"target_text"`
	InputText  struct {
		Context string `json:"context"`
		Table   struct {
			ColumnHeader []string `json:"column_header"`
			Content      []string `json:"content"`
		} `json:"table"`
	} `json:"input_text"`
}

// wikiBioReplacer restores the brackets escaped by the tokenizer.
var wikiBioReplacer = strings.NewReplacer("-lrb-", "(", "-rrb-", ")")

func (d *WikiBio) Info() tabgenie.DatasetInfo {
	return tabgenie.DatasetInfo{
		Name:        "wikibio",
		Description: "Wikipedia biography infoboxes paired with the first sentence of the article.",
		Source:      "wiki_bio",
		License:     "CC BY-SA 3.0",
		Task:        "Write the first sentence of a biography based on the infobox.",
	}
}

func (d *WikiBio) PrepareTable(entry tabgenie.Entry) (*tabgenie.Table, error) {
	var e wikiBioEntry
	if err := decode("wikibio", entry, &e); err != nil {
		return nil, err
	}
	infobox := e.InputText.Table
	if len(infobox.ColumnHeader) == 0 {
		return nil, malformed("wikibio", "missing infobox")
	}

	keys := make([]string, len(infobox.ColumnHeader))
	for i, k := range infobox.ColumnHeader {
		keys[i] = wikiBioReplacer.Replace(k)
	}
	values := make([]string, len(infobox.Content))
	for i, v := range infobox.Content {
		values[i] = wikiBioReplacer.Replace(v)
	}

	t := tabgenie.NewTable()
	t.Props.Set("title", wikiBioReplacer.Replace(strings.TrimRight(e.InputText.Context, "\n")))
	setReference(t, e.TargetText)
	addKeyValueRows(t, keys, values)
	return finish(t)
}
