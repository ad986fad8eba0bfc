package datasets

import "github.com/fwojciec/tabgenie"

// HTMLTable reads records holding an HTML <table>, such as tables scraped
// from web pages.
type HTMLTable struct {
	parser tabgenie.TableParser
}

// NewHTMLTable creates the adapter backed by parser.
func NewHTMLTable(parser tabgenie.TableParser) *HTMLTable {
	return &HTMLTable{parser: parser}
}

type htmlTableEntry struct {
	HTML       string   `json:"html"`
	Title      string   `json:"title"`
	URL        string   `json:"url"`
	Reference  string   `json:"reference"`
	References []string `json:"references"`
}

func (d *HTMLTable) Info() tabgenie.DatasetInfo {
	return tabgenie.DatasetInfo{
		Name:        "htmltable",
		Description: "Generic HTML tables with optional reference descriptions.",
		Task:        "Write a description of the table.",
	}
}

func (d *HTMLTable) PrepareTable(entry tabgenie.Entry) (*tabgenie.Table, error) {
	var e htmlTableEntry
	if err := decode("htmltable", entry, &e); err != nil {
		return nil, err
	}
	if e.HTML == "" {
		return nil, malformed("htmltable", "missing html")
	}

	t, err := d.parser.ParseTable(e.HTML)
	if err != nil {
		return nil, malformed("htmltable", "%s", tabgenie.ErrorMessage(err))
	}
	t.Props.SetNonEmpty("title", e.Title)
	t.Props.SetNonEmpty("url", e.URL)
	setReferences(t, e.References, e.Reference)
	return finish(t)
}
