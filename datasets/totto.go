package datasets

import "github.com/fwojciec/tabgenie"

// ToTTo reads Wikipedia tables with highlighted cells. Rows omit the
// positions covered by spanning cells, so the grid is restored with a
// GridWriter before the headers of highlighted cells are highlighted.
type ToTTo struct{}

// NewToTTo creates the ToTTo adapter.
func NewToTTo() *ToTTo {
	return &ToTTo{}
}

type tottoCell struct {
	Value      string `json:"value"`
	ColumnSpan int    `json:"column_span"`
	RowSpan    int    `json:"row_span"`
	IsHeader   bool   `json:"is_header"`
}

type tottoEntry struct {
	PageTitle        string        `json:"table_page_title"`
	SectionTitle     string        `json:"table_section_title"`
	SectionText      string        `json:"table_section_text"`
	URL              string        `json:"table_webpage_url"`
	HighlightedCells [][2]int      `json:"highlighted_cells"`
	Table            [][]tottoCell `json:"table"`
	Target           string        `json:"target"`
	References       []string      `json:"references"`
	LinearizedInput  string        `json:"linearized_input"`
	OverlapSubset    text          `json:"overlap_subset"`
}

func (d *ToTTo) Info() tabgenie.DatasetInfo {
	return tabgenie.DatasetInfo{
		Name:        "totto",
		Description: "Tables from English Wikipedia with highlighted cells and their crowdsourced verbalizations.",
		Source:      "GEM/totto",
		License:     "CC BY-SA 3.0",
		Task:        "Give a description of the selected table cells.",
	}
}

func (d *ToTTo) PrepareTable(entry tabgenie.Entry) (*tabgenie.Table, error) {
	var e tottoEntry
	if err := decode("totto", entry, &e); err != nil {
		return nil, err
	}
	if len(e.Table) == 0 {
		return nil, malformed("totto", "missing table")
	}

	t := tabgenie.NewTable()
	t.Props.Set("title", e.PageTitle)
	t.Props.SetNonEmpty("table_section_title", e.SectionTitle)
	t.Props.SetNonEmpty("table_section_text", e.SectionText)
	t.Props.SetNonEmpty("linearized_input", e.LinearizedInput)
	t.Props.SetNonEmpty("overlap_subset", e.OverlapSubset.String())
	t.Props.SetNonEmpty("url", e.URL)
	setReferences(t, e.References, e.Target)

	highlighted := make(map[[2]int]bool, len(e.HighlightedCells))
	for _, pos := range e.HighlightedCells {
		highlighted[pos] = true
	}

	w := tabgenie.NewGridWriter(t)
	for i, row := range e.Table {
		// A row made only of headers labels the columns below it.
		headerRow := len(row) > 0
		for _, raw := range row {
			headerRow = headerRow && raw.IsHeader
		}
		for j, raw := range row {
			w.Add(&tabgenie.Cell{
				Value:         raw.Value,
				Colspan:       raw.ColumnSpan,
				Rowspan:       raw.RowSpan,
				IsColHeader:   raw.IsHeader && headerRow,
				IsRowHeader:   raw.IsHeader && !headerRow,
				IsHighlighted: highlighted[[2]int{i, j}],
			})
		}
		w.SaveRow()
	}

	tabgenie.PropagateHeaderHighlights(t)
	return finish(t)
}
