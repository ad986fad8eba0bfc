package datasets

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/fwojciec/tabgenie"
)

// tripleHeader labels the columns of fixed-layout triple tables.
var tripleHeader = []string{"subject", "predicate", "object"}

// keepParentheses normalizes knowledge-graph labels but keeps
// disambiguation suffixes such as "(band)".
var keepParentheses = tabgenie.NormalizeOptions{KeepParentheses: true}

// fixedLayout implements tabgenie.TripleExtractor for tables with one
// subject, predicate, object row per triple.
type fixedLayout struct {
	logger *slog.Logger
}

func (fixedLayout) Triples(t *tabgenie.Table, _ []int) ([]tabgenie.Triple, error) {
	return tabgenie.FixedLayoutTriples(t)
}

// addTriples writes the header row and one row per triple. Triples with
// other than three components are logged and skipped so the grid stays
// rectangular.
func (f fixedLayout) addTriples(t *tabgenie.Table, dataset string, triples [][]string, normalize bool) {
	addHeaderRow(t, tripleHeader)
	for i, triple := range triples {
		if len(triple) != 3 {
			f.logger.Warn("triple skipped", "dataset", dataset, "triple", i, "components", len(triple))
			continue
		}
		for _, el := range triple {
			if normalize {
				el = tabgenie.Normalize(el, keepParentheses)
			}
			t.AddCell(tabgenie.NewCell(el))
		}
		t.SaveRow()
	}
}

// WebNLG reads DBpedia triple sets written as "subject | predicate | object".
type WebNLG struct{ fixedLayout }

var _ tabgenie.TripleExtractor = (*WebNLG)(nil)

// NewWebNLG creates the WebNLG adapter. A nil logger discards warnings
// about malformed triples.
func NewWebNLG(logger *slog.Logger) *WebNLG {
	return &WebNLG{fixedLayout{logger: loggerOrDiscard(logger)}}
}

type webnlgEntry struct {
	Input      []string `json:"input"`
	Target     string   `json:"target"`
	References []string `json:"references"`
	Category   string   `json:"category"`
}

func (d *WebNLG) Info() tabgenie.DatasetInfo {
	return tabgenie.DatasetInfo{
		Name:        "webnlg",
		Description: "DBpedia triple sets verbalized in English.",
		Source:      "GEM/web_nlg",
		License:     "CC BY-NC-SA 4.0",
		Task:        "Write a short description of the following RDF triples.",
	}
}

func (d *WebNLG) PrepareTable(entry tabgenie.Entry) (*tabgenie.Table, error) {
	var e webnlgEntry
	if err := decode("webnlg", entry, &e); err != nil {
		return nil, err
	}
	if len(e.Input) == 0 {
		return nil, malformed("webnlg", "missing input triples")
	}

	t := tabgenie.NewTable()
	t.Props.SetNonEmpty("category", e.Category)
	setReferences(t, e.References, e.Target)

	triples := make([][]string, len(e.Input))
	for i, triple := range e.Input {
		triples[i] = strings.Split(triple, "|")
	}
	d.addTriples(t, "webnlg", triples, true)
	return finish(t)
}

// DART reads open-domain triple sets.
type DART struct{ fixedLayout }

var _ tabgenie.TripleExtractor = (*DART)(nil)

// NewDART creates the DART adapter. A nil logger discards warnings
// about malformed triples.
func NewDART(logger *slog.Logger) *DART {
	return &DART{fixedLayout{logger: loggerOrDiscard(logger)}}
}

type dartEntry struct {
	TripleSet  [][]string `json:"tripleset"`
	Target     string     `json:"target"`
	References []string   `json:"references"`
}

func (d *DART) Info() tabgenie.DatasetInfo {
	return tabgenie.DatasetInfo{
		Name:        "dart",
		Description: "Open-domain structured data records from tables and knowledge graphs.",
		Source:      "GEM/dart",
		License:     "MIT",
		Task:        "Write a short description of the following RDF triples.",
	}
}

func (d *DART) PrepareTable(entry tabgenie.Entry) (*tabgenie.Table, error) {
	var e dartEntry
	if err := decode("dart", entry, &e); err != nil {
		return nil, err
	}
	if len(e.TripleSet) == 0 {
		return nil, malformed("dart", "missing triple set")
	}

	t := tabgenie.NewTable()
	setReferences(t, e.References, e.Target)
	d.addTriples(t, "dart", e.TripleSet, false)
	return finish(t)
}

// EventNarrative reads event-centric knowledge graph triples. References
// are stored delexicalized together with the entity map that restores them.
type EventNarrative struct{ fixedLayout }

var _ tabgenie.TripleExtractor = (*EventNarrative)(nil)

// NewEventNarrative creates the EventNarrative adapter. A nil logger
// discards warnings about malformed triples.
func NewEventNarrative(logger *slog.Logger) *EventNarrative {
	return &EventNarrative{fixedLayout{logger: loggerOrDiscard(logger)}}
}

type eventNarrativeEntry struct {
	Narration      string            `json:"narration"`
	EntityRefDict  map[string]string `json:"entity_ref_dict"`
	EventName      string            `json:"Event_Name"`
	Types          text              `json:"types"`
	WikipediaLabel string            `json:"wikipediaLabel"`
	KeepTriples    [][]string        `json:"keep_triples"`
}

func (d *EventNarrative) Info() tabgenie.DatasetInfo {
	return tabgenie.DatasetInfo{
		Name:        "eventnarrative",
		Description: "Event-centric knowledge graph subgraphs paired with narrations.",
		Source:      "kasnerz/eventnarrative",
		License:     "CC BY 4.0",
		Task:        "Write a short description of the following RDF triples.",
	}
}

func (d *EventNarrative) PrepareTable(entry tabgenie.Entry) (*tabgenie.Table, error) {
	var e eventNarrativeEntry
	if err := decode("eventnarrative", entry, &e); err != nil {
		return nil, err
	}
	if len(e.KeepTriples) == 0 {
		return nil, malformed("eventnarrative", "missing triples")
	}

	t := tabgenie.NewTable()
	t.Props.SetNonEmpty("title", e.EventName)
	t.Props.SetNonEmpty("types", e.Types.String())
	t.Props.SetNonEmpty("reference_delex", e.Narration)
	if len(e.EntityRefDict) > 0 {
		t.Props.Set("entity_ref_dict", jsonProp(e.EntityRefDict))
	}
	t.Props.SetNonEmpty("wikipediaLabel", e.WikipediaLabel)
	setReference(t, relexicalize(e.Narration, e.EntityRefDict))

	d.addTriples(t, "eventnarrative", e.KeepTriples, true)
	return finish(t)
}

// relexicalize replaces placeholders in s with the entities they stand
// for. Longer placeholders are replaced first.
func relexicalize(s string, entities map[string]string) string {
	keys := make([]string, 0, len(entities))
	for k := range entities {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		s = strings.ReplaceAll(s, k, entities[k])
	}
	return s
}
