package datasets

import (
	"slices"
	"strings"

	"github.com/fwojciec/tabgenie"
)

// E2E reads restaurant meaning representations such as
// "name[The Eagle], eatType[coffee shop]" as key/value rows.
type E2E struct{}

var _ tabgenie.TripleExtractor = (*E2E)(nil)

// NewE2E creates the E2E adapter.
func NewE2E() *E2E {
	return &E2E{}
}

type e2eEntry struct {
	MeaningRepresentation string   `json:"meaning_representation"`
	Target                string   `json:"target"`
	References            []string `json:"references"`
}

func (d *E2E) Info() tabgenie.DatasetInfo {
	return tabgenie.DatasetInfo{
		Name:        "e2e",
		Description: "Restaurant meaning representations with crowdsourced descriptions.",
		Source:      "GEM/e2e_nlg",
		License:     "CC BY-SA 4.0",
		Task:        "Write a short restaurant description.",
	}
}

func (d *E2E) PrepareTable(entry tabgenie.Entry) (*tabgenie.Table, error) {
	var e e2eEntry
	if err := decode("e2e", entry, &e); err != nil {
		return nil, err
	}
	if strings.TrimSpace(e.MeaningRepresentation) == "" {
		return nil, malformed("e2e", "missing meaning representation")
	}

	var keys, values []string
	for _, mr := range strings.Split(e.MeaningRepresentation, ", ") {
		open := strings.Index(mr, "[")
		if open < 0 || !strings.HasSuffix(mr, "]") {
			return nil, malformed("e2e", "invalid slot %q", mr)
		}
		keys = append(keys, mr[:open])
		values = append(values, mr[open+1:len(mr)-1])
	}

	t := tabgenie.NewTable()
	setReferences(t, e.References, e.Target)
	addKeyValueRows(t, keys, values)
	return finish(t)
}

// Triples uses the restaurant name as the subject of every slot. Without a
// name the eatType slot becomes the subject, and without either the
// subject is "restaurant".
func (d *E2E) Triples(t *tabgenie.Table, _ []int) ([]tabgenie.Triple, error) {
	var keys, values []string
	for i, row := range t.Cells {
		if len(row) != 2 {
			return nil, tabgenie.Errorf(tabgenie.ETRIPLE, "row %d has %d cells, want 2", i, len(row))
		}
		keys = append(keys, row[0].Value)
		values = append(values, row[1].Value)
	}

	subject := "restaurant"
	if i := slices.Index(keys, "name"); i >= 0 {
		subject = values[i]
		keys, values = slices.Delete(keys, i, i+1), slices.Delete(values, i, i+1)
		if len(keys) == 0 {
			keys, values = []string{"eatType"}, []string{"restaurant"}
		}
	} else if i := slices.Index(keys, "eatType"); i >= 0 {
		subject = values[i]
		keys, values = slices.Delete(keys, i, i+1), slices.Delete(values, i, i+1)
	}

	triples := make([]tabgenie.Triple, 0, len(keys))
	for i := range keys {
		triples = append(triples, tabgenie.Triple{subject, keys[i], values[i]})
	}
	return triples, nil
}
