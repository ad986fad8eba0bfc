package tabgenie

import "errors"

// Triple is a (subject, predicate, object) statement derived from a table.
type Triple [3]string

// Subject returns the first component.
func (t Triple) Subject() string { return t[0] }

// Predicate returns the second component.
func (t Triple) Predicate() string { return t[1] }

// Object returns the third component.
func (t Triple) Object() string { return t[2] }

// TripleExtractor is implemented by dataset adapters whose tables encode
// triples in a dataset-specific layout.
type TripleExtractor interface {
	Triples(t *Table, cellIDs []int) ([]Triple, error)
}

// ExtractTriples derives triples from t using header lookups.
//
// For every data cell the first row header is the subject and the first
// column header is the predicate. When only one kind of header labels the
// cell, the table title becomes the subject and that header the predicate.
// Dummy cells carry their anchor's value and are read like any other cell,
// so a merged value yields a triple under every header it spans. Identical
// triples are returned once. Cells without headers yield nothing. A
// non-empty cellIDs restricts extraction to the listed cells.
func ExtractTriples(t *Table, cellIDs []int) []Triple {
	var only map[int]bool
	if len(cellIDs) > 0 {
		only = make(map[int]bool, len(cellIDs))
		for _, id := range cellIDs {
			only[id] = true
		}
	}

	title := t.Props.Value("title")
	var triples []Triple
	seen := make(map[Triple]bool)
	for i, row := range t.Cells {
		for j, c := range row {
			if c.IsHeader() {
				continue
			}
			if only != nil && !only[c.ID] {
				continue
			}

			rowHeaders := t.RowHeaders(i)
			colHeaders := t.ColHeaders(j)

			var subj, pred string
			switch {
			case len(rowHeaders) > 0 && len(colHeaders) > 0:
				subj, pred = rowHeaders[0].Value, colHeaders[0].Value
			case len(rowHeaders) > 0:
				subj, pred = title, rowHeaders[0].Value
			case len(colHeaders) > 0:
				subj, pred = title, colHeaders[0].Value
			default:
				continue
			}
			tr := Triple{subj, pred, c.Value}
			if seen[tr] {
				continue
			}
			seen[tr] = true
			triples = append(triples, tr)
		}
	}
	return triples
}

// FixedLayoutTriples reads triples from tables whose first row is a header
// and every following row holds exactly subject, predicate and object.
//
// Rows of any other width are skipped. The returned error joins one ETRIPLE
// error per skipped row; the triples read from the valid rows are returned
// regardless.
func FixedLayoutTriples(t *Table) ([]Triple, error) {
	var triples []Triple
	var errs []error
	for i := 1; i < len(t.Cells); i++ {
		row := t.Cells[i]
		if len(row) != 3 {
			errs = append(errs, Errorf(ETRIPLE, "row %d has %d components, want 3", i, len(row)))
			continue
		}
		triples = append(triples, Triple{row[0].Value, row[1].Value, row[2].Value})
	}
	return triples, errors.Join(errs...)
}
