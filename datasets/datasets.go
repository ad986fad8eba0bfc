// Package datasets turns raw records of the supported data-to-text
// datasets into tables.
//
// Each adapter decodes the JSON record of its dataset into a typed struct,
// drives the table builder and returns a validated grid. Adapters never
// share state between entries and are safe for concurrent use.
package datasets

import (
	"bytes"
	"encoding/json"
	"log/slog"

	"github.com/fwojciec/tabgenie"
)

// text is a JSON value read as a string. Datasets are inconsistent about
// quoting numbers and booleans: strings are unquoted, null becomes the
// empty string and anything else keeps its JSON form.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*t = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(s)
	default:
		*t = text(b)
	}
	return nil
}

func (t text) String() string {
	return string(t)
}

// decode unmarshals entry into v. Returns EMALFORMED if the entry is not a
// JSON object of the expected shape.
func decode(dataset string, entry tabgenie.Entry, v any) error {
	if err := json.Unmarshal(entry, v); err != nil {
		return tabgenie.Errorf(tabgenie.EMALFORMED, "%s: %v", dataset, err)
	}
	return nil
}

// malformed returns an EMALFORMED error for a dataset.
func malformed(dataset, format string, args ...any) error {
	args = append([]any{dataset}, args...)
	return tabgenie.Errorf(tabgenie.EMALFORMED, "%s: "+format, args...)
}

// finish checks the grid invariants of a constructed table.
func finish(t *tabgenie.Table) (*tabgenie.Table, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// setReferences stores refs, falling back to a single target text.
func setReferences(t *tabgenie.Table, refs []string, target string) {
	if len(refs) == 0 && target != "" {
		refs = []string{target}
	}
	if len(refs) > 0 {
		t.SetOutput(tabgenie.OutputReferences, refs...)
	}
}

// setReference stores a single reference text.
func setReference(t *tabgenie.Table, ref string) {
	if ref != "" {
		t.SetOutput(tabgenie.OutputReference, ref)
	}
}

// jsonProp renders v as compact JSON for a property value.
func jsonProp(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// addHeaderRow writes a row of column headers.
func addHeaderRow(t *tabgenie.Table, values []string) {
	for _, v := range values {
		t.AddCell(tabgenie.NewColHeader(v))
	}
	t.SaveRow()
}

// addKeyValueRows writes one row per pair with the key as row header.
func addKeyValueRows(t *tabgenie.Table, keys, values []string) {
	for i := range min(len(keys), len(values)) {
		t.AddCell(tabgenie.NewRowHeader(keys[i]))
		t.AddCell(tabgenie.NewCell(values[i]))
		t.SaveRow()
	}
}

// addDataRows writes rows of plain cells.
func addDataRows(t *tabgenie.Table, rows [][]string) {
	for _, row := range rows {
		for _, v := range row {
			t.AddCell(tabgenie.NewCell(v))
		}
		t.SaveRow()
	}
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
