package mock

import (
	"context"

	"github.com/fwojciec/tabgenie"
)

var _ tabgenie.TableBuilder = (*TableBuilder)(nil)

// TableBuilder is a mock implementation of tabgenie.TableBuilder.
type TableBuilder struct {
	InfoFn         func() tabgenie.DatasetInfo
	PrepareTableFn func(entry tabgenie.Entry) (*tabgenie.Table, error)
}

func (b *TableBuilder) Info() tabgenie.DatasetInfo {
	return b.InfoFn()
}

func (b *TableBuilder) PrepareTable(entry tabgenie.Entry) (*tabgenie.Table, error) {
	return b.PrepareTableFn(entry)
}

var _ tabgenie.Registry = (*Registry)(nil)

// Registry is a mock implementation of tabgenie.Registry.
type Registry struct {
	BuilderFn func(name string) (tabgenie.TableBuilder, error)
	NamesFn   func() []string
}

func (r *Registry) Builder(name string) (tabgenie.TableBuilder, error) {
	return r.BuilderFn(name)
}

func (r *Registry) Names() []string {
	return r.NamesFn()
}

var _ tabgenie.EntrySource = (*EntrySource)(nil)

// EntrySource is a mock implementation of tabgenie.EntrySource.
type EntrySource struct {
	EntriesFn func(ctx context.Context, dataset, split string) ([]tabgenie.Entry, error)
}

func (s *EntrySource) Entries(ctx context.Context, dataset, split string) ([]tabgenie.Entry, error) {
	return s.EntriesFn(ctx, dataset, split)
}

var _ tabgenie.TripleExtractor = (*TripleExtractor)(nil)

// TripleExtractor is a mock implementation of tabgenie.TripleExtractor.
type TripleExtractor struct {
	TriplesFn func(t *tabgenie.Table, cellIDs []int) ([]tabgenie.Triple, error)
}

func (e *TripleExtractor) Triples(t *tabgenie.Table, cellIDs []int) ([]tabgenie.Triple, error) {
	return e.TriplesFn(t, cellIDs)
}
