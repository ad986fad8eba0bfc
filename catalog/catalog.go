// Package catalog ties dataset adapters, entry sources and renderers
// together. It loads splits on demand, builds each table at most once and
// caches rendered views.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/tabgenie"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultViewCacheSize is the number of rendered views kept when no size
// is configured.
const DefaultViewCacheSize = 256

// DefaultConcurrency is the number of tables built in parallel when no
// concurrency is configured.
const DefaultConcurrency = 8

// Catalog serves tables of registered datasets.
//
// Tables returned without edits are shared between callers and must be
// treated as immutable. Edited views are deep copies.
type Catalog struct {
	Registry    tabgenie.Registry
	Source      tabgenie.EntrySource
	Renderer    tabgenie.HTMLRenderer
	Converter   tabgenie.Converter
	Workbooks   tabgenie.WorkbookWriter
	Encoder     tabgenie.TripleEncoder
	Concurrency int

	mu     sync.Mutex
	splits map[splitKey][]tabgenie.Entry
	tables map[tabgenie.TableKey]*tabgenie.Table
	group  singleflight.Group
	views  *lru.Cache[uint64, string]
}

type splitKey struct {
	dataset string
	split   string
}

// New creates a catalog reading entries from source and building tables
// with the builders of registry.
func New(registry tabgenie.Registry, source tabgenie.EntrySource, viewCacheSize int) (*Catalog, error) {
	if viewCacheSize <= 0 {
		viewCacheSize = DefaultViewCacheSize
	}
	views, err := lru.New[uint64, string](viewCacheSize)
	if err != nil {
		return nil, fmt.Errorf("view cache: %w", err)
	}
	return &Catalog{
		Registry: registry,
		Source:   source,
		splits:   make(map[splitKey][]tabgenie.Entry),
		tables:   make(map[tabgenie.TableKey]*tabgenie.Table),
		views:    views,
	}, nil
}

// Entries returns the raw entries of a split, loading it on first use.
func (c *Catalog) Entries(ctx context.Context, dataset, split string) ([]tabgenie.Entry, error) {
	if _, err := c.Registry.Builder(dataset); err != nil {
		return nil, err
	}
	if !tabgenie.ValidSplit(split) {
		return nil, tabgenie.Errorf(tabgenie.EINVALID, "unknown split %q", split)
	}

	k := splitKey{dataset: dataset, split: split}
	c.mu.Lock()
	entries, ok := c.splits[k]
	c.mu.Unlock()
	if ok {
		return entries, nil
	}

	v, err, _ := c.group.Do("split:"+dataset+"/"+split, func() (any, error) {
		c.mu.Lock()
		entries, ok := c.splits[k]
		c.mu.Unlock()
		if ok {
			return entries, nil
		}
		entries, err := c.Source.Entries(ctx, dataset, split)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.splits[k] = entries
		c.mu.Unlock()
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]tabgenie.Entry), nil
}

// ExampleCount returns the number of tables in a split.
func (c *Catalog) ExampleCount(ctx context.Context, dataset, split string) (int, error) {
	entries, err := c.Entries(ctx, dataset, split)
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// Keys returns the keys of every table in a split.
func (c *Catalog) Keys(ctx context.Context, dataset, split string) ([]tabgenie.TableKey, error) {
	n, err := c.ExampleCount(ctx, dataset, split)
	if err != nil {
		return nil, err
	}
	keys := make([]tabgenie.TableKey, n)
	for i := range keys {
		keys[i] = tabgenie.TableKey{Dataset: dataset, Split: split, Index: i}
	}
	return keys, nil
}

// Info describes a dataset together with the example counts of its
// available splits.
func (c *Catalog) Info(ctx context.Context, dataset string) (tabgenie.DatasetInfo, error) {
	b, err := c.Registry.Builder(dataset)
	if err != nil {
		return tabgenie.DatasetInfo{}, err
	}
	info := b.Info()
	info.Examples = make(map[string]int)
	for _, split := range tabgenie.Splits {
		n, err := c.ExampleCount(ctx, dataset, split)
		if tabgenie.ErrorCode(err) == tabgenie.ENOTFOUND {
			continue
		} else if err != nil {
			return tabgenie.DatasetInfo{}, err
		}
		info.Examples[split] = n
	}
	return info, nil
}

// Table returns the table identified by key. Non-empty edits produce a
// copy with the given cell values replaced.
// Returns ENOTFOUND if the index is past the end of the split.
func (c *Catalog) Table(ctx context.Context, key tabgenie.TableKey, edits map[int]string) (*tabgenie.Table, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	t, err := c.table(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(edits) == 0 {
		return t, nil
	}
	return t.WithEdits(edits)
}

func (c *Catalog) table(ctx context.Context, key tabgenie.TableKey) (*tabgenie.Table, error) {
	c.mu.Lock()
	t, ok := c.tables[key]
	c.mu.Unlock()
	if ok {
		return t, nil
	}

	v, err, _ := c.group.Do("table:"+key.String(), func() (any, error) {
		c.mu.Lock()
		t, ok := c.tables[key]
		c.mu.Unlock()
		if ok {
			return t, nil
		}
		b, err := c.Registry.Builder(key.Dataset)
		if err != nil {
			return nil, err
		}
		entries, err := c.Entries(ctx, key.Dataset, key.Split)
		if err != nil {
			return nil, err
		}
		if key.Index >= len(entries) {
			return nil, tabgenie.Errorf(tabgenie.ENOTFOUND, "table %s out of range (%d examples)", key, len(entries))
		}
		t, err = b.PrepareTable(entries[key.Index])
		if err != nil {
			return nil, fmt.Errorf("prepare %s: %w", key, err)
		}
		c.mu.Lock()
		c.tables[key] = t
		c.mu.Unlock()
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*tabgenie.Table), nil
}

// Triples returns the triples of the table with edits applied, restricted
// to cellIDs when given. Rows skipped by fixed-layout extraction are
// reported as ETRIPLE alongside the remaining triples.
func (c *Catalog) Triples(ctx context.Context, key tabgenie.TableKey, edits map[int]string, cellIDs []int) ([]tabgenie.Triple, error) {
	t, err := c.Table(ctx, key, edits)
	if err != nil {
		return nil, err
	}
	return c.triples(key, t, cellIDs)
}

func (c *Catalog) triples(key tabgenie.TableKey, t *tabgenie.Table, cellIDs []int) ([]tabgenie.Triple, error) {
	b, err := c.Registry.Builder(key.Dataset)
	if err != nil {
		return nil, err
	}
	if te, ok := b.(tabgenie.TripleExtractor); ok {
		return te.Triples(t, cellIDs)
	}
	return tabgenie.ExtractTriples(t, cellIDs), nil
}

// View renders the table as interactive HTML with the given properties
// expanded. Views of unedited tables are cached.
func (c *Catalog) View(ctx context.Context, key tabgenie.TableKey, edits map[int]string, displayedProps []string) (string, error) {
	if c.Renderer == nil {
		return "", tabgenie.Errorf(tabgenie.EINTERNAL, "no html renderer configured")
	}
	opts := tabgenie.HTMLOptions{Format: tabgenie.HTMLWeb, DisplayedProps: displayedProps}

	if len(edits) > 0 {
		t, err := c.Table(ctx, key, edits)
		if err != nil {
			return "", err
		}
		return c.Renderer.RenderHTML(t, opts)
	}

	id := viewKey(key, displayedProps)
	if html, ok := c.views.Get(id); ok {
		return html, nil
	}
	t, err := c.Table(ctx, key, nil)
	if err != nil {
		return "", err
	}
	html, err := c.Renderer.RenderHTML(t, opts)
	if err != nil {
		return "", err
	}
	c.views.Add(id, html)
	return html, nil
}

// viewKey hashes a table key and the displayed properties.
func viewKey(key tabgenie.TableKey, displayedProps []string) uint64 {
	var b strings.Builder
	b.WriteString(key.String())
	for _, p := range displayedProps {
		b.WriteByte(0)
		b.WriteString(p)
	}
	return xxhash.Sum64String(b.String())
}

// Fingerprint returns a content hash of the table including its
// properties.
func Fingerprint(t *tabgenie.Table) (string, error) {
	b, err := tabgenie.ToJSON(t, true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(b)), nil
}
