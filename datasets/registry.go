package datasets

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/fwojciec/tabgenie"
)

var _ tabgenie.Registry = (*Registry)(nil)

// Registry maps dataset names to table builders.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]tabgenie.TableBuilder
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]tabgenie.TableBuilder)}
}

// NewDefaultRegistry creates a Registry holding every built-in dataset.
// The logger receives non-fatal construction problems; parser backs the
// htmltable dataset.
func NewDefaultRegistry(logger *slog.Logger, parser tabgenie.TableParser) *Registry {
	r := NewRegistry()
	for _, b := range []tabgenie.TableBuilder{
		NewToTTo(),
		NewHiTab(logger),
		NewWebNLG(logger),
		NewDART(logger),
		NewEventNarrative(logger),
		NewE2E(),
		NewCACAPO(),
		NewWikiTableText(),
		NewWikiBio(),
		NewWikiSQL(),
		NewLogicNLG(),
		NewLogic2Text(),
		NewChartToTextS(),
		NewSciGen(),
		NewNumericNLG(),
		NewHTMLTable(parser),
	} {
		r.Register(b)
	}
	return r
}

// Register adds b under the name reported by its Info. A builder already
// registered under that name is replaced.
func (r *Registry) Register(b tabgenie.TableBuilder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[b.Info().Name] = b
}

// Builder returns the builder registered under name.
// Returns ENOTFOUND if no such dataset exists.
func (r *Registry) Builder(name string) (tabgenie.TableBuilder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.builders[name]
	if !ok {
		return nil, tabgenie.Errorf(tabgenie.ENOTFOUND, "unknown dataset %q", name)
	}
	return b, nil
}

// Names returns the registered dataset names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
