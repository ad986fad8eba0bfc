package slog

import (
	"log/slog"

	"github.com/fwojciec/tabgenie"
)

// Ensure LoggingRegistry implements tabgenie.Registry.
var _ tabgenie.Registry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a Registry so that every builder it returns logs
// table construction.
type LoggingRegistry struct {
	next   tabgenie.Registry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next tabgenie.Registry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Builder returns the wrapped registry's builder decorated with a
// LoggingBuilder. Lookup failures are logged.
func (r *LoggingRegistry) Builder(name string) (tabgenie.TableBuilder, error) {
	b, err := r.next.Builder(name)
	if err != nil {
		r.logger.Warn("dataset lookup", "dataset", name, "err", err)
		return nil, err
	}
	return NewLoggingBuilder(b, r.logger), nil
}

// Names delegates to the wrapped registry.
func (r *LoggingRegistry) Names() []string {
	return r.next.Names()
}
