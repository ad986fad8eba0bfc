package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/tabgenie"
)

// Ensure LoggingBuilder implements tabgenie.TableBuilder and
// tabgenie.TripleExtractor.
var (
	_ tabgenie.TableBuilder    = (*LoggingBuilder)(nil)
	_ tabgenie.TripleExtractor = (*LoggingBuilder)(nil)
)

// LoggingBuilder wraps a TableBuilder with debug logging.
type LoggingBuilder struct {
	next   tabgenie.TableBuilder
	logger *slog.Logger
}

// NewLoggingBuilder creates a new LoggingBuilder.
func NewLoggingBuilder(next tabgenie.TableBuilder, logger *slog.Logger) *LoggingBuilder {
	return &LoggingBuilder{next: next, logger: logger}
}

// Info delegates to the wrapped builder.
func (b *LoggingBuilder) Info() tabgenie.DatasetInfo {
	return b.next.Info()
}

// PrepareTable delegates to the wrapped builder and logs the grid size.
func (b *LoggingBuilder) PrepareTable(entry tabgenie.Entry) (t *tabgenie.Table, err error) {
	defer func(begin time.Time) {
		var rows, cols int
		if t != nil {
			rows, cols = t.RowCount(), t.ColCount()
		}
		b.logger.Debug("prepare table",
			"dataset", b.next.Info().Name,
			"rows", rows,
			"cols", cols,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.PrepareTable(entry)
}

// Triples delegates to the wrapped builder when it extracts its own
// triples and uses header lookups otherwise. Skipped rows are logged.
func (b *LoggingBuilder) Triples(t *tabgenie.Table, cellIDs []int) ([]tabgenie.Triple, error) {
	te, ok := b.next.(tabgenie.TripleExtractor)
	if !ok {
		return tabgenie.ExtractTriples(t, cellIDs), nil
	}
	triples, err := te.Triples(t, cellIDs)
	if err != nil {
		b.logger.Warn("triple extraction",
			"dataset", b.next.Info().Name,
			"count", len(triples),
			"err", err,
		)
	}
	return triples, err
}
