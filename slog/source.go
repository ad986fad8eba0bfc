package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tabgenie"
)

// Ensure LoggingEntrySource implements tabgenie.EntrySource.
var _ tabgenie.EntrySource = (*LoggingEntrySource)(nil)

// LoggingEntrySource wraps an EntrySource with logging.
type LoggingEntrySource struct {
	next   tabgenie.EntrySource
	logger *slog.Logger
}

// NewLoggingEntrySource creates a new LoggingEntrySource.
func NewLoggingEntrySource(next tabgenie.EntrySource, logger *slog.Logger) *LoggingEntrySource {
	return &LoggingEntrySource{next: next, logger: logger}
}

// Entries delegates to the wrapped source and logs the number of entries.
func (s *LoggingEntrySource) Entries(ctx context.Context, dataset, split string) (entries []tabgenie.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load split",
			"dataset", dataset,
			"split", split,
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Entries(ctx, dataset, split)
}
