package catalog

import (
	"context"
	"sort"
	"sync/atomic"

	"github.com/fwojciec/tabgenie"
	"golang.org/x/sync/errgroup"
)

// BuildReport holds the outcome of building every table of a split.
type BuildReport struct {
	Dataset string
	Split   string
	Total   int
	Built   int
	Failed  []int
	Errors  map[int]error
}

// OK reports whether every table was built.
func (r *BuildReport) OK() bool {
	return len(r.Failed) == 0
}

// ProgressEvent reports progress during a batch operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Key       tabgenie.TableKey
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// buildResult holds the outcome of building a single table.
type buildResult struct {
	key tabgenie.TableKey
	err error
}

// Build constructs every table of a split. Tables that fail to build are
// collected in the report instead of aborting the batch. The progress
// callback, if provided, receives events as tables are built.
func (c *Catalog) Build(ctx context.Context, dataset, split string, progress ProgressFunc) (*BuildReport, error) {
	keys, err := c.Keys(ctx, dataset, split)
	if err != nil {
		return nil, err
	}

	report := &BuildReport{
		Dataset: dataset,
		Split:   split,
		Total:   len(keys),
		Errors:  make(map[int]error),
	}
	notify := func(e ProgressEvent) {
		if progress != nil {
			progress(e)
		}
	}
	notify(ProgressEvent{Type: ProgressStarted, Total: report.Total})

	resultCh := make(chan buildResult, len(keys))
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency())

	go func() {
		for _, key := range keys {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					resultCh <- buildResult{key: key, err: err}
					return nil
				}
				_, err := c.Table(gctx, key, nil)
				resultCh <- buildResult{key: key, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	for result := range resultCh {
		completed.Add(1)
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     report.Total,
			Key:       result.key,
		}
		if result.err != nil {
			report.Failed = append(report.Failed, result.key.Index)
			report.Errors[result.key.Index] = result.err
			event.Type = ProgressFailed
			event.Error = result.err
		} else {
			report.Built++
		}
		notify(event)
	}
	sort.Ints(report.Failed)

	if err := ctx.Err(); err != nil {
		return report, err
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: report.Total, Total: report.Total})
	return report, nil
}

func (c *Catalog) concurrency() int {
	if c.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return c.Concurrency
}
