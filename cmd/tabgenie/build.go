package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/tabgenie"
	"github.com/fwojciec/tabgenie/catalog"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	if c.Concurrency > 0 {
		deps.Catalog.Concurrency = c.Concurrency
	}

	progress := func(event catalog.ProgressEvent) {
		switch event.Type {
		case catalog.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d tables\n", event.Total)
		case catalog.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %d: %s\n", event.Key.Index, tabgenie.ErrorMessage(event.Error))
		}
	}

	report, err := deps.Catalog.Build(deps.Ctx, c.Dataset, c.Split, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Built %d/%d tables of %s/%s\n", report.Built, report.Total, report.Dataset, report.Split)
	if report.OK() {
		return nil
	}

	failed := make([]string, len(report.Failed))
	for i, idx := range report.Failed {
		failed[i] = strconv.Itoa(idx)
	}
	fmt.Fprintf(deps.Stdout, "  Failed: %s\n", strings.Join(failed, ", "))
	if c.Strict {
		return tabgenie.Errorf(tabgenie.EINVALID, "%d of %d tables failed to build", len(report.Failed), report.Total)
	}
	return nil
}
