package main

import (
	"fmt"

	"github.com/fwojciec/tabgenie"
)

// Run executes the info command.
func (c *InfoCmd) Run(deps *Dependencies) error {
	if c.Dataset == "" {
		for _, name := range deps.Catalog.Registry.Names() {
			b, err := deps.Catalog.Registry.Builder(name)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stdout, "%-16s %s\n", name, b.Info().Description)
		}
		return nil
	}

	info, err := deps.Catalog.Info(deps.Ctx, c.Dataset)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s: %s\n", info.Name, info.Description)
	if info.Task != "" {
		fmt.Fprintf(deps.Stdout, "  task:    %s\n", info.Task)
	}
	if info.Source != "" {
		fmt.Fprintf(deps.Stdout, "  source:  %s\n", info.Source)
	}
	if info.License != "" {
		fmt.Fprintf(deps.Stdout, "  license: %s\n", info.License)
	}
	if len(info.Examples) == 0 {
		fmt.Fprintf(deps.Stdout, "  no splits found in %s\n", deps.Config.DataDir)
		return nil
	}
	for _, split := range tabgenie.Splits {
		if n, ok := info.Examples[split]; ok {
			fmt.Fprintf(deps.Stdout, "  %-6s %d tables\n", split, n)
		}
	}
	return nil
}
