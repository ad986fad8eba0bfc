package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/tabgenie"
	"github.com/fwojciec/tabgenie/catalog"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	format, err := tabgenie.ParseExportFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
		return err
	}

	keys, name, err := c.keys(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
		return err
	}
	if len(keys) == 0 {
		fmt.Fprintln(deps.Stderr, "error: nothing to export")
		return tabgenie.Errorf(tabgenie.ENOTFOUND, "nothing to export")
	}
	name = fmt.Sprintf("%s_%s", name, format)
	if c.Name != "" {
		name = c.Name
	}
	out := c.Out
	if out == "" {
		out = deps.Config.ExportDir
	}

	res, err := deps.Catalog.Export(deps.Ctx, deps.NewStore(out, name), catalog.ExportRequest{
		Keys:         keys,
		Format:       format,
		IncludeProps: !c.NoProps,
		Linear:       deps.Config.LinearOptions(),
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d tables to %s\n", len(res.Files), filepath.Join(out, name))
	return nil
}

// keys returns the tables selected by the command and the default export
// name.
func (c *ExportCmd) keys(deps *Dependencies) ([]tabgenie.TableKey, string, error) {
	if c.Favourites {
		favs, err := deps.Favourites.FindFavourites(deps.Ctx)
		if err != nil {
			return nil, "", err
		}
		keys := make([]tabgenie.TableKey, len(favs))
		for i, f := range favs {
			keys[i] = f.Key
		}
		return keys, "favourites", nil
	}

	dataset := c.Dataset
	if dataset == "" {
		dataset = deps.Config.DefaultDataset
	}
	split := c.Split
	if split == "" {
		split = tabgenie.SplitDev
	}
	name := dataset + "_" + split

	if len(c.Index) == 0 {
		keys, err := deps.Catalog.Keys(deps.Ctx, dataset, split)
		return keys, name, err
	}
	keys := make([]tabgenie.TableKey, len(c.Index))
	for i, idx := range c.Index {
		keys[i] = tabgenie.TableKey{Dataset: dataset, Split: split, Index: idx}
	}
	return keys, name, nil
}
