package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/tabgenie"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	key := c.Key()

	t, err := deps.Catalog.Table(deps.Ctx, key, c.Edit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
		return err
	}

	switch c.Format {
	case "html":
		html, err := deps.Catalog.View(deps.Ctx, key, c.Edit, c.Display)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, html)
	case "linear":
		opts, err := c.linearOptions(deps.Config)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, tabgenie.Linearize(t, opts))
	case "json":
		b, err := tabgenie.ToJSON(t, !c.NoProps)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(b))
	case "csv":
		s, err := tabgenie.ToFrame(t).CSV()
		if err != nil {
			return err
		}
		fmt.Fprint(deps.Stdout, s)
	case "triples":
		triples, err := deps.Catalog.Triples(deps.Ctx, key, c.Edit, c.Cells)
		if tabgenie.ErrorCode(err) == tabgenie.ETRIPLE {
			fmt.Fprintf(deps.Stderr, "warning: %s\n", err)
		} else if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
			return err
		}
		for _, tr := range triples {
			fmt.Fprintf(deps.Stdout, "%s | %s | %s\n", tr.Subject(), tr.Predicate(), tr.Object())
		}
	default:
		if err := deps.Text.RenderText(deps.Stdout, t, !c.NoProps); err != nil {
			return err
		}
		printNote(deps, key, deps.Stdout)
	}
	return nil
}

// linearOptions merges the command flags over the configured defaults.
func (c *ShowCmd) linearOptions(cfg *Config) (tabgenie.LinearOptions, error) {
	opts := cfg.LinearOptions()
	if c.Style != "" {
		style, err := tabgenie.ParseLinearStyle(c.Style)
		if err != nil {
			return opts, err
		}
		opts.Style = style
	}
	if c.Props != "" {
		mode, err := tabgenie.ParsePropsMode(c.Props)
		if err != nil {
			return opts, err
		}
		opts.Props = mode
	}
	opts.HighlightedOnly = c.Highlighted
	opts.CellIDs = c.Cells
	return opts, nil
}

// printNote writes the note of the table, if any.
func printNote(deps *Dependencies, key tabgenie.TableKey, w io.Writer) {
	if deps.Notes == nil {
		return
	}
	note, err := deps.Notes.FindNote(deps.Ctx, key)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "note: %s\n", note.Text)
}
