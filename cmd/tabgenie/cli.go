package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/tabgenie"
	"github.com/fwojciec/tabgenie/catalog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Config     *Config
	Logger     *slog.Logger
	Catalog    *catalog.Catalog
	Text       tabgenie.TextRenderer
	Notes      tabgenie.NoteService
	Favourites tabgenie.FavouriteService

	// NewStore opens an export store writing to dir/name.
	NewStore func(dir, name string) tabgenie.ExportStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config      string `short:"c" type:"path" help:"Config file (default: tabgenie.yaml)"`
	DataDir     string `name:"data-dir" type:"path" help:"Directory holding <dataset>/<split>.jsonl files"`
	DB          string `name:"db" type:"path" help:"Notes and favourites database"`
	MaxExamples int    `name:"max-examples" default:"-1" help:"Limit entries loaded per split (0 for all)"`
	Verbose     bool   `short:"v" help:"Log debug output"`

	Info      InfoCmd      `cmd:"" help:"List datasets or describe one"`
	Show      ShowCmd      `cmd:"" help:"Show a table"`
	Export    ExportCmd    `cmd:"" help:"Export tables to files"`
	Build     BuildCmd     `cmd:"" help:"Build every table of a split and report failures"`
	Note      NoteCmd      `cmd:"" help:"Manage table notes"`
	Favourite FavouriteCmd `cmd:"" help:"Manage favourite tables"`
}

// flags returns the explicitly set global flags keyed by config key.
func (c *CLI) flags() map[string]any {
	m := make(map[string]any)
	if c.DataDir != "" {
		m["data_dir"] = c.DataDir
	}
	if c.DB != "" {
		m["db_path"] = c.DB
	}
	if c.MaxExamples >= 0 {
		m["max_examples"] = c.MaxExamples
	}
	if c.Verbose {
		m["verbose"] = true
	}
	return m
}

// TableArgs identifies a single table on the command line.
type TableArgs struct {
	Dataset string `arg:"" help:"Dataset name"`
	Split   string `arg:"" enum:"train,dev,test" help:"Split (train, dev, test)"`
	Index   int    `arg:"" help:"Table index within the split"`
}

// Key returns the table key named by the arguments.
func (a TableArgs) Key() tabgenie.TableKey {
	return tabgenie.TableKey{Dataset: a.Dataset, Split: a.Split, Index: a.Index}
}

// InfoCmd is the "info" subcommand.
type InfoCmd struct {
	Dataset string `arg:"" optional:"" help:"Dataset name"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	TableArgs `embed:""`

	Format      string         `short:"f" enum:"text,html,linear,json,csv,triples" default:"text" help:"Output format (text, html, linear, json, csv, triples)"`
	Style       string         `help:"Linearization style (index, markers, structure, 2d)"`
	Props       string         `help:"Properties in linear output (all, factual, none)"`
	Highlighted bool           `help:"Linearize only highlighted cells"`
	Cells       []int          `help:"Cell IDs to linearize or extract triples from"`
	Display     []string       `help:"Properties expanded in html output"`
	Edit        map[int]string `help:"Replace a cell value (id=value, repeatable)"`
	NoProps     bool           `name:"no-props" help:"Hide table properties"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dataset    string `arg:"" optional:"" help:"Dataset name"`
	Split      string `arg:"" optional:"" help:"Split (train, dev, test)"`
	Index      []int  `short:"i" help:"Table indices to export (default: all)"`
	Favourites bool   `help:"Export favourite tables instead of a split"`
	Format     string `short:"f" enum:"txt,triples,json,html,csv,md,rdf,reference,xlsx" default:"json" help:"Export format"`
	Out        string `short:"o" type:"path" help:"Output directory (default: export_dir)"`
	Name       string `help:"Name of the export directory (default: <dataset>_<split>_<format>)"`
	NoProps    bool   `name:"no-props" help:"Leave table properties out"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Dataset     string `arg:"" help:"Dataset name"`
	Split       string `arg:"" enum:"train,dev,test" help:"Split (train, dev, test)"`
	Concurrency int    `short:"j" help:"Tables built in parallel (default: concurrency)"`
	Strict      bool   `help:"Fail if any table fails to build"`
}

// NoteCmd groups the note subcommands.
type NoteCmd struct {
	Set    NoteSetCmd    `cmd:"" help:"Attach a note to a table (empty text removes it)"`
	Show   NoteShowCmd   `cmd:"" help:"Print the note of a table"`
	List   NoteListCmd   `cmd:"" help:"List notes"`
	Clear  NoteClearCmd  `cmd:"" help:"Remove every note"`
	Export NoteExportCmd `cmd:"" help:"Write notes to a CSV file"`
}

// NoteSetCmd is the "note set" subcommand.
type NoteSetCmd struct {
	TableArgs `embed:""`

	Text string `arg:"" optional:"" help:"Note text"`
}

// NoteShowCmd is the "note show" subcommand.
type NoteShowCmd struct {
	TableArgs `embed:""`
}

// NoteListCmd is the "note list" subcommand.
type NoteListCmd struct {
	Dataset string `help:"Only notes of this dataset"`
	Split   string `help:"Only notes of this split"`
	Limit   int    `help:"Maximum number of notes"`
}

// NoteClearCmd is the "note clear" subcommand.
type NoteClearCmd struct {
	Force bool `help:"Confirm deletion"`
}

// NoteExportCmd is the "note export" subcommand.
type NoteExportCmd struct {
	Out string `short:"o" type:"path" help:"Output directory (default: export_dir)"`
}

// FavouriteCmd groups the favourite subcommands.
type FavouriteCmd struct {
	Add    FavouriteAddCmd    `cmd:"" help:"Mark a table as favourite"`
	Remove FavouriteRemoveCmd `cmd:"" help:"Unmark a favourite table"`
	List   FavouriteListCmd   `cmd:"" help:"List favourite tables"`
	Clear  FavouriteClearCmd  `cmd:"" help:"Remove every favourite"`
}

// FavouriteAddCmd is the "favourite add" subcommand.
type FavouriteAddCmd struct {
	TableArgs `embed:""`
}

// FavouriteRemoveCmd is the "favourite remove" subcommand.
type FavouriteRemoveCmd struct {
	TableArgs `embed:""`
}

// FavouriteListCmd is the "favourite list" subcommand.
type FavouriteListCmd struct{}

// FavouriteClearCmd is the "favourite clear" subcommand.
type FavouriteClearCmd struct {
	Force bool `help:"Confirm deletion"`
}
