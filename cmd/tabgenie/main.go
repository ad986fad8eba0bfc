package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/tabgenie"
	"github.com/fwojciec/tabgenie/catalog"
	"github.com/fwojciec/tabgenie/datasets"
	"github.com/fwojciec/tabgenie/etree"
	"github.com/fwojciec/tabgenie/excelize"
	"github.com/fwojciec/tabgenie/fs"
	"github.com/fwojciec/tabgenie/gopretty"
	"github.com/fwojciec/tabgenie/goquery"
	tghtml "github.com/fwojciec/tabgenie/html"
	"github.com/fwojciec/tabgenie/htmltomarkdown"
	"github.com/fwojciec/tabgenie/jsonl"
	tgslog "github.com/fwojciec/tabgenie/slog"
	"github.com/fwojciec/tabgenie/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Loaded configuration. Set by Run().
	Config *Config

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	NoteService      tabgenie.NoteService
	FavouriteService tabgenie.FavouriteService
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tabgenie"),
		kong.Description("Browse, render and export table-to-text datasets."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'tabgenie --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(cli.Config, cli.flags())
	if err != nil {
		return err
	}
	m.Config = cfg
	deps.Config = cfg

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	if cfg.DBPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	m.DB = sqlite.NewDB(cfg.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set TABGENIE_DB_PATH to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cfg.DBPath, err)
	}
	defer m.Close()

	m.NoteService = sqlite.NewNoteService(m.DB)
	m.FavouriteService = sqlite.NewFavouriteService(m.DB)
	deps.Notes = m.NoteService
	deps.Favourites = m.FavouriteService

	registry := tgslog.NewLoggingRegistry(datasets.NewDefaultRegistry(logger, goquery.NewTableParser()), logger)
	source := tgslog.NewLoggingEntrySource(jsonl.NewSource(cfg.DataDir, cfg.MaxExamples), logger)
	cat, err := catalog.New(registry, source, cfg.ViewCacheSize)
	if err != nil {
		return err
	}
	cat.Renderer = tghtml.NewRenderer()
	cat.Converter = htmltomarkdown.NewConverter()
	cat.Workbooks = excelize.NewWorkbookWriter()
	cat.Encoder = etree.NewRDFEncoder()
	cat.Concurrency = cfg.Concurrency
	deps.Catalog = cat

	deps.Text = gopretty.NewGridRenderer()
	deps.NewStore = func(dir, name string) tabgenie.ExportStore {
		return fs.NewFileStore(dir, name)
	}

	return kongCtx.Run(deps)
}
