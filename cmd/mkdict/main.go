package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mkdict"
	"github.com/fwojciec/mkdict/fs"
	"github.com/fwojciec/mkdict/goquery"
	"github.com/fwojciec/mkdict/rod"
	mkslog "github.com/fwojciec/mkdict/slog"
	"github.com/fwojciec/mkdict/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, opened when the sqlite store is selected.
	DB *sqlite.DB

	// NewRenderer starts the browser session for a crawl.
	// Tests replace it to avoid launching Chrome.
	NewRenderer func(cfg RendererConfig) (mkdict.Renderer, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		NewRenderer: newRodRenderer,
	}
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
		kong.Name("mkdict"),
		kong.Description("Harvest the makedonski.info dictionary into a JSON word list"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"base_url": mkdict.DefaultBaseURL},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'mkdict --help' to see available commands")
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

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	store, err := m.openStore(cli)
	if err != nil {
		return err
	}
	defer m.Close()

	deps.Checkpoints = mkslog.NewLoggingCheckpointStore(store, deps.Logger)
	deps.Extractor = goquery.NewExtractor()
	deps.NewRenderer = m.NewRenderer

	return kongCtx.Run(deps)
}

// openStore opens the checkpoint store selected on the command line.
func (m *Main) openStore(cli *CLI) (mkdict.CheckpointStore, error) {
	switch cli.Store {
	case "sqlite":
		path := cli.DB
		if path == "" {
			path = filepath.Join(cli.Dir, defaultDBName)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			m.DB = nil
			return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		return sqlite.NewCheckpointStore(m.DB), nil
	default:
		return fs.NewCheckpointStore(cli.Dir), nil
	}
}

const defaultDBName = "mkdict.db"

// newRodRenderer launches headless Chrome for a crawl.
func newRodRenderer(cfg RendererConfig) (mkdict.Renderer, error) {
	manager, err := rod.NewBrowserManager(
		rod.WithMaxPages(cfg.MaxPages),
		rod.WithBrowserBin(cfg.Browser),
	)
	if err != nil {
		return nil, err
	}
	return rod.NewRenderer(manager, rod.WithTimeout(cfg.Timeout)), nil
}
