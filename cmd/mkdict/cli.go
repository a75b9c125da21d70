package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/mkdict"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Checkpoints mkdict.CheckpointStore
	Extractor   mkdict.Extractor
	NewRenderer func(cfg RendererConfig) (mkdict.Renderer, error)
}

// RendererConfig configures the browser session used by a crawl.
type RendererConfig struct {
	Timeout  time.Duration
	MaxPages int
	Browser  string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Dir     string `short:"d" default:"." env:"MKDICT_DIR" help:"Directory for checkpoints and output"`
	Store   string `default:"fs" enum:"fs,sqlite" env:"MKDICT_STORE" help:"Checkpoint store (fs or sqlite)"`
	DB      string `name:"db" help:"SQLite database path (default: <dir>/mkdict.db)"`
	Verbose bool   `short:"v" help:"Log every rendered page"`

	Crawl  CrawlCmd  `cmd:"" help:"Crawl the dictionary, resuming from checkpoints"`
	Export ExportCmd `cmd:"" help:"Export the crawled word list"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	BaseURL  string        `name:"base-url" default:"${base_url}" env:"MKDICT_BASE_URL" help:"Dictionary site"`
	Letters  []string      `short:"l" sep:"," help:"Only crawl these letters (comma separated)"`
	Timeout  time.Duration `short:"t" default:"30s" help:"Per-page render timeout"`
	MaxPages int           `default:"75" help:"Pages rendered before the browser is restarted"`
	Browser  string        `env:"MKDICT_BROWSER" help:"Path to the Chrome binary"`
	Print    bool          `short:"p" help:"Print the word list as JSON when done"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Format  string `short:"f" default:"xdxf" enum:"xdxf,json" help:"Output format (xdxf or json)"`
	Output  string `short:"o" default:"-" help:"Output file, or - for stdout"`
	Title   string `default:"Macedonian-English" help:"Dictionary title for XDXF"`
	BaseURL string `name:"base-url" default:"${base_url}" env:"MKDICT_BASE_URL" help:"Source site recorded in XDXF metadata"`
}
