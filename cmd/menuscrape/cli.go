package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/menuscrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Catalog *menuscrape.Catalog

	// Ledger is nil when the ledger is disabled.
	Ledger menuscrape.RunLedger

	// Logger is nil unless debug logging is enabled.
	Logger *slog.Logger

	// Extractor overrides the HTTP pipeline built by the run command.
	Extractor menuscrape.Extractor

	Now func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB       string `name:"db" env:"MENUSCRAPE_DB" help:"Run ledger database path (default ~/.menuscrape/menuscrape.db)"`
	NoLedger bool   `name:"no-ledger" help:"Do not record runs"`
	Debug    bool   `help:"Log every fetch, extraction and write to stderr"`

	Run     RunCmd     `cmd:"" help:"Fetch menus and save them to a dated directory"`
	Sources SourcesCmd `cmd:"" help:"List configured menu sources"`
	History HistoryCmd `cmd:"" help:"Show recorded results of past runs"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Out     string        `short:"o" default:"." help:"Base directory for the dated output directory"`
	Source  []string      `short:"s" name:"source" help:"Only fetch the named source (repeatable)"`
	Timeout time.Duration `default:"30s" help:"Timeout for each HTTP request"`
	Rate    float64       `default:"0" help:"Requests per second per host (0 = unlimited)"`
	Raw     bool          `help:"Also save fetched pages as <Source>Raw.txt"`
	Browser bool          `help:"Render pages in headless Chrome before extraction"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct{}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Source string `short:"s" help:"Only show results for this source"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of results"`
}
