package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/menuscrape"
	"github.com/fwojciec/menuscrape/composite"
	"github.com/fwojciec/menuscrape/extract"
	"github.com/fwojciec/menuscrape/fs"
	"github.com/fwojciec/menuscrape/goquery"
	"github.com/fwojciec/menuscrape/html"
	menuhttp "github.com/fwojciec/menuscrape/http"
	"github.com/fwojciec/menuscrape/pdf"
	"github.com/fwojciec/menuscrape/rod"
	menuslog "github.com/fwojciec/menuscrape/slog"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	sources, err := deps.Catalog.Select(c.Source...)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", menuscrape.ErrorMessage(err))
		return err
	}

	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	dir, err := fs.RunDir(c.Out, now())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", menuscrape.ErrorMessage(err))
		return err
	}

	var store menuscrape.ArtifactStore = fs.NewStore(dir)
	if deps.Logger != nil {
		store = menuslog.NewLoggingStore(store, deps.Logger)
	}

	extractor := deps.Extractor
	if extractor == nil {
		var closeFn func() error
		extractor, closeFn = c.pipeline(deps)
		defer closeFn()
	}

	runner := &extract.Runner{
		Extractor: extractor,
		Store:     store,
		Ledger:    deps.Ledger,
		PDF:       pdf.NewInspector(),
		Raw:       c.Raw,
		Stdout:    deps.Stdout,
		Stderr:    deps.Stderr,
		Now:       now,
	}

	report, err := runner.Run(deps.Ctx, sources)
	if err != nil {
		return err
	}

	saved := len(report.Results) - report.Failed()
	fmt.Fprintf(deps.Stdout, "Saved %d of %d menus to %s\n", saved, len(report.Results), dir)
	for _, r := range report.Results {
		if r.Status == menuscrape.StatusOK && !r.Changed {
			fmt.Fprintf(deps.Stdout, "  %s unchanged since last run\n", r.Source)
		}
	}

	if n := report.Failed(); n > 0 {
		return fmt.Errorf("%d of %d sources failed", n, len(report.Results))
	}
	return nil
}

// pipeline wires the extractors for every strategy. The returned function
// releases the fetcher.
func (c *RunCmd) pipeline(deps *Dependencies) (menuscrape.Extractor, func() error) {
	httpFetcher := menuhttp.NewFetcher(
		menuhttp.WithTimeout(c.Timeout),
		menuhttp.WithRateLimit(c.Rate),
	)

	var fetcher menuscrape.Fetcher = httpFetcher
	closeFn := httpFetcher.Close
	if c.Browser {
		browser := rod.NewFetcher(httpFetcher, rod.WithFetchTimeout(c.Timeout))
		fetcher = browser
		closeFn = browser.Close
	}

	var downloader menuscrape.Downloader = httpFetcher
	if deps.Logger != nil {
		fetcher = menuslog.NewLoggingFetcher(fetcher, deps.Logger)
		downloader = menuslog.NewLoggingDownloader(httpFetcher, deps.Logger)
	}

	parser := goquery.NewParser()
	registry := extract.Registry{
		menuscrape.StrategySectionFiltered: &extract.SectionFiltered{
			Fetcher: fetcher,
			Parser:  parser,
		},
		menuscrape.StrategyRangeSliced: &extract.RangeSliced{
			Fetcher:    fetcher,
			Serializer: html.NewSerializer(),
		},
		menuscrape.StrategyPassthrough: &extract.Passthrough{
			Fetcher:    fetcher,
			Resolver:   goquery.NewLinkResolver(),
			Downloader: downloader,
		},
		menuscrape.StrategyImageComposite: &extract.ImageComposite{
			Fetcher:    fetcher,
			Parser:     parser,
			Compositor: composite.NewCompositor(fetcher),
		},
		menuscrape.StrategySiblingWalk: &extract.SiblingWalk{
			Fetcher: fetcher,
			Parser:  parser,
		},
	}

	if deps.Logger != nil {
		return menuslog.NewLoggingExtractor(registry, deps.Logger), closeFn
	}
	return registry, closeFn
}
