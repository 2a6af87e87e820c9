package extract

import (
	"context"

	"github.com/fwojciec/menuscrape"
)

// Ensure Passthrough implements menuscrape.Extractor at compile time.
var _ menuscrape.Extractor = (*Passthrough)(nil)

// Passthrough saves a binary asset (usually a PDF) byte for byte. The asset
// is either src.URL itself or a link found on that page.
type Passthrough struct {
	Fetcher    menuscrape.Fetcher
	Resolver   menuscrape.LinkResolver
	Downloader menuscrape.Downloader
}

// Extract resolves the asset URL. The download itself happens when the
// returned artifact is written.
// Returns ELINKNOTFOUND if the link rule matches nothing.
func (e *Passthrough) Extract(ctx context.Context, src *menuscrape.Source) (*menuscrape.Extraction, error) {
	if src.Link == nil {
		return &menuscrape.Extraction{
			Artifact: &menuscrape.DownloadArtifact{
				URL:        src.URL,
				Format:     src.Kind,
				Downloader: e.Downloader,
			},
		}, nil
	}

	html, err := e.Fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	asset, err := e.Resolver.Resolve(html, src.URL, *src.Link)
	if err != nil {
		return nil, withURL(err, src.URL)
	}

	return &menuscrape.Extraction{
		Artifact: &menuscrape.DownloadArtifact{
			URL:        asset,
			Format:     src.Kind,
			Downloader: e.Downloader,
		},
		Raw: html,
	}, nil
}
