package mock

import (
	"context"

	"github.com/fwojciec/menuscrape"
)

var _ menuscrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of menuscrape.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, src *menuscrape.Source) (*menuscrape.Extraction, error)
}

func (e *Extractor) Extract(ctx context.Context, src *menuscrape.Source) (*menuscrape.Extraction, error) {
	return e.ExtractFn(ctx, src)
}
