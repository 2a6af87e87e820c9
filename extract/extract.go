// Package extract implements the per-strategy menu extractors and the run
// controller that drives them over a catalog of sources.
package extract

import (
	"context"
	"errors"

	"github.com/fwojciec/menuscrape"
)

// Ensure Registry implements menuscrape.Extractor at compile time.
var _ menuscrape.Extractor = (Registry)(nil)

// Registry dispatches each source to the extractor registered for its strategy.
type Registry map[menuscrape.Strategy]menuscrape.Extractor

// Extract runs the extractor matching src.Strategy.
// Returns EINVALID if no extractor is registered for it.
func (r Registry) Extract(ctx context.Context, src *menuscrape.Source) (*menuscrape.Extraction, error) {
	e, ok := r[src.Strategy]
	if !ok {
		return nil, menuscrape.Errorf(menuscrape.EINVALID, "no extractor for strategy %q", src.Strategy)
	}
	return e.Extract(ctx, src)
}

// withURL attaches url to a coded error that does not carry one yet.
func withURL(err error, url string) error {
	var e *menuscrape.Error
	if !errors.As(err, &e) {
		return menuscrape.WrapError(menuscrape.EINTERNAL, url, err)
	}
	if e.URL != "" {
		return err
	}
	return &menuscrape.Error{Code: e.Code, Message: e.Message, URL: url, Err: e.Err}
}
