package extract

import (
	"context"
	"strings"

	"github.com/fwojciec/menuscrape"
)

// Ensure RangeSliced implements menuscrape.Extractor at compile time.
var _ menuscrape.Extractor = (*RangeSliced)(nil)

// RangeSliced extracts text between two markers on each page of a
// multi-page source and concatenates the results.
type RangeSliced struct {
	Fetcher    menuscrape.Fetcher
	Serializer menuscrape.BodySerializer
}

// Extract processes src.PageURLs in order. A failure on any page aborts
// the whole source.
func (e *RangeSliced) Extract(ctx context.Context, src *menuscrape.Source) (*menuscrape.Extraction, error) {
	if src.Range == nil {
		return nil, menuscrape.Errorf(menuscrape.EINVALID, "source %s: range markers required", src.Name)
	}

	var text, raw strings.Builder
	for _, url := range src.PageURLs() {
		html, err := e.Fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, err
		}

		body, err := e.Serializer.SerializeBody(html)
		if err != nil {
			return nil, withURL(err, url)
		}
		raw.WriteString(body)

		fragment, err := menuscrape.SliceRange(body, *src.Range)
		if err != nil {
			return nil, withURL(err, url)
		}
		text.WriteString(e.Serializer.StripTags(fragment))
	}

	return &menuscrape.Extraction{
		Artifact: &menuscrape.TextArtifact{Text: text.String()},
		Raw:      raw.String(),
	}, nil
}
