package extract

import (
	"context"
	"fmt"

	"github.com/fwojciec/menuscrape"
)

// Ensure ImageComposite implements menuscrape.Extractor at compile time.
var _ menuscrape.Extractor = (*ImageComposite)(nil)

// ImageComposite stacks the menu images found on a page into one picture.
type ImageComposite struct {
	Fetcher    menuscrape.Fetcher
	Parser     menuscrape.DocumentParser
	Compositor menuscrape.Compositor
}

// Extract collects image URLs with the source's selector and composes them
// in document order. With a limit set, exactly that many images are used.
// Returns ENOTFOUND if the page has fewer images than required.
func (e *ImageComposite) Extract(ctx context.Context, src *menuscrape.Source) (*menuscrape.Extraction, error) {
	policy := src.Images
	if policy == nil {
		return nil, menuscrape.Errorf(menuscrape.EINVALID, "source %s: image policy required", src.Name)
	}

	html, err := e.Fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	urls, err := e.Parser.ImageURLs(html, src.URL, policy.Selector)
	if err != nil {
		return nil, withURL(err, src.URL)
	}

	want := max(policy.Limit, 1)
	if len(urls) < want {
		return nil, &menuscrape.Error{
			Code:    menuscrape.ENOTFOUND,
			Message: fmt.Sprintf("expected %d images matching %q, found %d", want, policy.Selector, len(urls)),
			URL:     src.URL,
		}
	}
	if policy.Limit > 0 {
		urls = urls[:policy.Limit]
	}

	img, err := e.Compositor.Compose(ctx, urls, policy.Padding)
	if err != nil {
		return nil, err
	}

	return &menuscrape.Extraction{
		Artifact: &menuscrape.ImageArtifact{Image: img, Format: src.Kind, Quality: policy.Quality},
		Raw:      html,
	}, nil
}
