package extract

import (
	"context"
	"strings"

	"github.com/fwojciec/menuscrape"
)

// Ensure SiblingWalk implements menuscrape.Extractor at compile time.
var _ menuscrape.Extractor = (*SiblingWalk)(nil)

// SiblingWalk extracts items whose description is spread over the elements
// following each item title.
type SiblingWalk struct {
	Fetcher menuscrape.Fetcher
	Parser  menuscrape.DocumentParser
}

// Extract builds a single untitled section under the configured heading.
// Each sibling's text becomes one description line.
// Returns ENOTFOUND if no item title matches the selector.
func (e *SiblingWalk) Extract(ctx context.Context, src *menuscrape.Source) (*menuscrape.Extraction, error) {
	policy := src.Siblings
	if policy == nil {
		return nil, menuscrape.Errorf(menuscrape.EINVALID, "source %s: sibling policy required", src.Name)
	}

	html, err := e.Fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	found, err := e.Parser.SiblingItems(html, policy.Selector)
	if err != nil {
		return nil, withURL(err, src.URL)
	}
	if len(found) == 0 {
		return nil, &menuscrape.Error{
			Code:    menuscrape.ENOTFOUND,
			Message: "no items matching " + policy.Selector,
			URL:     src.URL,
		}
	}

	items := make([]menuscrape.Item, 0, len(found))
	for _, f := range found {
		items = append(items, menuscrape.Item{
			Name:        f.Title,
			Description: strings.Join(f.Siblings, "\n"),
		})
	}

	menu := &menuscrape.Menu{
		Title:    policy.Heading,
		Sections: []menuscrape.Section{{Items: items}},
	}
	return &menuscrape.Extraction{
		Artifact: &menuscrape.MenuArtifact{Menu: menu},
		Raw:      html,
	}, nil
}
