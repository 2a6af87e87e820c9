package extract

import (
	"context"

	"github.com/fwojciec/menuscrape"
)

// Ensure SectionFiltered implements menuscrape.Extractor at compile time.
var _ menuscrape.Extractor = (*SectionFiltered)(nil)

// SectionFiltered extracts menus from pages whose items are marked by class
// attributes but are not nested under their section.
type SectionFiltered struct {
	Fetcher menuscrape.Fetcher
	Parser  menuscrape.DocumentParser
}

// Extract fetches src.URL and folds its nodes through the section policy.
// Returns ENOTFOUND if no relevant item is found, which usually means the
// page markup changed.
func (e *SectionFiltered) Extract(ctx context.Context, src *menuscrape.Source) (*menuscrape.Extraction, error) {
	policy := src.Sections
	if policy == nil {
		return nil, menuscrape.Errorf(menuscrape.EINVALID, "source %s: section policy required", src.Name)
	}

	html, err := e.Fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	nodes, err := e.Parser.Nodes(html)
	if err != nil {
		return nil, withURL(err, src.URL)
	}

	menu := menuscrape.FilterSections(nodes, policy)
	if menu.ItemCount() == 0 {
		return nil, &menuscrape.Error{
			Code:    menuscrape.ENOTFOUND,
			Message: "no menu items found",
			URL:     src.URL,
		}
	}

	if policy.HeaderTitle || policy.HeaderParagraphs > 0 {
		title, notes, err := e.Parser.Header(html, policy.HeaderParagraphs)
		if err != nil {
			return nil, withURL(err, src.URL)
		}
		if policy.HeaderTitle {
			menu.Title = title
		}
		menu.Notes = notes
	}

	return &menuscrape.Extraction{
		Artifact: &menuscrape.MenuArtifact{Menu: &menu},
		Raw:      html,
	}, nil
}
