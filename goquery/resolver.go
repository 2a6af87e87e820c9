package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/menuscrape"
)

// Ensure LinkResolver implements menuscrape.LinkResolver at compile time.
var _ menuscrape.LinkResolver = (*LinkResolver)(nil)

// LinkResolver finds anchors by their visible text.
type LinkResolver struct{}

// NewLinkResolver creates a new LinkResolver.
func NewLinkResolver() *LinkResolver {
	return &LinkResolver{}
}

// Resolve scans a[href] elements in document order and returns the
// absolute URL of the (Skip+1)-th one whose whitespace-normalized text
// equals rule.Text.
func (r *LinkResolver) Resolve(html string, pageURL string, rule menuscrape.LinkRule) (string, error) {
	doc, err := parse(html)
	if err != nil {
		return "", err
	}
	base, err := baseURL(doc, pageURL)
	if err != nil {
		return "", err
	}

	var (
		resolved string
		matched  bool
		seen     int
	)
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if normalizeSpace(sel.Text()) != rule.Text {
			return true
		}
		if seen < rule.Skip {
			seen++
			return true
		}
		matched = true
		resolved = resolveURL(base, sel.AttrOr("href", ""))
		return false
	})

	if !matched {
		return "", &menuscrape.Error{
			Code:    menuscrape.ELINKNOTFOUND,
			Message: "no " + rule.String() + " on page",
			URL:     pageURL,
		}
	}
	if resolved == "" {
		return "", &menuscrape.Error{
			Code:    menuscrape.ELINKNOTFOUND,
			Message: rule.String() + " has an invalid href",
			URL:     pageURL,
		}
	}
	return resolved, nil
}
