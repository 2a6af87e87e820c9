package mock

import "github.com/fwojciec/menuscrape"

var _ menuscrape.LinkResolver = (*LinkResolver)(nil)

// LinkResolver is a mock implementation of menuscrape.LinkResolver.
type LinkResolver struct {
	ResolveFn func(html, pageURL string, rule menuscrape.LinkRule) (string, error)
}

func (r *LinkResolver) Resolve(html, pageURL string, rule menuscrape.LinkRule) (string, error) {
	return r.ResolveFn(html, pageURL, rule)
}
