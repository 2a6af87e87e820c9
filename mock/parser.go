package mock

import (
	"context"
	"image"

	"github.com/fwojciec/menuscrape"
)

var (
	_ menuscrape.DocumentParser = (*DocumentParser)(nil)
	_ menuscrape.BodySerializer = (*BodySerializer)(nil)
	_ menuscrape.Compositor     = (*Compositor)(nil)
	_ menuscrape.PDFInspector   = (*PDFInspector)(nil)
)

// DocumentParser is a mock implementation of menuscrape.DocumentParser.
type DocumentParser struct {
	NodesFn        func(html string) ([]menuscrape.Node, error)
	HeaderFn       func(html string, n int) (string, []string, error)
	ImageURLsFn    func(html, pageURL, selector string) ([]string, error)
	SiblingItemsFn func(html, selector string) ([]menuscrape.SiblingItem, error)
}

func (p *DocumentParser) Nodes(html string) ([]menuscrape.Node, error) {
	return p.NodesFn(html)
}

func (p *DocumentParser) Header(html string, n int) (string, []string, error) {
	return p.HeaderFn(html, n)
}

func (p *DocumentParser) ImageURLs(html, pageURL, selector string) ([]string, error) {
	return p.ImageURLsFn(html, pageURL, selector)
}

func (p *DocumentParser) SiblingItems(html, selector string) ([]menuscrape.SiblingItem, error) {
	return p.SiblingItemsFn(html, selector)
}

// BodySerializer is a mock implementation of menuscrape.BodySerializer.
type BodySerializer struct {
	SerializeBodyFn func(html string) (string, error)
	StripTagsFn     func(fragment string) string
}

func (s *BodySerializer) SerializeBody(html string) (string, error) {
	return s.SerializeBodyFn(html)
}

func (s *BodySerializer) StripTags(fragment string) string {
	return s.StripTagsFn(fragment)
}

// Compositor is a mock implementation of menuscrape.Compositor.
type Compositor struct {
	ComposeFn func(ctx context.Context, urls []string, padding int) (image.Image, error)
}

func (c *Compositor) Compose(ctx context.Context, urls []string, padding int) (image.Image, error) {
	return c.ComposeFn(ctx, urls, padding)
}

// PDFInspector is a mock implementation of menuscrape.PDFInspector.
type PDFInspector struct {
	PageCountFn func(path string) (int, error)
}

func (i *PDFInspector) PageCount(path string) (int, error) {
	return i.PageCountFn(path)
}
