package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/menuscrape"
	"golang.org/x/net/html"
)

// Ensure Parser implements menuscrape.DocumentParser at compile time.
var _ menuscrape.DocumentParser = (*Parser)(nil)

// Parser reads menu structure out of HTML documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Nodes returns every element in document order (depth-first, pre-order)
// with its class, id and own text.
func (p *Parser) Nodes(html string) ([]menuscrape.Node, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	var nodes []menuscrape.Node
	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		n := sel.Get(0)
		nodes = append(nodes, menuscrape.Node{
			Tag:   n.Data,
			Class: strings.TrimSpace(sel.AttrOr("class", "")),
			ID:    sel.AttrOr("id", ""),
			Text:  ownText(n),
		})
	})
	return nodes, nil
}

// ownText returns the text of n's direct text children, excluding text of
// descendant elements.
func ownText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			b.WriteByte(' ')
		}
	}
	return normalizeSpace(b.String())
}

// Header returns the document title and the text of the first paragraph
// and its next n-1 sibling elements.
// Returns ENOTFOUND if fewer than n are present.
func (p *Parser) Header(html string, n int) (string, []string, error) {
	doc, err := parse(html)
	if err != nil {
		return "", nil, err
	}

	title := normalizeSpace(doc.Find("title").First().Text())

	var notes []string
	sel := doc.Find("p").First()
	for i := 0; i < n; i++ {
		if sel.Length() == 0 {
			return "", nil, menuscrape.Errorf(menuscrape.ENOTFOUND, "expected %d header paragraphs, found %d", n, i)
		}
		notes = append(notes, normalizeSpace(sel.Text()))
		sel = sel.Next()
	}

	return title, notes, nil
}

// ImageURLs returns the absolute source URL of every element matching
// selector, in document order. Lazy-loaded images fall back to data-src.
func (p *Parser) ImageURLs(html string, pageURL string, selector string) ([]string, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}
	base, err := baseURL(doc, pageURL)
	if err != nil {
		return nil, err
	}

	var urls []string
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		src := strings.TrimSpace(sel.AttrOr("src", ""))
		if src == "" || strings.HasPrefix(src, "data:") {
			src = strings.TrimSpace(sel.AttrOr("data-src", ""))
		}
		if src == "" {
			return
		}
		if resolved := resolveURL(base, src); resolved != "" {
			urls = append(urls, resolved)
		}
	})
	return urls, nil
}

// SiblingItems returns every element matching selector together with the
// text of the element siblings that follow it. Siblings without text are
// skipped.
func (p *Parser) SiblingItems(html string, selector string) ([]menuscrape.SiblingItem, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	var items []menuscrape.SiblingItem
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		item := menuscrape.SiblingItem{Title: normalizeSpace(sel.Text())}
		sel.NextAll().Each(func(_ int, sib *goquery.Selection) {
			if text := normalizeSpace(sib.Text()); text != "" {
				item.Siblings = append(item.Siblings, text)
			}
		})
		items = append(items, item)
	})
	return items, nil
}
