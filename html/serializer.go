// Package html serializes and strips HTML using golang.org/x/net/html.
package html

import (
	"strings"

	"github.com/fwojciec/menuscrape"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Serializer implements menuscrape.BodySerializer at compile time.
var _ menuscrape.BodySerializer = (*Serializer)(nil)

// Serializer renders document bodies without pretty-printing, so marker
// searches see the markup as the parser normalized it.
type Serializer struct{}

// NewSerializer creates a new Serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// SerializeBody parses a full document and renders its <body> element,
// tags included. Attribute values are rendered with HTML escaping, so a
// single quote comes out as &#39;.
func (s *Serializer) SerializeBody(doc string) (string, error) {
	root, err := nethtml.Parse(strings.NewReader(doc))
	if err != nil {
		return "", menuscrape.Errorf(menuscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	body := findBody(root)
	if body == nil {
		return "", menuscrape.Errorf(menuscrape.ENOTFOUND, "document has no body")
	}

	var b strings.Builder
	if err := nethtml.Render(&b, body); err != nil {
		return "", menuscrape.Errorf(menuscrape.EINTERNAL, "failed to render body: %v", err)
	}
	return b.String(), nil
}

func findBody(n *nethtml.Node) *nethtml.Node {
	if n.Type == nethtml.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}

// StripTags removes every tag from an HTML fragment and returns the text
// content with entities decoded. Script and style contents are dropped.
// Whitespace is left as it appears in the source.
func (s *Serializer) StripTags(fragment string) string {
	z := nethtml.NewTokenizer(strings.NewReader(fragment))

	var (
		b    strings.Builder
		skip int
	)
	for {
		switch z.Next() {
		case nethtml.ErrorToken:
			return b.String()
		case nethtml.StartTagToken:
			if isRawText(z) {
				skip++
			}
		case nethtml.EndTagToken:
			if isRawText(z) && skip > 0 {
				skip--
			}
		case nethtml.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func isRawText(z *nethtml.Tokenizer) bool {
	name, _ := z.TagName()
	a := atom.Lookup(name)
	return a == atom.Script || a == atom.Style
}
