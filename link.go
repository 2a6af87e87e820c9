package menuscrape

import "fmt"

// LinkRule selects an anchor by its visible text. The first Skip matching
// anchors in document order are passed over.
type LinkRule struct {
	Text string
	Skip int
}

// String describes the rule for messages.
func (r LinkRule) String() string {
	if r.Skip == 0 {
		return fmt.Sprintf("first link %q", r.Text)
	}
	return fmt.Sprintf("link %q #%d", r.Text, r.Skip+1)
}

// LinkResolver locates a link on a page.
type LinkResolver interface {
	// Resolve returns the absolute URL of the anchor selected by rule.
	// Relative hrefs resolve against pageURL.
	// Returns ELINKNOTFOUND if no anchor qualifies.
	Resolve(html string, pageURL string, rule LinkRule) (string, error)
}
