package menuscrape

import (
	"context"
	"image"
)

// SiblingItem is an item title followed by the text of its description.
type SiblingItem struct {
	Title string

	// Siblings holds the whitespace-collapsed text of each element
	// following the title, in document order.
	Siblings []string
}

// DocumentParser reads the parts of an HTML document extractors need.
type DocumentParser interface {
	// Nodes flattens the document into its document-order element sequence.
	Nodes(html string) ([]Node, error)

	// Header returns the page title and the text of the first n paragraphs.
	Header(html string, n int) (title string, notes []string, err error)

	// ImageURLs returns the absolute src of every image matching selector.
	ImageURLs(html string, pageURL string, selector string) ([]string, error)

	// SiblingItems returns every element matching selector with its
	// following siblings.
	SiblingItems(html string, selector string) ([]SiblingItem, error)
}

// BodySerializer turns HTML into the strings the range-sliced strategy
// works on.
type BodySerializer interface {
	// SerializeBody renders the <body> element without reformatting,
	// so marker offsets are stable.
	SerializeBody(html string) (string, error)

	// StripTags removes every tag from a fragment and returns its text.
	StripTags(fragment string) string
}

// Compositor stacks remote images into one frame.
type Compositor interface {
	// Compose downloads and decodes each image in order and stacks them
	// vertically with padding pixels below each one.
	// Returns EFETCH or EDECODE if any image fails; there is no partial result.
	Compose(ctx context.Context, urls []string, padding int) (image.Image, error)
}

// PDFInspector reads basic facts from a saved PDF.
type PDFInspector interface {
	// PageCount returns the number of pages in the PDF at path.
	PageCount(path string) (int, error)
}
