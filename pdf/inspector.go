// Package pdf inspects downloaded PDF menus using github.com/ledongthuc/pdf.
package pdf

import (
	"fmt"

	"github.com/fwojciec/menuscrape"
	pdflib "github.com/ledongthuc/pdf"
)

// Ensure Inspector implements menuscrape.PDFInspector at compile time.
var _ menuscrape.PDFInspector = (*Inspector)(nil)

// Inspector reads PDF metadata without modifying the file.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// PageCount returns the number of pages in the PDF at path.
// Returns EDECODE if the file is not a readable PDF.
func (i *Inspector) PageCount(path string) (n int, err error) {
	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, menuscrape.Errorf(menuscrape.EDECODE, "malformed PDF %s: %v", path, r)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return 0, &menuscrape.Error{
			Code:    menuscrape.EDECODE,
			Message: fmt.Sprintf("failed to open PDF %s: %v", path, err),
			Err:     err,
		}
	}
	defer f.Close()

	n = reader.NumPage()
	if n == 0 {
		return 0, menuscrape.Errorf(menuscrape.EDECODE, "PDF %s has no pages", path)
	}
	return n, nil
}
