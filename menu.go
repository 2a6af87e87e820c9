package menuscrape

import (
	"io"
	"strings"
)

// Menu is the normalized shape text extractors converge on before
// serialization. Sections keep source document order.
type Menu struct {
	// Title and Notes form an optional header (page title, chef names).
	Title string
	Notes []string

	Sections []Section
}

// Section is a titled group of menu items.
type Section struct {
	Title string
	Items []Item
}

// Item is a single dish or drink.
type Item struct {
	Name        string
	Description string
}

// ItemCount returns the number of items across all sections.
func (m *Menu) ItemCount() int {
	var n int
	for _, s := range m.Sections {
		n += len(s.Items)
	}
	return n
}

// Render writes the menu as plain text. The header, then each section, is
// written as a block; blocks are separated by two blank lines and items
// within a section by one.
func (m *Menu) Render(w io.Writer) error {
	_, err := io.WriteString(w, m.String())
	return err
}

// String returns the plain text form written by Render.
func (m *Menu) String() string {
	var blocks []string

	var header []string
	if m.Title != "" {
		header = append(header, m.Title)
	}
	header = append(header, m.Notes...)
	if len(header) > 0 {
		blocks = append(blocks, strings.Join(header, "\n"))
	}

	for _, s := range m.Sections {
		var b strings.Builder
		b.WriteString(s.Title)
		for i, item := range s.Items {
			if i > 0 || s.Title != "" {
				b.WriteString("\n\n")
			}
			b.WriteString(item.Name)
			if item.Description != "" {
				b.WriteString("\n")
				b.WriteString(item.Description)
			}
		}
		blocks = append(blocks, b.String())
	}

	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n\n") + "\n"
}
