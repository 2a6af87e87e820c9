package menuscrape

import (
	"fmt"
	"strings"
)

// Strategy selects the extraction algorithm used for a source.
type Strategy string

// Supported extraction strategies.
const (
	StrategySectionFiltered Strategy = "section-filtered"
	StrategyRangeSliced     Strategy = "range-sliced"
	StrategyPassthrough     Strategy = "passthrough"
	StrategyImageComposite  Strategy = "image-composite"
	StrategySiblingWalk     Strategy = "sibling-walk"
)

// ArtifactKind identifies the type of file produced for a source.
type ArtifactKind string

// Supported artifact kinds. The value doubles as the file extension.
const (
	KindText ArtifactKind = "txt"
	KindPDF  ArtifactKind = "pdf"
	KindJPEG ArtifactKind = "jpg"
	KindPNG  ArtifactKind = "png"
)

// Ext returns the file extension for the kind, including the leading dot.
func (k ArtifactKind) Ext() string {
	return "." + string(k)
}

// Source describes one restaurant and how its menu is obtained.
// Sources are built once at startup and must not be modified afterwards.
type Source struct {
	Name string

	// URL is the page (or asset) to fetch.
	URL string

	// URLTemplate and PageIDs describe a multi-page source. The template
	// holds a single %d verb that is replaced by each ID in order.
	URLTemplate string
	PageIDs     []int

	Strategy Strategy
	Kind     ArtifactKind

	// Strategy-specific settings. Only the one matching Strategy is used.
	Link     *LinkRule      // passthrough: locate the asset on URL; nil means URL is the asset
	Sections *SectionPolicy // section-filtered
	Range    *RangeMarkers  // range-sliced
	Images   *ImagePolicy   // image-composite
	Siblings *SiblingPolicy // sibling-walk
}

// FileName returns the artifact file name, e.g. "Kindred.pdf".
func (s *Source) FileName() string {
	return s.Name + s.Kind.Ext()
}

// RawFileName returns the file name for the raw page snapshot.
func (s *Source) RawFileName() string {
	return s.Name + "Raw" + KindText.Ext()
}

// PageURLs returns the URLs to fetch in configured order.
func (s *Source) PageURLs() []string {
	if s.URLTemplate == "" {
		return []string{s.URL}
	}
	urls := make([]string, 0, len(s.PageIDs))
	for _, id := range s.PageIDs {
		urls = append(urls, fmt.Sprintf(s.URLTemplate, id))
	}
	return urls
}

// Validate returns an error if the source contains invalid fields.
func (s *Source) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "source name required")
	}
	if strings.ContainsAny(s.Name, `/\`) {
		return Errorf(EINVALID, "source %s: name must not contain path separators", s.Name)
	}
	if s.URL == "" && s.URLTemplate == "" {
		return Errorf(EINVALID, "source %s: URL or URL template required", s.Name)
	}
	if s.URLTemplate != "" {
		if strings.Count(s.URLTemplate, "%d") != 1 {
			return Errorf(EINVALID, "source %s: URL template must contain exactly one %%d", s.Name)
		}
		if len(s.PageIDs) == 0 {
			return Errorf(EINVALID, "source %s: page IDs required with URL template", s.Name)
		}
	}
	if s.Kind == "" {
		return Errorf(EINVALID, "source %s: artifact kind required", s.Name)
	}

	switch s.Strategy {
	case StrategySectionFiltered:
		if s.Sections == nil {
			return Errorf(EINVALID, "source %s: section policy required", s.Name)
		}
		if s.Sections.TitleClass == "" {
			return Errorf(EINVALID, "source %s: section title class required", s.Name)
		}
	case StrategyRangeSliced:
		if s.Range == nil || s.Range.Start == "" {
			return Errorf(EINVALID, "source %s: start marker required", s.Name)
		}
	case StrategyPassthrough:
		if s.Link != nil && s.Link.Text == "" {
			return Errorf(EINVALID, "source %s: link text required", s.Name)
		}
	case StrategyImageComposite:
		if s.Images == nil || s.Images.Selector == "" {
			return Errorf(EINVALID, "source %s: image selector required", s.Name)
		}
		if s.Kind != KindJPEG && s.Kind != KindPNG {
			return Errorf(EINVALID, "source %s: image composite must produce jpg or png", s.Name)
		}
	case StrategySiblingWalk:
		if s.Siblings == nil || s.Siblings.Selector == "" {
			return Errorf(EINVALID, "source %s: item selector required", s.Name)
		}
	default:
		return Errorf(EINVALID, "source %s: unknown strategy %q", s.Name, s.Strategy)
	}

	return nil
}

// DefaultImagePadding is the gap in pixels left below every stacked image.
const DefaultImagePadding = 50

// ImagePolicy configures the image-composite strategy.
type ImagePolicy struct {
	// Selector matches the <img> elements holding the menu pages.
	Selector string

	// Limit caps the number of images used. Zero means all of them.
	Limit int

	// Padding is the vertical gap in pixels added below every image.
	Padding int

	// Quality is the JPEG encoding quality. Zero means DefaultJPEGQuality.
	Quality int
}

// SiblingPolicy configures the sibling-walk strategy.
type SiblingPolicy struct {
	// Heading is written once at the top of the output.
	Heading string

	// Selector matches item title elements; each item's description is
	// made of the element's following siblings.
	Selector string
}

// Catalog is the fixed set of configured sources.
type Catalog struct {
	sources []*Source
}

// NewCatalog validates the sources and returns a catalog preserving their order.
func NewCatalog(sources ...*Source) (*Catalog, error) {
	seen := make(map[string]bool, len(sources))
	for _, s := range sources {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if seen[s.Name] {
			return nil, Errorf(EINVALID, "duplicate source name %q", s.Name)
		}
		seen[s.Name] = true
	}
	return &Catalog{sources: append([]*Source(nil), sources...)}, nil
}

// Sources returns all sources in configured order.
func (c *Catalog) Sources() []*Source {
	return append([]*Source(nil), c.sources...)
}

// Select returns the named sources in catalog order.
// With no names it returns every source.
// Returns ENOTFOUND if a name does not exist.
func (c *Catalog) Select(names ...string) ([]*Source, error) {
	if len(names) == 0 {
		return c.Sources(), nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	var selected []*Source
	for _, s := range c.sources {
		if want[s.Name] {
			selected = append(selected, s)
			delete(want, s.Name)
		}
	}
	for _, n := range names {
		if want[n] {
			return nil, Errorf(ENOTFOUND, "unknown source %q", n)
		}
	}
	return selected, nil
}
