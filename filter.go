package menuscrape

// Node is one element of a document flattened into document order.
type Node struct {
	Tag string

	// Class is the full class attribute; matching is exact, not per token.
	Class string
	ID    string

	// Text is the element's own text with whitespace collapsed, excluding
	// text of descendant elements.
	Text string
}

// SectionPolicy configures the section-filtered strategy: which classes
// mark section titles, item titles, and item descriptions, and which
// sections are kept.
type SectionPolicy struct {
	TitleClass       string
	ItemClass        string
	DescriptionClass string

	// Relevant lists the section titles to keep (exact match).
	// Nil keeps every section.
	Relevant []string

	// StartRelevant sets whether items seen before the first section title
	// are kept. Such items land in an untitled section.
	StartRelevant bool

	// TitleFromID takes the section title from the id attribute instead
	// of the element's own text.
	TitleFromID bool

	// HeaderTitle writes the page <title> first; HeaderParagraphs writes
	// that many <p> elements starting at the first one.
	HeaderTitle      bool
	HeaderParagraphs int
}

// FilterState is the accumulator carried through the section filter.
type FilterState struct {
	Relevant bool
	Menu     Menu
}

// Start returns the state at the beginning of a document.
func (p *SectionPolicy) Start() FilterState {
	return FilterState{Relevant: p.StartRelevant}
}

// Step folds one node into the state. It may reuse the slices backing s,
// so earlier states must not be used after a later one is produced.
func (p *SectionPolicy) Step(s FilterState, n Node) FilterState {
	switch {
	case p.TitleClass != "" && n.Class == p.TitleClass:
		title := n.Text
		if p.TitleFromID {
			title = n.ID
		}
		s.Relevant = p.isRelevant(title)
		if s.Relevant {
			s.Menu.Sections = append(s.Menu.Sections, Section{Title: title})
		}

	case s.Relevant && p.ItemClass != "" && n.Class == p.ItemClass:
		if len(s.Menu.Sections) == 0 {
			s.Menu.Sections = append(s.Menu.Sections, Section{})
		}
		sec := &s.Menu.Sections[len(s.Menu.Sections)-1]
		sec.Items = append(sec.Items, Item{Name: n.Text})

	case s.Relevant && p.DescriptionClass != "" && n.Class == p.DescriptionClass:
		if len(s.Menu.Sections) == 0 {
			return s
		}
		sec := &s.Menu.Sections[len(s.Menu.Sections)-1]
		if len(sec.Items) == 0 {
			return s
		}
		item := &sec.Items[len(sec.Items)-1]
		if item.Description == "" {
			item.Description = n.Text
		} else {
			item.Description += "\n" + n.Text
		}
	}
	return s
}

func (p *SectionPolicy) isRelevant(title string) bool {
	if p.Relevant == nil {
		return true
	}
	for _, r := range p.Relevant {
		if r == title {
			return true
		}
	}
	return false
}

// FilterSections reduces a document-order node sequence to a Menu, keeping
// items only from relevant sections.
func FilterSections(nodes []Node, p *SectionPolicy) Menu {
	s := p.Start()
	for _, n := range nodes {
		s = p.Step(s, n)
	}
	return s.Menu
}
