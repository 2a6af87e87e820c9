package menuscrape

// Markers for the Gracias Madre plain menu pages. They match the body as
// serialized by html.Render, which escapes single quotes in attributes.
const (
	GraciasMadreStartMarker = `<h3 style="font-family: &#39;Piedra&#39;`
	GraciasMadreEndMarker   = "\t<div id=\"top_button\">\n"
)

// Source names in the default catalog.
const (
	Millennium     = "Millennium"
	Kindred        = "Kindred"
	GraciasMadre   = "GraciasMadre"
	NativeFoods    = "NativeFoods"
	NativeFoodsTxt = "NativeFoodsText"
	VeggieGrill    = "VeggieGrill"
	BiNeviDeli     = "BiNeviDeli"
	BiNeviDeliTxt  = "BiNeviDeliText"
)

// DefaultCatalog returns the built-in restaurant catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultSources()...)
	if err != nil {
		panic(err) // static data
	}
	return c
}

func defaultSources() []*Source {
	return []*Source{
		{
			Name:     Millennium,
			URL:      "https://www.millenniumrestaurant.com/menu",
			Strategy: StrategySectionFiltered,
			Kind:     KindText,
			Sections: &SectionPolicy{
				TitleClass:       "menu-section-title",
				ItemClass:        "menu-item-title",
				DescriptionClass: "menu-item-description",
				Relevant: []string{
					"Starters",
					"Mains",
					"Cocktails",
					"DESSERTS",
					"Sundays from 10:30am-2:00pm",
				},
				StartRelevant:    true,
				HeaderTitle:      true,
				HeaderParagraphs: 2,
			},
		},
		{
			Name:     Kindred,
			URL:      "https://barkindred.com",
			Strategy: StrategyPassthrough,
			Kind:     KindPDF,
			Link:     &LinkRule{Text: "Menu"},
		},
		{
			Name:        GraciasMadre,
			URLTemplate: "https://www.up2datemenu.com/plain_menu?menu_id=%d",
			PageIDs:     []int{9, 14, 18, 19, 34},
			Strategy:    StrategyRangeSliced,
			Kind:        KindText,
			Range: &RangeMarkers{
				Start: GraciasMadreStartMarker,
				End:   GraciasMadreEndMarker,
			},
		},
		{
			Name:     NativeFoods,
			URL:      "https://www.nativefoods.com/our-menu",
			Strategy: StrategyPassthrough,
			Kind:     KindPDF,
			// The first "MENU" anchor is the site navigation.
			Link: &LinkRule{Text: "MENU", Skip: 1},
		},
		{
			Name:     NativeFoodsTxt,
			URL:      "https://www.nativefoods.com/menu",
			Strategy: StrategySectionFiltered,
			Kind:     KindText,
			Sections: &SectionPolicy{
				TitleClass:       "menu-section",
				ItemClass:        "name",
				DescriptionClass: "description",
				TitleFromID:      true,
				StartRelevant:    true,
			},
		},
		{
			Name:     VeggieGrill,
			URL:      "https://www.veggiegrill.com/menu.html",
			Strategy: StrategyPassthrough,
			Kind:     KindPDF,
			Link:     &LinkRule{Text: "Download Menu PDF"},
		},
		{
			Name:     BiNeviDeli,
			URL:      "https://binevideli.com/en/menus/",
			Strategy: StrategyImageComposite,
			Kind:     KindJPEG,
			Images: &ImagePolicy{
				Selector: ".wpb_single_image img",
				Limit:    6,
				Padding:  DefaultImagePadding,
			},
		},
		{
			Name:     BiNeviDeliTxt,
			URL:      "https://binevideli.com/en/menus/",
			Strategy: StrategySiblingWalk,
			Kind:     KindText,
			Siblings: &SiblingPolicy{
				Heading:  "Bi Nevi Deli Menu",
				Selector: ".t-entry-title.h3",
			},
		},
	}
}
