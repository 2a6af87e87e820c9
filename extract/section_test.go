package extract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/menuscrape"
	"github.com/fwojciec/menuscrape/extract"
	"github.com/fwojciec/menuscrape/goquery"
	"github.com/fwojciec/menuscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const millenniumPage = `<!DOCTYPE html>
<html>
<head><title>Millennium Restaurant</title></head>
<body>
<p>Chef Eric Tucker</p>
<p>Oakland, CA</p>
<h2 class="menu-section-title">Starters</h2>
<h3 class="menu-item-title">Flatbread</h3>
<p class="menu-item-description">smoked tomato</p>
<h2 class="menu-section-title">Wine List</h2>
<h3 class="menu-item-title">Pinot Noir</h3>
<h2 class="menu-section-title">Mains</h2>
<h3 class="menu-item-title">Plantain Torte</h3>
<p class="menu-item-description">black beans</p>
</body>
</html>`

func staticFetcher(pages map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			html, ok := pages[url]
			if !ok {
				return "", &menuscrape.Error{Code: menuscrape.EFETCH, Message: "HTTP 404 for " + url, URL: url}
			}
			return html, nil
		},
	}
}

func millenniumSource() *menuscrape.Source {
	return &menuscrape.Source{
		Name:     menuscrape.Millennium,
		URL:      "https://www.millenniumrestaurant.com/menu",
		Strategy: menuscrape.StrategySectionFiltered,
		Kind:     menuscrape.KindText,
		Sections: &menuscrape.SectionPolicy{
			TitleClass:       "menu-section-title",
			ItemClass:        "menu-item-title",
			DescriptionClass: "menu-item-description",
			Relevant:         []string{"Starters", "Mains"},
			HeaderTitle:      true,
			HeaderParagraphs: 2,
		},
	}
}

func TestSectionFiltered_Extract(t *testing.T) {
	t.Parallel()

	t.Run("keeps relevant sections with header", func(t *testing.T) {
		t.Parallel()

		src := millenniumSource()
		e := &extract.SectionFiltered{
			Fetcher: staticFetcher(map[string]string{src.URL: millenniumPage}),
			Parser:  goquery.NewParser(),
		}

		ex, err := e.Extract(context.Background(), src)

		require.NoError(t, err)
		require.IsType(t, &menuscrape.MenuArtifact{}, ex.Artifact)
		menu := ex.Artifact.(*menuscrape.MenuArtifact).Menu
		assert.Equal(t, "Millennium Restaurant\nChef Eric Tucker\nOakland, CA\n\n\n"+
			"Starters\n\nFlatbread\nsmoked tomato\n\n\n"+
			"Mains\n\nPlantain Torte\nblack beans\n", menu.String())
		assert.Equal(t, millenniumPage, ex.Raw)
	})

	t.Run("is idempotent for identical input", func(t *testing.T) {
		t.Parallel()

		src := millenniumSource()
		e := &extract.SectionFiltered{
			Fetcher: staticFetcher(map[string]string{src.URL: millenniumPage}),
			Parser:  goquery.NewParser(),
		}

		first, err := e.Extract(context.Background(), src)
		require.NoError(t, err)
		second, err := e.Extract(context.Background(), src)
		require.NoError(t, err)

		assert.Equal(t, first.Artifact, second.Artifact)
	})

	t.Run("returns fetch error", func(t *testing.T) {
		t.Parallel()

		e := &extract.SectionFiltered{
			Fetcher: staticFetcher(nil),
			Parser:  goquery.NewParser(),
		}

		_, err := e.Extract(context.Background(), millenniumSource())

		assert.Equal(t, menuscrape.EFETCH, menuscrape.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when no relevant items exist", func(t *testing.T) {
		t.Parallel()

		src := millenniumSource()
		e := &extract.SectionFiltered{
			Fetcher: staticFetcher(map[string]string{src.URL: "<html><body><h2 class=\"menu-section-title\">Wine List</h2></body></html>"}),
			Parser:  goquery.NewParser(),
		}

		_, err := e.Extract(context.Background(), src)

		require.Error(t, err)
		assert.Equal(t, menuscrape.ENOTFOUND, menuscrape.ErrorCode(err))
	})

	t.Run("attaches page URL to parser errors", func(t *testing.T) {
		t.Parallel()

		src := millenniumSource()
		e := &extract.SectionFiltered{
			Fetcher: staticFetcher(map[string]string{src.URL: "<html></html>"}),
			Parser: &mock.DocumentParser{
				NodesFn: func(string) ([]menuscrape.Node, error) {
					return nil, errors.New("parse failure")
				},
			},
		}

		_, err := e.Extract(context.Background(), src)

		var merr *menuscrape.Error
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, src.URL, merr.URL)
	})

	t.Run("fails when header paragraphs are missing", func(t *testing.T) {
		t.Parallel()

		src := millenniumSource()
		src.Sections.HeaderParagraphs = 20
		e := &extract.SectionFiltered{
			Fetcher: staticFetcher(map[string]string{src.URL: millenniumPage}),
			Parser:  goquery.NewParser(),
		}

		_, err := e.Extract(context.Background(), src)

		assert.Equal(t, menuscrape.ENOTFOUND, menuscrape.ErrorCode(err))
	})
}
