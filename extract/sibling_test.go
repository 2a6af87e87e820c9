package extract_test

import (
	"context"
	"testing"

	"github.com/fwojciec/menuscrape"
	"github.com/fwojciec/menuscrape/extract"
	"github.com/fwojciec/menuscrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func biNeviDeliTextSource() *menuscrape.Source {
	return &menuscrape.Source{
		Name:     menuscrape.BiNeviDeliTxt,
		URL:      "https://binevideli.com/en/menus/",
		Strategy: menuscrape.StrategySiblingWalk,
		Kind:     menuscrape.KindText,
		Siblings: &menuscrape.SiblingPolicy{
			Heading:  "Bi Nevi Deli Menu",
			Selector: ".t-entry-title.h3",
		},
	}
}

func TestSiblingWalk_Extract(t *testing.T) {
	t.Parallel()

	t.Run("renders items under heading", func(t *testing.T) {
		t.Parallel()

		src := biNeviDeliTextSource()
		page := `<html><body>
<div><h3 class="t-entry-title h3">Shakshuka</h3><p>eggs, tomato</p></div>
<div><h3 class="t-entry-title h3">Hummus</h3></div>
</body></html>`
		e := &extract.SiblingWalk{
			Fetcher: staticFetcher(map[string]string{src.URL: page}),
			Parser:  goquery.NewParser(),
		}

		ex, err := e.Extract(context.Background(), src)

		require.NoError(t, err)
		menu := ex.Artifact.(*menuscrape.MenuArtifact).Menu
		assert.Equal(t, "Bi Nevi Deli Menu\n\n\nShakshuka\neggs, tomato\n\nHummus\n", menu.String())
	})

	t.Run("writes description text without markup", func(t *testing.T) {
		t.Parallel()

		src := biNeviDeliTextSource()
		page := `<html><body>
<div><h3 class="t-entry-title h3">Sabich</h3><p><strong>GF</strong> eggplant, <em>egg</em></p><p>1. add amba* (spicy)</p></div>
</body></html>`
		e := &extract.SiblingWalk{
			Fetcher: staticFetcher(map[string]string{src.URL: page}),
			Parser:  goquery.NewParser(),
		}

		ex, err := e.Extract(context.Background(), src)

		require.NoError(t, err)
		menu := ex.Artifact.(*menuscrape.MenuArtifact).Menu
		assert.Equal(t, "Bi Nevi Deli Menu\n\n\nSabich\nGF eggplant, egg\n1. add amba* (spicy)\n", menu.String())
	})

	t.Run("returns ENOTFOUND without matching titles", func(t *testing.T) {
		t.Parallel()

		src := biNeviDeliTextSource()
		e := &extract.SiblingWalk{
			Fetcher: staticFetcher(map[string]string{src.URL: "<html><body><h3>Hummus</h3></body></html>"}),
			Parser:  goquery.NewParser(),
		}

		_, err := e.Extract(context.Background(), src)

		assert.Equal(t, menuscrape.ENOTFOUND, menuscrape.ErrorCode(err))
	})
}
