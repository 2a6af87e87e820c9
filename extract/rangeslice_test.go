package extract_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/menuscrape"
	"github.com/fwojciec/menuscrape/extract"
	"github.com/fwojciec/menuscrape/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func graciasMadrePage(dish string) string {
	return "<html><body>\n<div id=\"nav\">Home</div>\n" +
		"<h3 style=\"font-family: 'Piedra', cursive;\">" + dish + "</h3>\n" +
		"<p>with <b>salsa</b></p>\n" +
		"\t<div id=\"top_button\">\n<a href=\"#\">Top</a></div>\n" +
		"</body></html>"
}

func graciasMadreSource(ids ...int) *menuscrape.Source {
	return &menuscrape.Source{
		Name:        menuscrape.GraciasMadre,
		URLTemplate: "https://menus.example.com/plain_menu?menu_id=%d",
		PageIDs:     ids,
		Strategy:    menuscrape.StrategyRangeSliced,
		Kind:        menuscrape.KindText,
		Range: &menuscrape.RangeMarkers{
			Start: menuscrape.GraciasMadreStartMarker,
			End:   menuscrape.GraciasMadreEndMarker,
		},
	}
}

func pageURL(id int) string {
	return fmt.Sprintf("https://menus.example.com/plain_menu?menu_id=%d", id)
}

func TestRangeSliced_Extract(t *testing.T) {
	t.Parallel()

	t.Run("concatenates pages in configured order", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		pages := map[string]string{
			pageURL(9):  graciasMadrePage("Tacos"),
			pageURL(14): graciasMadrePage("Nachos"),
		}
		fetcher := staticFetcher(pages)
		inner := fetcher.FetchFn
		fetcher.FetchFn = func(ctx context.Context, url string) (string, error) {
			fetched = append(fetched, url)
			return inner(ctx, url)
		}
		e := &extract.RangeSliced{Fetcher: fetcher, Serializer: html.NewSerializer()}

		ex, err := e.Extract(context.Background(), graciasMadreSource(14, 9))

		require.NoError(t, err)
		assert.Equal(t, []string{pageURL(14), pageURL(9)}, fetched)
		assert.Equal(t, &menuscrape.TextArtifact{Text: "Nachos\nwith salsa\nTacos\nwith salsa\n"}, ex.Artifact)
		assert.Equal(t, 2, strings.Count(ex.Raw, "<body>"))
	})

	t.Run("extracts through end of page without end marker", func(t *testing.T) {
		t.Parallel()

		page := "<html><body><h3 style=\"font-family: 'Piedra'\">Tacos</h3><p>al pastor</p></body></html>"
		e := &extract.RangeSliced{
			Fetcher:    staticFetcher(map[string]string{pageURL(9): page}),
			Serializer: html.NewSerializer(),
		}

		ex, err := e.Extract(context.Background(), graciasMadreSource(9))

		require.NoError(t, err)
		assert.Equal(t, &menuscrape.TextArtifact{Text: "Tacosal pastor"}, ex.Artifact)
	})

	t.Run("returns EMARKERNOTFOUND with page URL", func(t *testing.T) {
		t.Parallel()

		e := &extract.RangeSliced{
			Fetcher: staticFetcher(map[string]string{
				pageURL(9):  graciasMadrePage("Tacos"),
				pageURL(14): "<html><body><h3>Redesigned</h3></body></html>",
			}),
			Serializer: html.NewSerializer(),
		}

		_, err := e.Extract(context.Background(), graciasMadreSource(9, 14))

		require.Error(t, err)
		assert.Equal(t, menuscrape.EMARKERNOTFOUND, menuscrape.ErrorCode(err))
		var merr *menuscrape.Error
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, pageURL(14), merr.URL)
	})

	t.Run("aborts source when a page fetch fails", func(t *testing.T) {
		t.Parallel()

		e := &extract.RangeSliced{
			Fetcher:    staticFetcher(map[string]string{pageURL(9): graciasMadrePage("Tacos")}),
			Serializer: html.NewSerializer(),
		}

		ex, err := e.Extract(context.Background(), graciasMadreSource(9, 18))

		assert.Nil(t, ex)
		assert.Equal(t, menuscrape.EFETCH, menuscrape.ErrorCode(err))
	})
}
