package menuscrape_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"testing"

	"github.com/fwojciec/menuscrape"
	"github.com/fwojciec/menuscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestTextArtifact_Write(t *testing.T) {
	t.Parallel()

	t.Run("writes text verbatim", func(t *testing.T) {
		t.Parallel()

		a := &menuscrape.TextArtifact{Text: "Tacos\nBurritos\n"}
		var buf bytes.Buffer

		require.NoError(t, a.Write(context.Background(), &buf))
		assert.Equal(t, "Tacos\nBurritos\n", buf.String())
		assert.Equal(t, menuscrape.KindText, a.Kind())
	})

	t.Run("returns EWRITE on writer failure", func(t *testing.T) {
		t.Parallel()

		a := &menuscrape.TextArtifact{Text: "x"}

		err := a.Write(context.Background(), failingWriter{})

		assert.Equal(t, menuscrape.EWRITE, menuscrape.ErrorCode(err))
	})
}

func TestMenuArtifact_Write(t *testing.T) {
	t.Parallel()

	menu := &menuscrape.Menu{Sections: []menuscrape.Section{{Title: "Mains", Items: []menuscrape.Item{{Name: "Risotto"}}}}}
	a := &menuscrape.MenuArtifact{Menu: menu}
	var buf bytes.Buffer

	require.NoError(t, a.Write(context.Background(), &buf))
	assert.Equal(t, menu.String(), buf.String())
}

func TestDownloadArtifact_Write(t *testing.T) {
	t.Parallel()

	t.Run("delegates to downloader", func(t *testing.T) {
		t.Parallel()

		d := &mock.Downloader{
			DownloadFn: func(_ context.Context, url string, w io.Writer) (int64, error) {
				n, err := io.WriteString(w, "%PDF-"+url)
				return int64(n), err
			},
		}
		a := &menuscrape.DownloadArtifact{URL: "menu", Format: menuscrape.KindPDF, Downloader: d}
		var buf bytes.Buffer

		require.NoError(t, a.Write(context.Background(), &buf))
		assert.Equal(t, "%PDF-menu", buf.String())
		assert.Equal(t, menuscrape.KindPDF, a.Kind())
	})

	t.Run("keeps downloader error code", func(t *testing.T) {
		t.Parallel()

		d := &mock.Downloader{
			DownloadFn: func(_ context.Context, url string, _ io.Writer) (int64, error) {
				return 0, menuscrape.Errorf(menuscrape.EFETCH, "HTTP 404 for %s", url)
			},
		}
		a := &menuscrape.DownloadArtifact{URL: "menu", Format: menuscrape.KindPDF, Downloader: d}

		err := a.Write(context.Background(), io.Discard)

		assert.Equal(t, menuscrape.EFETCH, menuscrape.ErrorCode(err))
	})
}

func TestImageArtifact_Write(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(0, 0, color.White)

	t.Run("encodes PNG", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		a := &menuscrape.ImageArtifact{Image: img, Format: menuscrape.KindPNG}

		require.NoError(t, a.Write(context.Background(), &buf))

		decoded, err := png.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 4, 3), decoded.Bounds())
	})

	t.Run("encodes JPEG", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		a := &menuscrape.ImageArtifact{Image: img, Format: menuscrape.KindJPEG}

		require.NoError(t, a.Write(context.Background(), &buf))

		decoded, err := jpeg.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 4, 3), decoded.Bounds())
	})

	t.Run("lower JPEG quality produces smaller output", func(t *testing.T) {
		t.Parallel()

		noisy := image.NewRGBA(image.Rect(0, 0, 64, 64))
		for x := 0; x < 64; x++ {
			for y := 0; y < 64; y++ {
				noisy.Set(x, y, color.RGBA{R: uint8(x * 37 % 256), G: uint8(y * 53 % 256), B: uint8((x ^ y) * 11 % 256), A: 255})
			}
		}

		var low, high bytes.Buffer
		require.NoError(t, (&menuscrape.ImageArtifact{Image: noisy, Format: menuscrape.KindJPEG, Quality: 10}).Write(context.Background(), &low))
		require.NoError(t, (&menuscrape.ImageArtifact{Image: noisy, Format: menuscrape.KindJPEG, Quality: 100}).Write(context.Background(), &high))

		assert.Less(t, low.Len(), high.Len())
	})

	t.Run("rejects non-image format", func(t *testing.T) {
		t.Parallel()

		a := &menuscrape.ImageArtifact{Image: img, Format: menuscrape.KindPDF}

		err := a.Write(context.Background(), io.Discard)

		assert.Equal(t, menuscrape.EINVALID, menuscrape.ErrorCode(err))
	})

	t.Run("returns EWRITE on writer failure", func(t *testing.T) {
		t.Parallel()

		a := &menuscrape.ImageArtifact{Image: img, Format: menuscrape.KindPNG}

		err := a.Write(context.Background(), failingWriter{})

		assert.Equal(t, menuscrape.EWRITE, menuscrape.ErrorCode(err))
	})
}
