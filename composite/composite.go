// Package composite stitches menu images into one vertically stacked frame.
package composite

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/fwojciec/menuscrape"
	_ "golang.org/x/image/webp"
)

// Background fills the composite wherever no image is drawn.
var Background color.Color = color.White

// Stack draws frames top to bottom at x=0. The result is as wide as the
// widest frame and as tall as the sum of every frame's height plus padding.
// Frames are neither cropped nor scaled.
func Stack(frames []image.Image, padding int, bg color.Color) *image.RGBA {
	var width, height int
	for _, f := range frames {
		b := f.Bounds()
		width = max(width, b.Dx())
		height += b.Dy() + padding
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	y := 0
	for _, f := range frames {
		b := f.Bounds()
		r := image.Rect(0, y, b.Dx(), y+b.Dy())
		draw.Draw(dst, r, f, b.Min, draw.Over)
		y += b.Dy() + padding
	}
	return dst
}

// Ensure Compositor implements menuscrape.Compositor at compile time.
var _ menuscrape.Compositor = (*Compositor)(nil)

// Compositor downloads images in order and stacks them.
type Compositor struct {
	fetcher    menuscrape.Fetcher
	background color.Color
}

// Option configures a Compositor.
type Option func(*Compositor)

// WithBackground sets the fill color. Defaults to white.
func WithBackground(c color.Color) Option {
	return func(comp *Compositor) {
		comp.background = c
	}
}

// NewCompositor creates a Compositor that reads images through fetcher.
func NewCompositor(fetcher menuscrape.Fetcher, opts ...Option) *Compositor {
	c := &Compositor{
		fetcher:    fetcher,
		background: Background,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose fetches and decodes every URL, then stacks the frames.
// Any fetch or decode failure aborts the whole composite.
func (c *Compositor) Compose(ctx context.Context, urls []string, padding int) (image.Image, error) {
	if len(urls) == 0 {
		return nil, menuscrape.Errorf(menuscrape.EINVALID, "no images to compose")
	}
	if padding < 0 {
		return nil, menuscrape.Errorf(menuscrape.EINVALID, "negative padding %d", padding)
	}

	frames := make([]image.Image, 0, len(urls))
	for _, u := range urls {
		img, err := c.decode(ctx, u)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return Stack(frames, padding, c.background), nil
}

func (c *Compositor) decode(ctx context.Context, url string) (image.Image, error) {
	body, err := c.fetcher.Open(ctx, url)
	if err != nil {
		return nil, menuscrape.WrapError(menuscrape.EFETCH, url, err)
	}
	defer body.Close()

	img, _, err := image.Decode(body)
	if err != nil {
		return nil, &menuscrape.Error{
			Code:    menuscrape.EDECODE,
			Message: "failed to decode image: " + err.Error(),
			URL:     url,
			Err:     err,
		}
	}
	return img, nil
}
