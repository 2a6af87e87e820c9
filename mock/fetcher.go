package mock

import (
	"context"
	"io"

	"github.com/fwojciec/menuscrape"
)

var (
	_ menuscrape.Fetcher    = (*Fetcher)(nil)
	_ menuscrape.Downloader = (*Downloader)(nil)
)

// Fetcher is a mock implementation of menuscrape.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	OpenFn  func(ctx context.Context, url string) (io.ReadCloser, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Open(ctx context.Context, url string) (io.ReadCloser, error) {
	return f.OpenFn(ctx, url)
}

// Downloader is a mock implementation of menuscrape.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url string, w io.Writer) (int64, error)
}

func (d *Downloader) Download(ctx context.Context, url string, w io.Writer) (int64, error) {
	return d.DownloadFn(ctx, url, w)
}
