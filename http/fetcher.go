// Package http provides the network side of menuscrape: an HTTP-based
// implementation of menuscrape.Fetcher and menuscrape.Downloader.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/menuscrape"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DownloadBufferSize is the size of the buffer used to stream assets.
const DownloadBufferSize = 4096

// Ensure Fetcher implements the menuscrape interfaces at compile time.
var (
	_ menuscrape.Fetcher    = (*Fetcher)(nil)
	_ menuscrape.Downloader = (*Fetcher)(nil)
)

// Fetcher retrieves pages and assets using plain GET requests.
// It does not retry.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	limiter *HostLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit limits requests to rps per host. Zero or less disables limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps > 0 {
			f.limiter = NewHostLimiter(rps)
		} else {
			f.limiter = nil
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL, decoded to UTF-8
// from the charset declared by the Content-Type header or a <meta> tag.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", menuscrape.WrapError(menuscrape.EFETCH, url, err)
	}

	b, err := io.ReadAll(body)
	if err != nil {
		return "", menuscrape.WrapError(menuscrape.EFETCH, url, err)
	}

	return string(b), nil
}

// Open issues a GET request and returns the undecoded response body.
// The caller must close it.
func (f *Fetcher) Open(ctx context.Context, url string) (io.ReadCloser, error) {
	resp, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (f *Fetcher) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, menuscrape.WrapError(menuscrape.EFETCH, url, err)
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, req.URL.Host); err != nil {
			return nil, menuscrape.WrapError(menuscrape.EFETCH, url, err)
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, menuscrape.WrapError(menuscrape.EFETCH, url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &menuscrape.Error{
			Code:    menuscrape.EFETCH,
			Message: fmt.Sprintf("HTTP %d for %s", resp.StatusCode, url),
			URL:     url,
		}
	}

	return resp, nil
}

// Download streams the body at url into w through a fixed-size buffer,
// so memory use does not grow with the asset size.
func (f *Fetcher) Download(ctx context.Context, url string, w io.Writer) (int64, error) {
	body, err := f.Open(ctx, url)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	buf := make([]byte, DownloadBufferSize)
	var written int64
	for {
		n, rerr := body.Read(buf)
		if n > 0 {
			m, werr := w.Write(buf[:n])
			written += int64(m)
			if werr == nil && m != n {
				werr = io.ErrShortWrite
			}
			if werr != nil {
				return written, menuscrape.WrapError(menuscrape.EWRITE, url, werr)
			}
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, menuscrape.WrapError(menuscrape.EFETCH, url, rerr)
		}
	}
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
