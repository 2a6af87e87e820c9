// Package rod renders menu pages in headless Chrome for sources whose markup
// is built by JavaScript. Binary assets bypass the browser.
package rod

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/fwojciec/menuscrape"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page render.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements menuscrape.Fetcher at compile time.
var _ menuscrape.Fetcher = (*Fetcher)(nil)

// Fetcher returns rendered HTML for pages and delegates Open to an asset
// fetcher. Chrome is launched on the first Fetch, so a run whose sources
// only download assets never starts a browser.
//
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	assets  menuscrape.Fetcher
	timeout time.Duration

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	closed   bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the timeout for one page render. Zero disables it.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher returns a Fetcher that opens binary assets with assets.
// Close must be called when the Fetcher is no longer needed.
func NewFetcher(assets menuscrape.Fetcher, opts ...Option) *Fetcher {
	f := &Fetcher{
		assets:  assets,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch navigates to url, waits for the load event and returns the
// rendered document.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser, err := f.ensureBrowser()
	if err != nil {
		return "", err
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", menuscrape.WrapError(menuscrape.EFETCH, url, err)
	}
	defer page.Close()

	page = page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return "", menuscrape.WrapError(menuscrape.EFETCH, url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", menuscrape.WrapError(menuscrape.EFETCH, url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", menuscrape.WrapError(menuscrape.EFETCH, url, err)
	}
	return html, nil
}

// Open delegates to the asset fetcher.
func (f *Fetcher) Open(ctx context.Context, url string) (io.ReadCloser, error) {
	f.mu.Lock()
	closed := f.closed
	f.mu.Unlock()
	if closed {
		return nil, menuscrape.Errorf(menuscrape.EINVALID, "fetcher closed")
	}
	return f.assets.Open(ctx, url)
}

// Close shuts down the browser if one was started. It is safe to call
// more than once.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true

	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}

// LauncherPID returns the process ID of the launched browser, or zero if
// none is running.
func (f *Fetcher) LauncherPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.launcher == nil {
		return 0
	}
	return f.launcher.PID()
}

func (f *Fetcher) ensureBrowser() (*rod.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, menuscrape.Errorf(menuscrape.EINVALID, "fetcher closed")
	}
	if f.browser != nil {
		return f.browser, nil
	}

	l := launcher.New().
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, menuscrape.WrapError(menuscrape.EINTERNAL, "", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, menuscrape.WrapError(menuscrape.EINTERNAL, "", err)
	}

	f.browser = browser
	f.launcher = l
	return browser, nil
}
