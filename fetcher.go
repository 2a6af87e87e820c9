package menuscrape

import (
	"context"
	"io"
)

// Fetcher retrieves pages and binary assets over the network.
type Fetcher interface {
	// Fetch returns the full body of an HTML page.
	// Returns EFETCH on network or protocol failure.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Open returns a stream over the response body of a binary asset.
	// The caller must close it. Returns EFETCH on failure.
	Open(ctx context.Context, url string) (io.ReadCloser, error)
}

// Downloader streams a remote asset into a writer.
type Downloader interface {
	// Download copies the response body of url to w through a bounded
	// buffer and returns the number of bytes written.
	// Returns EFETCH for read failures and EWRITE for write failures.
	Download(ctx context.Context, url string, w io.Writer) (int64, error)
}
