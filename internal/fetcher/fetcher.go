// Package fetcher downloads remote data over HTTP with retry, backoff,
// and per-host rate limiting.
package fetcher

import (
	"context"
	"io"
)

// Fetcher defines the interface for downloading remote data.
type Fetcher interface {
	// Download fetches the URL and returns the response body.
	Download(ctx context.Context, url string) (io.ReadCloser, error)

	// DownloadToFile fetches the URL and writes it to the given path,
	// creating parent directories as needed. Returns bytes written.
	DownloadToFile(ctx context.Context, url string, path string) (int64, error)
}
