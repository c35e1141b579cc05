package siterag

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a GET for url and returns the response body.
	// Transport failures, timeouts and non-success statuses are
	// returned as errors. The context controls cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
