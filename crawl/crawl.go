// Package crawl provides bounded breadth-first website crawling.
// It coordinates fetching, parsing, and link scoping for a single origin.
package crawl

import (
	"context"
	"net/url"

	"github.com/fwojciec/siterag"
)

// DefaultMaxPages is the page budget used when Crawler.MaxPages is unset.
const DefaultMaxPages = 10

// Crawler performs a breadth-first crawl of one website.
// Pages are fetched one at a time.
type Crawler struct {
	Fetcher siterag.Fetcher
	Parser  siterag.PageParser

	// MaxPages bounds the number of URLs visited, including pages that
	// fail to fetch or have no content. Zero means DefaultMaxPages.
	MaxPages int
}

// Result holds the outcome of a crawl.
type Result struct {
	// Records holds one entry per visited page with non-empty content,
	// in visit order.
	Records []*siterag.PageRecord

	// Visited lists every visited URL in visit order.
	Visited []string

	Failed int
	Bytes  int
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type     ProgressType
	Visited  int
	MaxPages int
	URL      string
	Error    error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressVisiting ProgressType = iota
	ProgressCompleted
	ProgressEmpty
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl visits pages reachable from startURL that share its origin,
// breadth-first, until the frontier is empty or the page budget is spent.
// Fetch failures are reported through progress and do not stop the crawl.
// The progress callback, if provided, is called synchronously.
func (c *Crawler) Crawl(ctx context.Context, startURL string, progress ProgressFunc) (*Result, error) {
	start, err := url.Parse(startURL)
	if err != nil {
		return nil, siterag.Errorf(siterag.EINVALID, "invalid start URL: %v", err)
	}
	if start.Scheme == "" || start.Host == "" {
		return nil, siterag.Errorf(siterag.EINVALID, "start URL must be absolute: %q", startURL)
	}

	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	notify := func(event ProgressEvent) {
		if progress != nil {
			event.MaxPages = maxPages
			progress(event)
		}
	}

	frontier := NewFrontier(uint(maxPages), DefaultFalsePositiveRate)
	frontier.Push(startURL)

	result := &Result{}
	for frontier.VisitedCount() < maxPages {
		pageURL, ok := frontier.Pop()
		if !ok {
			break
		}
		if !frontier.Visit(pageURL) {
			continue
		}
		result.Visited = append(result.Visited, pageURL)
		visited := len(result.Visited)

		notify(ProgressEvent{Type: ProgressVisiting, Visited: visited, URL: pageURL})

		html, err := c.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			result.Failed++
			notify(ProgressEvent{Type: ProgressFailed, Visited: visited, URL: pageURL, Error: err})
			continue
		}

		// Unparseable markup counts as a page without content or links.
		page, err := c.Parser.Parse(html, pageURL)
		if err != nil {
			notify(ProgressEvent{Type: ProgressEmpty, Visited: visited, URL: pageURL, Error: err})
			continue
		}

		if page.Content != "" {
			result.Records = append(result.Records, &siterag.PageRecord{
				URL:     pageURL,
				Content: page.Content,
			})
			result.Bytes += len(page.Content)
			notify(ProgressEvent{Type: ProgressCompleted, Visited: visited, URL: pageURL})
		} else {
			notify(ProgressEvent{Type: ProgressEmpty, Visited: visited, URL: pageURL})
		}

		for _, link := range page.Links {
			if !inScope(start, link) || frontier.Visited(link) {
				continue
			}
			frontier.Push(link)
		}
	}

	notify(ProgressEvent{Type: ProgressFinished, Visited: len(result.Visited)})
	return result, nil
}

// inScope reports whether link shares the crawl's origin.
func inScope(start *url.URL, link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return siterag.SameOrigin(start, u)
}
