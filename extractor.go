package siterag

// ParsedPage holds everything a crawl needs from a single fetched page.
type ParsedPage struct {
	// Content is the normalized text of the page. Empty when the page
	// has no qualifying text.
	Content string

	// Links are absolute, fragment-free, same-origin URLs in document order.
	Links []string
}

// PageParser parses a fetched page once and derives both its text and
// its outbound links from the same cleaned document.
type PageParser interface {
	// Parse processes raw HTML fetched from pageURL.
	Parse(html string, pageURL string) (*ParsedPage, error)
}

// Extractor produces normalized plain text from HTML.
type Extractor interface {
	// Extract returns the page text. An empty string means the page
	// has no qualifying content and is not an error.
	Extract(html string) (string, error)
}

// LinkDiscoverer finds crawlable links in HTML.
type LinkDiscoverer interface {
	// DiscoverLinks returns absolute URLs with the same scheme, host and
	// port as pageURL. Relative hrefs are resolved against pageURL.
	DiscoverLinks(html string, pageURL string) ([]string, error)
}
