package mock

import "github.com/fwojciec/siterag"

var _ siterag.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of siterag.PageParser.
type PageParser struct {
	ParseFn func(html, pageURL string) (*siterag.ParsedPage, error)
}

func (p *PageParser) Parse(html, pageURL string) (*siterag.ParsedPage, error) {
	return p.ParseFn(html, pageURL)
}

var _ siterag.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of siterag.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}

var _ siterag.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer is a mock implementation of siterag.LinkDiscoverer.
type LinkDiscoverer struct {
	DiscoverLinksFn func(html, pageURL string) ([]string, error)
}

func (d *LinkDiscoverer) DiscoverLinks(html, pageURL string) ([]string, error) {
	return d.DiscoverLinksFn(html, pageURL)
}
