package goquery

import "github.com/fwojciec/siterag"

// Ensure Parser implements siterag.PageParser.
var _ siterag.PageParser = (*Parser)(nil)

// Parser extracts text and links from a page with a single parse.
type Parser struct {
	opts options
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	return &Parser{opts: newOptions(opts)}
}

// Parse returns the page text and its same-origin links. Both are taken
// from the document after boilerplate has been removed.
func (p *Parser) Parse(html string, pageURL string) (*siterag.ParsedPage, error) {
	base, err := parsePageURL(pageURL)
	if err != nil {
		return nil, err
	}
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}
	return &siterag.ParsedPage{
		Content: extractText(doc, p.opts.minFragmentLength),
		Links:   discoverLinks(doc, base),
	}, nil
}
