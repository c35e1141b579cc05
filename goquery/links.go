package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/siterag"
)

// Ensure LinkDiscoverer implements siterag.LinkDiscoverer.
var _ siterag.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer finds same-origin links in HTML.
type LinkDiscoverer struct{}

// NewLinkDiscoverer creates a new LinkDiscoverer.
func NewLinkDiscoverer() *LinkDiscoverer {
	return &LinkDiscoverer{}
}

// DiscoverLinks returns the absolute, fragment-free URLs of every anchor
// outside boilerplate whose origin matches pageURL, in document order.
// Duplicates are kept.
func (d *LinkDiscoverer) DiscoverLinks(html string, pageURL string) ([]string, error) {
	base, err := parsePageURL(pageURL)
	if err != nil {
		return nil, err
	}
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}
	return discoverLinks(doc, base), nil
}

func parsePageURL(pageURL string) (*url.URL, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, siterag.Errorf(siterag.EINVALID, "invalid page URL: %v", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, siterag.Errorf(siterag.EINVALID, "page URL must be absolute: %q", pageURL)
	}
	return base, nil
}

func discoverLinks(doc *goquery.Document, base *url.URL) []string {
	var links []string
	doc.Find(linkSelector).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		resolved, ok := resolveURL(base, href)
		if !ok {
			return
		}
		// Also drops mailto:, javascript: and other non-HTTP schemes.
		if !siterag.SameOrigin(base, resolved) {
			return
		}
		links = append(links, resolved.String())
	})
	return links
}

// resolveURL resolves href against base and strips the fragment, so a
// fragment-only href resolves to base itself.
func resolveURL(base *url.URL, href string) (*url.URL, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return nil, false
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	resolved.RawFragment = ""
	return resolved, true
}
