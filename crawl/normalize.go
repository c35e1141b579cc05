package crawl

import (
	"net/url"

	"github.com/PuerkitoBio/purell"
)

// normalizeFlags canonicalize the parts of a URL that do not change the
// page it names. Default ports are left alone so that origin checks see
// the URL as written.
const normalizeFlags = purell.FlagLowercaseScheme | purell.FlagLowercaseHost | purell.FlagRemoveFragment

// NormalizeURL returns the canonical form of rawURL used as its identity
// in the frontier: lowercase scheme and host, no fragment.
// Unparseable URLs are returned unchanged.
func NormalizeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return purell.NormalizeURL(u, normalizeFlags)
}
