package siterag

import (
	"net/url"
	"strings"
)

// SameOrigin reports whether a and b share scheme, host and port.
// Scheme and host are compared case-insensitively. Default ports are not
// normalized, so "example.com" and "example.com:443" are different origins.
func SameOrigin(a, b *url.URL) bool {
	if a == nil || b == nil {
		return false
	}
	return strings.EqualFold(a.Scheme, b.Scheme) && strings.EqualFold(a.Host, b.Host)
}
