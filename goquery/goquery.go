// Package goquery implements page text extraction and link discovery
// using github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/siterag"
)

// DefaultMinFragmentLength is the default fragment length threshold.
// Fragments of this many characters or fewer are dropped as noise.
const DefaultMinFragmentLength = 20

const (
	// Subtrees that never contribute text or links.
	noiseSelector = "nav, footer, script, style, aside, iframe"

	// Elements whose text makes up page content.
	contentSelector = "p, h1, h2, h3, h4, h5, h6, article"

	linkSelector = "a[href]"
)

// Option configures extraction.
type Option func(*options)

type options struct {
	minFragmentLength int
}

// WithMinFragmentLength sets the fragment length threshold. Fragments
// whose trimmed text has n characters or fewer are discarded.
func WithMinFragmentLength(n int) Option {
	return func(o *options) {
		o.minFragmentLength = n
	}
}

func newOptions(opts []Option) options {
	o := options{minFragmentLength: DefaultMinFragmentLength}
	for _, opt := range opts {
		opt(&o)
	}
	if o.minFragmentLength < 0 {
		o.minFragmentLength = 0
	}
	return o
}

// parseDocument parses html and removes noise subtrees.
func parseDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, siterag.Errorf(siterag.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find(noiseSelector).Remove()
	return doc, nil
}
