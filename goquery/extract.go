package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/siterag"
)

// Ensure Extractor implements siterag.Extractor.
var _ siterag.Extractor = (*Extractor)(nil)

// Extractor extracts normalized page text from HTML.
type Extractor struct {
	opts options
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	return &Extractor{opts: newOptions(opts)}
}

// Extract returns the text of headings, paragraphs and articles outside
// navigation and other boilerplate, joined and whitespace-normalized.
func (e *Extractor) Extract(html string) (string, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return "", err
	}
	return extractText(doc, e.opts.minFragmentLength), nil
}

// extractText collects content fragments in document order. Nested
// matches (a paragraph inside an article) each contribute their text.
func extractText(doc *goquery.Document, minLength int) string {
	var fragments []string
	doc.Find(contentSelector).Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if utf8.RuneCountInString(text) <= minLength {
			return
		}
		fragments = append(fragments, text)
	})
	return normalizeWhitespace(strings.Join(fragments, " "))
}

// normalizeWhitespace collapses every whitespace run to a single space
// and trims the ends.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
