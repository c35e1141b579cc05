package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/siterag/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("collects headings and paragraphs in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h2>Second level heading comes first</h2>
<p>The opening paragraph of the page body.</p>
<h1>A top level heading placed after it</h1>
</body></html>`

		got, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Second level heading comes first The opening paragraph of the page body. A top level heading placed after it", got)
	})

	t.Run("normalizes whitespace", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.NewExtractor(goquery.WithMinFragmentLength(0)).Extract("<p>a\n\n  b\tc</p>")

		require.NoError(t, err)
		assert.Equal(t, "a b c", got)
	})

	t.Run("normalizes whitespace across nested inline elements", func(t *testing.T) {
		t.Parallel()

		html := "<p>\n  Text with <b>bold</b> and\t<i>italic</i>\n\n parts inside  </p>"

		got, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Text with bold and italic parts inside", got)
	})

	t.Run("drops fragments at or below the length threshold", func(t *testing.T) {
		t.Parallel()

		twenty := strings.Repeat("a", 20)
		twentyOne := strings.Repeat("b", 21)
		html := "<p>" + twenty + "</p><p>" + twentyOne + "</p>"

		got, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, twentyOne, got)
	})

	t.Run("threshold counts characters not bytes", func(t *testing.T) {
		t.Parallel()

		// 20 characters, 40 bytes.
		html := "<p>" + strings.Repeat("é", 20) + "</p>"

		got, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("threshold is measured after trimming", func(t *testing.T) {
		t.Parallel()

		html := "<p>      " + strings.Repeat("c", 20) + "      </p>"

		got, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("custom threshold", func(t *testing.T) {
		t.Parallel()

		html := "<h3>Short one</h3><p>tiny</p>"

		got, err := goquery.NewExtractor(goquery.WithMinFragmentLength(4)).Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Short one", got)
	})

	t.Run("ignores text inside boilerplate elements", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><style>p { color: red; } .long-selector-name {}</style></head><body>
<nav><p>Navigation paragraph that is long enough</p></nav>
<aside><p>Sidebar paragraph that is long enough too</p></aside>
<p>Visible paragraph text <script>var hidden = "script content here";</script>stays.</p>
<iframe><p>Frame paragraph that is long enough</p></iframe>
<footer><h4>Footer heading that is long enough</h4></footer>
</body></html>`

		got, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Visible paragraph text stays.", got)
	})

	t.Run("ignores text outside content elements", func(t *testing.T) {
		t.Parallel()

		html := `<div>Loose div text that is quite long indeed</div><span>Span text that is also long enough</span>`

		got, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("nested matches each contribute", func(t *testing.T) {
		t.Parallel()

		html := `<article><p>Paragraph inside an article element</p></article>`

		got, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Paragraph inside an article element Paragraph inside an article element", got)
	})

	t.Run("empty document yields empty content", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.NewExtractor().Extract("")

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		html := `<p>Unclosed paragraph with enough text<div><h1>Heading without end tag too`

		got, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Contains(t, got, "Unclosed paragraph with enough text")
		assert.Contains(t, got, "Heading without end tag too")
	})

	t.Run("extraction is idempotent", func(t *testing.T) {
		t.Parallel()

		docs := []string{
			`<h1>Welcome to the documentation site</h1><p>Installation   takes
			only a few minutes on most systems.</p>`,
			`<article><h2>Release notes for version two</h2><p>Tiny</p></article>`,
			`<p>Ünïcödé text survives extraction intact.</p><nav><p>Skip this navigation paragraph</p></nav>`,
		}

		extractor := goquery.NewExtractor()
		for _, doc := range docs {
			first, err := extractor.Extract(doc)
			require.NoError(t, err)

			second, err := extractor.Extract("<p>" + first + "</p>")
			require.NoError(t, err)

			assert.Equal(t, first, second)
		}
	})
}
