package crawl_test

import (
	"testing"

	"github.com/fwojciec/siterag/crawl"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already canonical", in: "https://example.com/docs", want: "https://example.com/docs"},
		{name: "strips fragment", in: "https://example.com/docs#intro", want: "https://example.com/docs"},
		{name: "lowercases scheme and host", in: "HTTPS://Example.COM/Docs", want: "https://example.com/Docs"},
		{name: "keeps query", in: "https://example.com/search?q=go&page=2#results", want: "https://example.com/search?q=go&page=2"},
		{name: "keeps explicit port", in: "http://example.com:8080/", want: "http://example.com:8080/"},
		{name: "unparseable is unchanged", in: "http://[::1", want: "http://[::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, crawl.NormalizeURL(tt.in))
		})
	}
}
