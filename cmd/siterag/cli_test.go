package main_test

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/siterag/cmd/siterag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"crawl", "extract", "index", "ask", "serve"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_CrawlDefaults(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"crawl", "https://example.com"})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", cli.Crawl.URL)
	assert.Equal(t, 10, cli.Crawl.MaxPages)
	assert.Equal(t, "Extracted_Data", cli.Crawl.OutputDir)
	assert.Equal(t, "extracted_content.json", cli.Crawl.OutputFile)
	assert.Equal(t, 20, cli.Crawl.MinFragmentLength)
	assert.False(t, cli.Crawl.Index)
}

func TestCLI_IndexDefaults(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"index"})
	require.NoError(t, err)

	assert.Equal(t, "Extracted_Data/extracted_content.json", cli.Index.Corpus)
	assert.Equal(t, 500, cli.Index.ChunkSize)
	assert.Equal(t, 50, cli.Index.ChunkOverlap)
	assert.Equal(t, "gemini-2.5-flash", cli.Model)
	assert.Equal(t, "gemini-embedding-001", cli.EmbeddingModel)
}
