package main

import (
	"fmt"

	"github.com/fwojciec/siterag"
	"github.com/fwojciec/siterag/crawl"
)

// maxURLLen bounds URLs printed in progress lines.
const maxURLLen = 80

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	progress := func(event crawl.ProgressEvent) {
		line := crawl.FormatProgress(event, maxURLLen)
		switch event.Type {
		case crawl.ProgressCompleted, crawl.ProgressEmpty:
			fmt.Fprintf(deps.Stdout, "  %s\n", line)
		case crawl.ProgressFailed:
			fmt.Fprintln(deps.Stderr, line)
		}
	}

	result, err := deps.Crawler.Crawl(deps.Ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siterag.ErrorMessage(err))
		return err
	}

	path, err := deps.Corpus.Write(result.Records)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error saving corpus: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Extracted content from %d pages and saved to %s\n", len(result.Records), path)
	summary := crawl.FormatBytes(result.Bytes)
	if deps.Tokens != nil {
		if tokens, err := deps.Tokens.CountTokens(deps.Ctx, siterag.JoinCorpus(result.Records)); err == nil {
			summary += ", " + crawl.FormatTokens(tokens)
		}
	}
	fmt.Fprintf(deps.Stdout, "  %s\n", summary)

	if !c.Index {
		return nil
	}
	return runIndex(deps, result.Records)
}
