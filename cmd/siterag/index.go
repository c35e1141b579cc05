package main

import (
	"fmt"

	"github.com/fwojciec/siterag"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	records, err := deps.Corpus.Read()
	if err != nil {
		if siterag.ErrorCode(err) == siterag.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %s. Run 'siterag crawl <url>' first.\n", siterag.ErrorMessage(err))
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", siterag.ErrorMessage(err))
		}
		return err
	}
	return runIndex(deps, records)
}

func runIndex(deps *Dependencies, records []*siterag.PageRecord) error {
	stats, err := deps.Indexer.Index(deps.Ctx, records)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error indexing: %s\n", siterag.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Indexed %d chunks (%d characters)\n", stats.Chunks, stats.Characters)
	return nil
}
