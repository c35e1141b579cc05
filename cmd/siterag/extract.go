package main

import (
	"fmt"

	"github.com/fwojciec/siterag"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error fetching %s: %v\n", c.URL, err)
		return err
	}

	text, err := deps.Extract.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siterag.ErrorMessage(err))
		return err
	}
	if text == "" {
		fmt.Fprintln(deps.Stderr, "no content")
	} else {
		fmt.Fprintln(deps.Stdout, text)
	}

	if !c.Links {
		return nil
	}

	links, err := deps.Links.DiscoverLinks(html, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siterag.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "\n%d links\n", len(links))
	for _, link := range links {
		fmt.Fprintf(deps.Stdout, "  %s\n", link)
	}
	return nil
}
