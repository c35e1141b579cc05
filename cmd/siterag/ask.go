package main

import (
	"fmt"

	"github.com/fwojciec/siterag"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Asker.Ask(deps.Ctx, c.Question)
	if err != nil {
		if siterag.ErrorCode(err) == siterag.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %s. Run 'siterag index' first.\n", siterag.ErrorMessage(err))
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", siterag.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
