package main

import (
	"context"
	"fmt"
	"time"
)

// shutdownTimeout bounds graceful shutdown of the API server.
const shutdownTimeout = 5 * time.Second

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	if err := deps.Server.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Listening on %s\n", deps.Server.URL())

	<-deps.Ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return deps.Server.Close(ctx)
}
