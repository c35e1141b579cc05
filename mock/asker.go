package mock

import (
	"context"

	"github.com/fwojciec/siterag"
)

var _ siterag.Asker = (*Asker)(nil)

// Asker is a mock implementation of siterag.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	return a.AskFn(ctx, question)
}
