package siterag

import "context"

// Asker provides natural language question answering over the indexed site.
type Asker interface {
	// Ask answers a natural language question using retrieved site content.
	// Returns EINVALID if the question is empty and ENOTFOUND if nothing
	// has been indexed yet.
	Ask(ctx context.Context, question string) (string, error)
}
