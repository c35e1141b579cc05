package index

import (
	"context"
	"strings"

	"github.com/fwojciec/siterag"
)

// DefaultLimit is the number of results returned when SearchOptions.Limit is unset.
const DefaultLimit = 3

// Ensure Searcher implements siterag.SearchService at compile time.
var _ siterag.SearchService = (*Searcher)(nil)

// Searcher answers semantic queries against the stored index.
type Searcher struct {
	Embedder siterag.Embedder
	Chunks   siterag.ChunkService
}

// NewSearcher creates a new Searcher.
func NewSearcher(embedder siterag.Embedder, chunks siterag.ChunkService) *Searcher {
	return &Searcher{Embedder: embedder, Chunks: chunks}
}

// Search embeds query and returns the closest chunks, best first.
// Results scoring below a non-zero opts.MinScore are dropped.
func (s *Searcher) Search(ctx context.Context, query string, opts siterag.SearchOptions) ([]siterag.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, siterag.Errorf(siterag.EINVALID, "query required")
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	embedding, err := s.Embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	results, err := s.Chunks.SearchChunks(ctx, embedding, limit)
	if err != nil {
		return nil, err
	}

	if opts.MinScore == 0 {
		return results, nil
	}
	filtered := results[:0]
	for _, r := range results {
		if r.Score >= opts.MinScore {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}
