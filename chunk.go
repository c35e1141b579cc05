package siterag

import (
	"context"
	"time"
)

// Chunk is a piece of the crawled corpus sized for embedding and retrieval.
type Chunk struct {
	ID          string    `json:"id"`
	Position    int       `json:"position"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Embedding   []float32 `json:"embedding,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.Content == "" {
		return Errorf(EINVALID, "chunk content required")
	}
	if len(c.Embedding) == 0 {
		return Errorf(EINVALID, "chunk embedding required")
	}
	return nil
}

// ChunkService represents the persisted vector index.
type ChunkService interface {
	// ReplaceChunks atomically replaces the whole index with chunks.
	ReplaceChunks(ctx context.Context, chunks []*Chunk) error

	// FindChunks retrieves chunks matching the filter, ordered by position.
	FindChunks(ctx context.Context, filter ChunkFilter) ([]*Chunk, error)

	// SearchChunks returns the chunks most similar to embedding,
	// highest score first. Returns ENOTFOUND if the index is empty.
	SearchChunks(ctx context.Context, embedding []float32, limit int) ([]SearchResult, error)
}

// ChunkFilter represents a filter for FindChunks.
type ChunkFilter struct {
	ID *string `json:"id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Embedder converts text to vectors using an external embedding service.
type Embedder interface {
	// EmbedDocuments embeds texts for storage. The result has one vector
	// per input text, in the same order.
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedQuery embeds a search query.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// SearchService provides semantic search over the indexed corpus.
type SearchService interface {
	// Search returns chunks ordered by relevance to the query.
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)
}

// SearchOptions configures search behavior.
type SearchOptions struct {
	// Maximum number of results to return
	Limit int `json:"limit,omitempty"`

	// Minimum similarity score (-1 to 1)
	MinScore float32 `json:"minScore,omitempty"`
}

// SearchResult represents a search match.
type SearchResult struct {
	Chunk *Chunk  `json:"chunk"`
	Score float32 `json:"score"`
}

// IndexStats summarizes an index build.
type IndexStats struct {
	Chunks     int
	Characters int
}

// Indexer builds the vector index from a crawled corpus.
type Indexer interface {
	// Index splits, embeds and stores records, replacing any previous index.
	// Returns EINVALID if the records contain no text.
	Index(ctx context.Context, records []*PageRecord) (*IndexStats, error)
}
