package mock

import (
	"context"

	"github.com/fwojciec/siterag"
)

var _ siterag.ChunkService = (*ChunkService)(nil)

// ChunkService is a mock implementation of siterag.ChunkService.
type ChunkService struct {
	ReplaceChunksFn func(ctx context.Context, chunks []*siterag.Chunk) error
	FindChunksFn    func(ctx context.Context, filter siterag.ChunkFilter) ([]*siterag.Chunk, error)
	SearchChunksFn  func(ctx context.Context, embedding []float32, limit int) ([]siterag.SearchResult, error)
}

func (s *ChunkService) ReplaceChunks(ctx context.Context, chunks []*siterag.Chunk) error {
	return s.ReplaceChunksFn(ctx, chunks)
}

func (s *ChunkService) FindChunks(ctx context.Context, filter siterag.ChunkFilter) ([]*siterag.Chunk, error) {
	return s.FindChunksFn(ctx, filter)
}

func (s *ChunkService) SearchChunks(ctx context.Context, embedding []float32, limit int) ([]siterag.SearchResult, error) {
	return s.SearchChunksFn(ctx, embedding, limit)
}

var _ siterag.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of siterag.Embedder.
type Embedder struct {
	EmbedDocumentsFn func(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQueryFn     func(ctx context.Context, text string) ([]float32, error)
}

func (e *Embedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	return e.EmbedDocumentsFn(ctx, texts)
}

func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return e.EmbedQueryFn(ctx, text)
}

var _ siterag.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of siterag.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query string, opts siterag.SearchOptions) ([]siterag.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, query string, opts siterag.SearchOptions) ([]siterag.SearchResult, error) {
	return s.SearchFn(ctx, query, opts)
}

var _ siterag.Indexer = (*Indexer)(nil)

// Indexer is a mock implementation of siterag.Indexer.
type Indexer struct {
	IndexFn func(ctx context.Context, records []*siterag.PageRecord) (*siterag.IndexStats, error)
}

func (i *Indexer) Index(ctx context.Context, records []*siterag.PageRecord) (*siterag.IndexStats, error) {
	return i.IndexFn(ctx, records)
}
