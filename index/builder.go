// Package index builds and queries the vector index of a crawled corpus.
package index

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/fwojciec/siterag"
	"golang.org/x/sync/errgroup"
)

// Embedding batch defaults.
const (
	DefaultBatchSize   = 100
	DefaultConcurrency = 4
)

// Ensure Builder implements siterag.Indexer at compile time.
var _ siterag.Indexer = (*Builder)(nil)

// Builder splits a corpus into chunks, embeds them and replaces the
// stored index.
type Builder struct {
	Embedder siterag.Embedder
	Chunks   siterag.ChunkService

	// Splitter defaults to a splitter with DefaultChunkSize and
	// DefaultChunkOverlap.
	Splitter *siterag.TextSplitter

	// BatchSize is the number of chunks per embedding request.
	BatchSize int

	// Concurrency bounds in-flight embedding requests.
	Concurrency int
}

// Index concatenates record contents, splits the text and stores one
// embedded chunk per piece. The previous index is replaced only if every
// batch embeds successfully.
func (b *Builder) Index(ctx context.Context, records []*siterag.PageRecord) (*siterag.IndexStats, error) {
	splitter := b.Splitter
	if splitter == nil {
		var err error
		splitter, err = siterag.NewTextSplitter(siterag.DefaultChunkSize, siterag.DefaultChunkOverlap)
		if err != nil {
			return nil, err
		}
	}

	pieces := splitter.Split(siterag.JoinCorpus(records))
	if len(pieces) == 0 {
		return nil, siterag.Errorf(siterag.EINVALID, "no content to index")
	}

	vectors, err := b.embed(ctx, pieces)
	if err != nil {
		return nil, err
	}

	stats := &siterag.IndexStats{Chunks: len(pieces)}
	chunks := make([]*siterag.Chunk, len(pieces))
	for i, piece := range pieces {
		chunks[i] = &siterag.Chunk{
			Position:  i,
			Content:   piece,
			Embedding: vectors[i],
		}
		stats.Characters += utf8.RuneCountInString(piece)
	}

	if err := b.Chunks.ReplaceChunks(ctx, chunks); err != nil {
		return nil, fmt.Errorf("store chunks: %w", err)
	}
	return stats, nil
}

// IndexCorpus reads a stored corpus and indexes it.
func (b *Builder) IndexCorpus(ctx context.Context, corpus siterag.CorpusReader) (*siterag.IndexStats, error) {
	records, err := corpus.Read()
	if err != nil {
		return nil, err
	}
	return b.Index(ctx, records)
}

// embed embeds texts in batches with bounded concurrency.
// The result is index-aligned with texts.
func (b *Builder) embed(ctx context.Context, texts []string) ([][]float32, error) {
	batchSize := b.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	vectors := make([][]float32, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for start := 0; start < len(texts); start += batchSize {
		end := min(start+batchSize, len(texts))
		g.Go(func() error {
			batch, err := b.Embedder.EmbedDocuments(gctx, texts[start:end])
			if err != nil {
				return fmt.Errorf("embed chunks %d-%d: %w", start, end-1, err)
			}
			if len(batch) != end-start {
				return siterag.Errorf(siterag.EINTERNAL, "embedder returned %d vectors for %d chunks", len(batch), end-start)
			}
			copy(vectors[start:end], batch)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}
