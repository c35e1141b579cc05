package index_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/siterag"
	"github.com/fwojciec/siterag/index"
	"github.com/fwojciec/siterag/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lengthEmbedder embeds each text as a one-dimensional vector of its length.
func lengthEmbedder() *mock.Embedder {
	return &mock.Embedder{
		EmbedDocumentsFn: func(_ context.Context, texts []string) ([][]float32, error) {
			vectors := make([][]float32, len(texts))
			for i, text := range texts {
				vectors[i] = []float32{float32(len(text))}
			}
			return vectors, nil
		},
	}
}

// storeInto returns a ChunkService that captures replaced chunks.
func storeInto(stored *[]*siterag.Chunk) *mock.ChunkService {
	return &mock.ChunkService{
		ReplaceChunksFn: func(_ context.Context, chunks []*siterag.Chunk) error {
			*stored = chunks
			return nil
		},
	}
}

func numberedRecords(n int) []*siterag.PageRecord {
	records := make([]*siterag.PageRecord, n)
	for i := range records {
		records[i] = &siterag.PageRecord{
			URL:     fmt.Sprintf("https://example.com/%d", i),
			Content: fmt.Sprintf("chunk-%03d", i),
		}
	}
	return records
}

func TestBuilder_Index(t *testing.T) {
	t.Parallel()

	t.Run("stores split chunks in order with their embeddings", func(t *testing.T) {
		t.Parallel()

		splitter, err := siterag.NewTextSplitter(30, 0)
		require.NoError(t, err)
		records := []*siterag.PageRecord{
			{URL: "https://example.com/", Content: "The first page has some text."},
			{URL: "https://example.com/a", Content: "The second page has more text."},
			{URL: "https://example.com/b", Content: "A third page closes the corpus."},
		}
		want := splitter.Split(siterag.JoinCorpus(records))
		require.GreaterOrEqual(t, len(want), 2)

		var stored []*siterag.Chunk
		b := &index.Builder{
			Embedder: lengthEmbedder(),
			Chunks:   storeInto(&stored),
			Splitter: splitter,
		}

		stats, err := b.Index(context.Background(), records)

		require.NoError(t, err)
		require.Len(t, stored, len(want))
		for i, c := range stored {
			assert.Equal(t, i, c.Position)
			assert.Equal(t, want[i], c.Content)
			assert.Equal(t, []float32{float32(len(want[i]))}, c.Embedding)
		}
		assert.Equal(t, len(want), stats.Chunks)
	})

	t.Run("uses default splitter", func(t *testing.T) {
		t.Parallel()

		var stored []*siterag.Chunk
		b := &index.Builder{
			Embedder: lengthEmbedder(),
			Chunks:   storeInto(&stored),
		}

		stats, err := b.Index(context.Background(), []*siterag.PageRecord{
			{URL: "https://example.com/", Content: "Short page."},
			{URL: "https://example.com/a", Content: "Another short page."},
		})

		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "Short page.\nAnother short page.", stored[0].Content)
		assert.Equal(t, &siterag.IndexStats{Chunks: 1, Characters: len("Short page.\nAnother short page.")}, stats)
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		t.Parallel()

		var stored []*siterag.Chunk
		b := &index.Builder{Embedder: lengthEmbedder(), Chunks: storeInto(&stored)}

		stats, err := b.Index(context.Background(), []*siterag.PageRecord{
			{URL: "https://example.com/", Content: "Zürich café"},
		})

		require.NoError(t, err)
		assert.Equal(t, 11, stats.Characters)
	})

	t.Run("embeds in batches preserving order", func(t *testing.T) {
		t.Parallel()

		splitter, err := siterag.NewTextSplitter(12, 0)
		require.NoError(t, err)
		records := numberedRecords(250)
		want := splitter.Split(siterag.JoinCorpus(records))
		require.Len(t, want, 250)

		positions := make(map[string]int, len(want))
		for i, piece := range want {
			positions[piece] = i
		}

		var mu sync.Mutex
		var batchSizes []int
		embedder := &mock.Embedder{
			EmbedDocumentsFn: func(_ context.Context, texts []string) ([][]float32, error) {
				mu.Lock()
				batchSizes = append(batchSizes, len(texts))
				mu.Unlock()

				vectors := make([][]float32, len(texts))
				for i, text := range texts {
					vectors[i] = []float32{float32(positions[text])}
				}
				return vectors, nil
			},
		}

		var stored []*siterag.Chunk
		b := &index.Builder{
			Embedder:  embedder,
			Chunks:    storeInto(&stored),
			Splitter:  splitter,
			BatchSize: 100,
		}

		_, err = b.Index(context.Background(), records)

		require.NoError(t, err)
		assert.ElementsMatch(t, []int{100, 100, 50}, batchSizes)
		require.Len(t, stored, 250)
		for i, c := range stored {
			assert.Equal(t, []float32{float32(i)}, c.Embedding)
		}
	})

	t.Run("limits concurrent embedding requests", func(t *testing.T) {
		t.Parallel()

		splitter, err := siterag.NewTextSplitter(12, 0)
		require.NoError(t, err)

		var inFlight, maxInFlight atomic.Int32
		embedder := &mock.Embedder{
			EmbedDocumentsFn: func(_ context.Context, texts []string) ([][]float32, error) {
				n := inFlight.Add(1)
				defer inFlight.Add(-1)
				for {
					m := maxInFlight.Load()
					if n <= m || maxInFlight.CompareAndSwap(m, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)

				vectors := make([][]float32, len(texts))
				for i := range texts {
					vectors[i] = []float32{1}
				}
				return vectors, nil
			},
		}

		var stored []*siterag.Chunk
		b := &index.Builder{
			Embedder:    embedder,
			Chunks:      storeInto(&stored),
			Splitter:    splitter,
			BatchSize:   1,
			Concurrency: 2,
		}

		_, err = b.Index(context.Background(), numberedRecords(20))

		require.NoError(t, err)
		assert.LessOrEqual(t, maxInFlight.Load(), int32(2))
		assert.Len(t, stored, 20)
	})

	t.Run("returns EINVALID when there is no text", func(t *testing.T) {
		t.Parallel()

		b := &index.Builder{
			Embedder: &mock.Embedder{},
			Chunks:   &mock.ChunkService{},
		}

		for _, records := range [][]*siterag.PageRecord{
			nil,
			{{URL: "https://example.com/", Content: "  \n\n \t"}},
		} {
			_, err := b.Index(context.Background(), records)

			require.Error(t, err)
			assert.Equal(t, siterag.EINVALID, siterag.ErrorCode(err))
			assert.Contains(t, siterag.ErrorMessage(err), "no content to index")
		}
	})

	t.Run("does not replace the index when embedding fails", func(t *testing.T) {
		t.Parallel()

		replaced := false
		b := &index.Builder{
			Embedder: &mock.Embedder{
				EmbedDocumentsFn: func(context.Context, []string) ([][]float32, error) {
					return nil, errors.New("quota exceeded")
				},
			},
			Chunks: &mock.ChunkService{
				ReplaceChunksFn: func(context.Context, []*siterag.Chunk) error {
					replaced = true
					return nil
				},
			},
		}

		_, err := b.Index(context.Background(), numberedRecords(3))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
		assert.False(t, replaced)
	})

	t.Run("returns EINTERNAL when embedder returns wrong count", func(t *testing.T) {
		t.Parallel()

		b := &index.Builder{
			Embedder: &mock.Embedder{
				EmbedDocumentsFn: func(context.Context, []string) ([][]float32, error) {
					return [][]float32{}, nil
				},
			},
			Chunks: &mock.ChunkService{},
		}

		_, err := b.Index(context.Background(), numberedRecords(1))

		assert.Equal(t, siterag.EINTERNAL, siterag.ErrorCode(err))
	})

	t.Run("propagates store errors", func(t *testing.T) {
		t.Parallel()

		b := &index.Builder{
			Embedder: lengthEmbedder(),
			Chunks: &mock.ChunkService{
				ReplaceChunksFn: func(context.Context, []*siterag.Chunk) error {
					return siterag.Errorf(siterag.EINVALID, "mixed dimensions")
				},
			},
		}

		_, err := b.Index(context.Background(), numberedRecords(1))

		assert.Equal(t, siterag.EINVALID, siterag.ErrorCode(err))
	})
}

func TestBuilder_IndexCorpus(t *testing.T) {
	t.Parallel()

	t.Run("indexes records read from the corpus", func(t *testing.T) {
		t.Parallel()

		var stored []*siterag.Chunk
		b := &index.Builder{Embedder: lengthEmbedder(), Chunks: storeInto(&stored)}
		corpus := &mock.CorpusStore{
			ReadFn: func() ([]*siterag.PageRecord, error) {
				return []*siterag.PageRecord{{URL: "https://example.com/", Content: "Corpus text."}}, nil
			},
		}

		stats, err := b.IndexCorpus(context.Background(), corpus)

		require.NoError(t, err)
		assert.Equal(t, 1, stats.Chunks)
		require.Len(t, stored, 1)
		assert.Equal(t, "Corpus text.", stored[0].Content)
	})

	t.Run("propagates read errors", func(t *testing.T) {
		t.Parallel()

		b := &index.Builder{}
		corpus := &mock.CorpusStore{
			ReadFn: func() ([]*siterag.PageRecord, error) {
				return nil, siterag.Errorf(siterag.ENOTFOUND, "corpus not found")
			},
		}

		_, err := b.IndexCorpus(context.Background(), corpus)

		assert.Equal(t, siterag.ENOTFOUND, siterag.ErrorCode(err))
	})
}
