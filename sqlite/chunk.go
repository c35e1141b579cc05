package sqlite

import (
	"cmp"
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/fwojciec/siterag"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ siterag.ChunkService = (*ChunkService)(nil)

// ChunkService implements siterag.ChunkService using SQLite.
// Similarity search is a full scan, which suits corpora of a few
// thousand chunks.
type ChunkService struct {
	db *DB
}

// NewChunkService creates a new ChunkService.
func NewChunkService(db *DB) *ChunkService {
	return &ChunkService{db: db}
}

// ReplaceChunks deletes every stored chunk and inserts chunks in a single
// transaction. IDs, content hashes and creation times are assigned here.
// All embeddings must have the same dimension.
func (s *ChunkService) ReplaceChunks(ctx context.Context, chunks []*siterag.Chunk) error {
	for i, c := range chunks {
		if err := c.Validate(); err != nil {
			return err
		}
		if len(c.Embedding) != len(chunks[0].Embedding) {
			return siterag.Errorf(siterag.EINVALID, "chunk %d has embedding dimension %d, want %d",
				i, len(c.Embedding), len(chunks[0].Embedding))
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM chunks"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (id, position, content, content_hash, embedding, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, c := range chunks {
		c.ID = uuid.New().String()
		c.ContentHash = hashContent(c.Content)
		c.CreatedAt = now

		if _, err := stmt.ExecContext(ctx, c.ID, c.Position, c.Content, c.ContentHash,
			encodeEmbedding(c.Embedding), c.CreatedAt.Format(time.RFC3339)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindChunks retrieves chunks matching the filter, ordered by position.
func (s *ChunkService) FindChunks(ctx context.Context, filter siterag.ChunkFilter) ([]*siterag.Chunk, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, position, content, content_hash, embedding, created_at FROM chunks WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}

	query.WriteString(" ORDER BY position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	return s.queryChunks(ctx, query.String(), args...)
}

// SearchChunks scores every stored chunk against embedding by cosine
// similarity. Results are ordered by score, highest first, with ties
// broken by position. A limit of zero or less returns all chunks.
func (s *ChunkService) SearchChunks(ctx context.Context, embedding []float32, limit int) ([]siterag.SearchResult, error) {
	if len(embedding) == 0 {
		return nil, siterag.Errorf(siterag.EINVALID, "query embedding required")
	}

	chunks, err := s.queryChunks(ctx,
		"SELECT id, position, content, content_hash, embedding, created_at FROM chunks ORDER BY position ASC")
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, siterag.Errorf(siterag.ENOTFOUND, "index is empty")
	}

	results := make([]siterag.SearchResult, 0, len(chunks))
	for _, c := range chunks {
		if len(c.Embedding) != len(embedding) {
			return nil, siterag.Errorf(siterag.EINVALID, "query embedding dimension %d does not match index dimension %d",
				len(embedding), len(c.Embedding))
		}
		results = append(results, siterag.SearchResult{
			Chunk: c,
			Score: cosineSimilarity(embedding, c.Embedding),
		})
	}

	slices.SortStableFunc(results, func(a, b siterag.SearchResult) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (s *ChunkService) queryChunks(ctx context.Context, query string, args ...any) ([]*siterag.Chunk, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []*siterag.Chunk
	for rows.Next() {
		c, err := scanChunk(rows)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}

	return chunks, rows.Err()
}

func scanChunk(rows *sql.Rows) (*siterag.Chunk, error) {
	var c siterag.Chunk
	var blob []byte
	var createdAt string

	if err := rows.Scan(&c.ID, &c.Position, &c.Content, &c.ContentHash, &blob, &createdAt); err != nil {
		return nil, err
	}

	embedding, err := decodeEmbedding(blob)
	if err != nil {
		return nil, fmt.Errorf("chunk %s: %w", c.ID, err)
	}
	c.Embedding = embedding

	c.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &c, nil
}
