package gemini

import (
	"context"

	"github.com/fwojciec/siterag"
	"google.golang.org/genai"
)

// Embedding task types understood by the Gemini embedding models.
const (
	taskRetrievalDocument = "RETRIEVAL_DOCUMENT"
	taskRetrievalQuery    = "RETRIEVAL_QUERY"
)

// Ensure Embedder implements siterag.Embedder at compile time.
var _ siterag.Embedder = (*Embedder)(nil)

// Embedder implements siterag.Embedder using Gemini embedding models.
type Embedder struct {
	client *genai.Client
	model  string
}

// NewEmbedder creates a new Embedder. An empty model selects
// DefaultEmbeddingModel.
func NewEmbedder(client *genai.Client, model string) *Embedder {
	if model == "" {
		model = DefaultEmbeddingModel
	}
	return &Embedder{client: client, model: model}
}

// EmbedDocuments embeds texts for retrieval, one vector per text.
func (e *Embedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	for i, text := range texts {
		if text == "" {
			return nil, siterag.Errorf(siterag.EINVALID, "text %d is empty", i)
		}
	}
	return e.embed(ctx, texts, taskRetrievalDocument)
}

// EmbedQuery embeds a search query.
func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, siterag.Errorf(siterag.EINVALID, "query required")
	}
	vectors, err := e.embed(ctx, []string{text}, taskRetrievalQuery)
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (e *Embedder) embed(ctx context.Context, texts []string, taskType string) ([][]float32, error) {
	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}

	resp, err := e.client.Models.EmbedContent(ctx, e.model, contents,
		&genai.EmbedContentConfig{TaskType: taskType})
	if err != nil {
		return nil, err
	}
	return embeddingValues(resp, len(texts))
}

// embeddingValues extracts exactly n vectors from resp.
func embeddingValues(resp *genai.EmbedContentResponse, n int) ([][]float32, error) {
	if resp == nil {
		return nil, siterag.Errorf(siterag.EINTERNAL, "gemini returned nil embedding response")
	}
	if len(resp.Embeddings) != n {
		return nil, siterag.Errorf(siterag.EINTERNAL, "gemini returned %d embeddings for %d texts", len(resp.Embeddings), n)
	}

	vectors := make([][]float32, n)
	for i, emb := range resp.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, siterag.Errorf(siterag.EINTERNAL, "gemini returned empty embedding %d", i)
		}
		vectors[i] = emb.Values
	}
	return vectors, nil
}
