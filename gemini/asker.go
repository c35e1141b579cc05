package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/siterag"
	"google.golang.org/genai"
)

// DefaultTopK is the number of retrieved chunks placed in the prompt.
const DefaultTopK = 3

const systemInstruction = "You are a helpful assistant. Using the provided context, answer the user's question concisely and accurately.\n" +
	"If the context is insufficient, say so and provide a general answer."

// Ensure Asker implements siterag.Asker at compile time.
var _ siterag.Asker = (*Asker)(nil)

// Asker implements siterag.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
	search siterag.SearchService
	model  string

	// TopK is the number of chunks retrieved per question.
	// Zero means DefaultTopK.
	TopK int
}

// NewAsker creates a new Asker. An empty model selects DefaultModel.
func NewAsker(client *genai.Client, search siterag.SearchService, model string) *Asker {
	if model == "" {
		model = DefaultModel
	}
	return &Asker{client: client, search: search, model: model}
}

// Ask answers a question from the passages of the indexed corpus most
// similar to it.
func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", siterag.Errorf(siterag.EINVALID, "question required")
	}

	topK := a.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	results, err := a.search.Search(ctx, question, siterag.SearchOptions{Limit: topK})
	if err != nil {
		return "", err
	}

	prompt := BuildPrompt(siterag.FormatContext(results), question)

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", siterag.Errorf(siterag.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature: &temp,
	}
}

// BuildPrompt fills the question template with retrieved passages.
func BuildPrompt(passages, question string) string {
	return fmt.Sprintf("Context: %s\n\nQuestion: %s\n\nAnswer:", passages, question)
}
