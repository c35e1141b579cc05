// Package gemini implements embedding, question answering and token
// counting on top of the Google Gemini API.
package gemini

// Default models.
const (
	DefaultModel          = "gemini-2.5-flash"
	DefaultEmbeddingModel = "gemini-embedding-001"
)
