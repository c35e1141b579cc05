package gemini

import (
	"context"
	"fmt"

	"github.com/fwojciec/siterag"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ siterag.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens using the Gemini tokenizer.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model.
// The tokenizer model is downloaded on first use, so construction can
// fail without network access.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer for %s: %w", model, err)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountRecords counts the tokens of a crawled corpus as it will be indexed.
func (tc *TokenCounter) CountRecords(ctx context.Context, records []*siterag.PageRecord) (int, error) {
	return tc.CountTokens(ctx, siterag.JoinCorpus(records))
}

// CountTokens counts the number of tokens in the given text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}

	result, err := tc.tok.CountTokens(contents, nil)
	if err != nil {
		return 0, err
	}

	return int(result.TotalTokens), nil
}
