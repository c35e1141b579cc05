package siterag

import "strings"

// FormatContext joins retrieved chunk contents into the context block
// passed to the language model. Chunks are separated by a newline in
// relevance order.
func FormatContext(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for _, r := range results {
		if r.Chunk == nil {
			continue
		}
		parts = append(parts, r.Chunk.Content)
	}

	return strings.Join(parts, "\n")
}

// JoinCorpus concatenates record contents, each followed by a newline,
// into the text that is split for indexing.
func JoinCorpus(records []*PageRecord) string {
	var sb strings.Builder
	for _, r := range records {
		sb.WriteString(r.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}
