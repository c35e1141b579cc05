package siterag

import (
	"strings"
	"unicode/utf8"
)

// Text splitter defaults.
const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 50
)

// DefaultSeparators prefers paragraph breaks, then line breaks.
var DefaultSeparators = []string{"\n\n", "\n"}

// TextSplitter recursively splits text into overlapping chunks.
// It tries each separator in order and only falls back to the next one
// for pieces that are still longer than ChunkSize. Lengths are measured
// in characters, not bytes.
type TextSplitter struct {
	ChunkSize    int
	ChunkOverlap int
	Separators   []string
}

// NewTextSplitter returns a TextSplitter using DefaultSeparators.
// Returns EINVALID if size is not positive or overlap is outside [0, size].
func NewTextSplitter(size, overlap int) (*TextSplitter, error) {
	if size <= 0 {
		return nil, Errorf(EINVALID, "chunk size must be positive, got %d", size)
	}
	if overlap < 0 {
		return nil, Errorf(EINVALID, "chunk overlap must not be negative, got %d", overlap)
	}
	if overlap > size {
		return nil, Errorf(EINVALID, "chunk overlap %d larger than chunk size %d", overlap, size)
	}
	return &TextSplitter{
		ChunkSize:    size,
		ChunkOverlap: overlap,
		Separators:   DefaultSeparators,
	}, nil
}

// Split returns the chunks of text in order. Chunks are trimmed of
// surrounding whitespace and empty chunks are dropped, except that a
// piece too long to split further is returned as is.
func (s *TextSplitter) Split(text string) []string {
	separators := s.Separators
	if len(separators) == 0 {
		separators = DefaultSeparators
	}
	return s.split(text, separators)
}

func (s *TextSplitter) split(text string, separators []string) []string {
	var chunks []string

	separator := separators[len(separators)-1]
	var remaining []string
	for i, sep := range separators {
		if sep == "" {
			separator = sep
			break
		}
		if strings.Contains(text, sep) {
			separator = sep
			remaining = separators[i+1:]
			break
		}
	}

	var good []string
	for _, piece := range splitKeepingSeparator(text, separator) {
		if utf8.RuneCountInString(piece) < s.ChunkSize {
			good = append(good, piece)
			continue
		}
		if len(good) > 0 {
			chunks = append(chunks, s.merge(good, "")...)
			good = nil
		}
		if len(remaining) == 0 {
			chunks = append(chunks, piece)
		} else {
			chunks = append(chunks, s.split(piece, remaining)...)
		}
	}
	if len(good) > 0 {
		chunks = append(chunks, s.merge(good, "")...)
	}

	return chunks
}

// merge greedily combines pieces into chunks of at most ChunkSize,
// carrying up to ChunkOverlap characters from the end of each chunk
// into the start of the next.
func (s *TextSplitter) merge(pieces []string, separator string) []string {
	sepLen := utf8.RuneCountInString(separator)
	joinLen := func(n int) int {
		if n > 0 {
			return sepLen
		}
		return 0
	}

	var chunks []string
	var current []string
	total := 0

	for _, piece := range pieces {
		n := utf8.RuneCountInString(piece)
		if total+n+joinLen(len(current)) > s.ChunkSize && len(current) > 0 {
			if chunk := joinChunk(current, separator); chunk != "" {
				chunks = append(chunks, chunk)
			}
			for total > s.ChunkOverlap || (total+n+joinLen(len(current)) > s.ChunkSize && total > 0) {
				total -= utf8.RuneCountInString(current[0]) + joinLen(len(current)-1)
				current = current[1:]
			}
		}
		current = append(current, piece)
		total += n + joinLen(len(current)-1)
	}

	if chunk := joinChunk(current, separator); chunk != "" {
		chunks = append(chunks, chunk)
	}

	return chunks
}

func joinChunk(pieces []string, separator string) string {
	return strings.TrimSpace(strings.Join(pieces, separator))
}

// splitKeepingSeparator splits text on separator, attaching each
// separator to the start of the piece that follows it. Empty pieces are
// dropped. An empty separator splits into single characters.
func splitKeepingSeparator(text, separator string) []string {
	var pieces []string
	if separator == "" {
		for _, r := range text {
			pieces = append(pieces, string(r))
		}
		return pieces
	}

	parts := strings.Split(text, separator)
	if parts[0] != "" {
		pieces = append(pieces, parts[0])
	}
	for _, p := range parts[1:] {
		pieces = append(pieces, separator+p)
	}
	return pieces
}
