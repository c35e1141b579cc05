// Package fs provides file-based storage for crawled corpora.
package fs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/siterag"
)

// Default corpus location, relative to the working directory.
const (
	DefaultDir      = "Extracted_Data"
	DefaultFilename = "extracted_content.json"
)

// Ensure CorpusStore implements siterag.CorpusStore at compile time.
var _ siterag.CorpusStore = (*CorpusStore)(nil)

// CorpusStore stores a corpus as a JSON array of {"url", "content"}
// objects in a single file.
type CorpusStore struct {
	dir      string
	filename string
}

// NewCorpusStore creates a CorpusStore for dir/filename.
// Empty arguments fall back to DefaultDir and DefaultFilename.
func NewCorpusStore(dir, filename string) *CorpusStore {
	if dir == "" {
		dir = DefaultDir
	}
	if filename == "" {
		filename = DefaultFilename
	}
	return &CorpusStore{dir: dir, filename: filename}
}

// Path returns the location of the corpus file.
func (s *CorpusStore) Path() string {
	return filepath.Join(s.dir, s.filename)
}

// Write replaces the corpus file with records. The directory is created
// if missing and the file is swapped in with a rename, so readers never
// observe a partial corpus.
func (s *CorpusStore) Write(records []*siterag.PageRecord) (string, error) {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return "", err
		}
	}
	if records == nil {
		records = []*siterag.PageRecord{}
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create corpus directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, s.filename+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create corpus file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		tmp.Close()
		return "", fmt.Errorf("encode corpus: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write corpus: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", fmt.Errorf("write corpus: %w", err)
	}

	path := s.Path()
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("replace corpus: %w", err)
	}
	return path, nil
}

// Read loads the corpus in file order.
func (s *CorpusStore) Read() ([]*siterag.PageRecord, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, siterag.Errorf(siterag.ENOTFOUND, "corpus not found at %s", s.Path())
	} else if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	var records []*siterag.PageRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, siterag.Errorf(siterag.EINVALID, "malformed corpus %s: %v", s.Path(), err)
	}
	return records, nil
}
