package siterag

// PageRecord is the extracted text of one crawled page.
// The URL is the page's identity within a crawl.
type PageRecord struct {
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Validate returns an error if the record contains invalid fields.
func (r *PageRecord) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if r.Content == "" {
		return Errorf(EINVALID, "page content required")
	}
	return nil
}

// CorpusWriter persists the records produced by a crawl.
type CorpusWriter interface {
	// Write replaces any previously written corpus with records and
	// returns the location it was written to.
	Write(records []*PageRecord) (string, error)
}

// CorpusReader loads a previously written corpus.
type CorpusReader interface {
	// Read returns the records in the order they were written.
	// Returns ENOTFOUND if no corpus has been written.
	Read() ([]*PageRecord, error)
}

// CorpusStore reads and writes a corpus at a single location.
type CorpusStore interface {
	CorpusWriter
	CorpusReader
}

