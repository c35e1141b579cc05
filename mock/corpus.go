package mock

import "github.com/fwojciec/siterag"

var _ siterag.CorpusStore = (*CorpusStore)(nil)

// CorpusStore is a mock implementation of siterag.CorpusStore.
type CorpusStore struct {
	WriteFn func(records []*siterag.PageRecord) (string, error)
	ReadFn  func() ([]*siterag.PageRecord, error)
}

func (s *CorpusStore) Write(records []*siterag.PageRecord) (string, error) {
	return s.WriteFn(records)
}

func (s *CorpusStore) Read() ([]*siterag.PageRecord, error) {
	return s.ReadFn()
}
