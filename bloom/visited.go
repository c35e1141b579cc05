// Package bloom provides URL deduplication backed by Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// VisitedSet records visited URLs. A Bloom filter answers most negative
// lookups; the exact set is consulted only on a filter hit, so false
// positives never cause a URL to be skipped.
// It is not safe for concurrent use.
type VisitedSet struct {
	filter *bloom.BloomFilter
	urls   map[string]struct{}
}

// NewVisitedSet creates a VisitedSet sized for n expected URLs
// with the given Bloom filter false positive rate.
func NewVisitedSet(n uint, fpRate float64) *VisitedSet {
	if n == 0 {
		n = 1
	}
	return &VisitedSet{
		filter: bloom.NewWithEstimates(n, fpRate),
		urls:   make(map[string]struct{}, n),
	}
}

// Add marks url as visited.
// Returns false if it was already visited.
func (s *VisitedSet) Add(url string) bool {
	if s.Contains(url) {
		return false
	}
	s.filter.AddString(url)
	s.urls[url] = struct{}{}
	return true
}

// Contains returns true if url has been visited.
func (s *VisitedSet) Contains(url string) bool {
	if !s.filter.TestString(url) {
		return false
	}
	_, ok := s.urls[url]
	return ok
}

// Len returns the number of distinct visited URLs.
func (s *VisitedSet) Len() int {
	return len(s.urls)
}
