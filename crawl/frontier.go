package crawl

import (
	"sync"

	"github.com/fwojciec/siterag"
	"github.com/fwojciec/siterag/bloom"
)

// Compile-time interface verification.
var _ siterag.URLFrontier = (*Frontier)(nil)

// DefaultFalsePositiveRate is the Bloom filter false positive rate used
// by the crawler's visited set.
const DefaultFalsePositiveRate = 0.01

// Frontier is an in-memory FIFO URL queue with a visited set.
// URLs are stored in their NormalizeURL form, so URLs differing only by
// fragment or scheme/host case are the same entry.
// Queued duplicates are kept; callers discard them when popped.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu      sync.Mutex
	queue   []string
	visited *bloom.VisitedSet
}

// NewFrontier creates a new Frontier whose visited set is sized for n
// expected URLs with the given false positive rate.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		visited: bloom.NewVisitedSet(n, fpRate),
	}
}

// Push appends url to the tail of the queue.
func (f *Frontier) Push(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = append(f.queue, NormalizeURL(url))
}

// Pop removes and returns the URL at the head of the queue.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue[0] = ""
	f.queue = f.queue[1:]
	return url, true
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Visit marks url as visited.
// Returns false if it was already visited.
func (f *Frontier) Visit(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visited.Add(NormalizeURL(url))
}

// Visited returns true if url has been visited.
func (f *Frontier) Visited(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visited.Contains(NormalizeURL(url))
}

// VisitedCount returns the number of distinct visited URLs.
func (f *Frontier) VisitedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visited.Len()
}
