package siterag

// URLFrontier is the breadth-first crawl queue and visited set.
type URLFrontier interface {
	// Push appends a URL to the tail of the queue. Duplicates are allowed;
	// they are discarded when popped if already visited.
	Push(url string)

	// Pop removes and returns the URL at the head of the queue.
	// Returns false if the frontier is empty.
	Pop() (string, bool)

	// Len returns the number of URLs waiting in the queue.
	Len() int

	// Visit marks url as visited.
	// Returns false if the URL was already visited.
	Visit(url string) bool

	// Visited returns true if url has been marked visited.
	Visited(url string) bool

	// VisitedCount returns the number of distinct visited URLs.
	VisitedCount() int
}
