package mock

import "github.com/fwojciec/siterag"

var _ siterag.URLFrontier = (*URLFrontier)(nil)

// URLFrontier is a mock implementation of siterag.URLFrontier.
type URLFrontier struct {
	PushFn         func(url string)
	PopFn          func() (string, bool)
	LenFn          func() int
	VisitFn        func(url string) bool
	VisitedFn      func(url string) bool
	VisitedCountFn func() int
}

func (f *URLFrontier) Push(url string) {
	f.PushFn(url)
}

func (f *URLFrontier) Pop() (string, bool) {
	return f.PopFn()
}

func (f *URLFrontier) Len() int {
	return f.LenFn()
}

func (f *URLFrontier) Visit(url string) bool {
	return f.VisitFn(url)
}

func (f *URLFrontier) Visited(url string) bool {
	return f.VisitedFn(url)
}

func (f *URLFrontier) VisitedCount() int {
	return f.VisitedCountFn()
}
