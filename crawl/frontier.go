package crawl

import (
	"strings"
	"sync"

	"github.com/docubot/docubot"
	"github.com/docubot/docubot/bloom"
)

// Frontier sizing for Bloom filter deduplication.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// Compile-time interface verification.
var _ docubot.Frontier = (*Frontier)(nil)

// Frontier is an in-memory depth-batched BFS frontier. URLs enqueued between
// two NextBatch calls form the next depth level and come back out in FIFO
// order. Deduplication is exact: a Bloom filter answers the common
// never-seen case cheaply and a map confirms positives, so a URL is accepted
// at most once for the lifetime of the frontier.
//
// URL fragments are stripped before deduplication, so URLs differing only by
// fragment are duplicates.
//
// Frontier is safe for concurrent use, though the orchestrator funnels all
// mutation through its single-threaded between-round merge.
type Frontier struct {
	mu      sync.Mutex
	filter  *bloom.Filter
	visited map[string]struct{}
	pending []string
	depth   int
}

// NewFrontier creates a Frontier seeded with the given URLs at depth 0.
func NewFrontier(seedURLs ...string) *Frontier {
	f := &Frontier{
		filter:  bloom.NewFilter(frontierExpectedURLs, frontierFalsePositiveRate),
		visited: make(map[string]struct{}),
		depth:   -1,
	}
	for _, u := range seedURLs {
		f.Enqueue(u)
	}
	return f
}

// NextBatch returns every URL queued at the next depth level, in FIFO order,
// and advances the depth counter. Returns nil when the frontier is exhausted.
func (f *Frontier) NextBatch() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.pending) == 0 {
		return nil
	}
	batch := f.pending
	f.pending = nil
	f.depth++
	return batch
}

// Enqueue adds a URL at the pending depth level.
// Returns false if the URL has already been seen.
func (f *Frontier) Enqueue(rawURL string) bool {
	url := canonicalURL(rawURL)
	if url == "" {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen(url) {
		return false
	}
	f.filter.Add(url)
	f.visited[url] = struct{}{}
	f.pending = append(f.pending, url)
	return true
}

// Seen reports whether the URL has been enqueued before.
func (f *Frontier) Seen(rawURL string) bool {
	url := canonicalURL(rawURL)

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen(url)
}

// seen expects f.mu to be held.
func (f *Frontier) seen(url string) bool {
	// Negative Bloom answers are definitive; positives need the exact set.
	if !f.filter.Test(url) {
		return false
	}
	_, ok := f.visited[url]
	return ok
}

// Depth returns the depth of the batch most recently returned by NextBatch,
// starting at 0 for the seed batch. Returns -1 before the first batch.
func (f *Frontier) Depth() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.depth
}

// canonicalURL strips the fragment.
func canonicalURL(rawURL string) string {
	if idx := strings.Index(rawURL, "#"); idx != -1 {
		rawURL = rawURL[:idx]
	}
	return rawURL
}
