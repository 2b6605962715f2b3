package docubot

// Frontier owns the mutable traversal state of one crawl job: the visited
// set, the pending queue, and the current depth level. A URL enters the
// visited set at enqueue time, not fetch time, so concurrent discoveries of
// the same URL cannot both enqueue it. All mutation funnels through the
// orchestrator's between-round merge step (single-writer discipline).
type Frontier interface {
	// NextBatch returns every URL queued at the next depth level, in FIFO
	// order, and advances the depth counter. Returns nil when the frontier
	// is exhausted.
	NextBatch() []string

	// Enqueue adds a URL at the pending depth level.
	// Returns false if the URL has already been seen.
	Enqueue(url string) bool

	// Seen reports whether the URL has been enqueued before.
	Seen(url string) bool

	// Depth returns the depth of the batch most recently returned by
	// NextBatch, starting at 0 for the seed batch.
	Depth() int
}
