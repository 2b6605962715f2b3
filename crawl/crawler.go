// Package crawl provides crawl orchestration: the BFS frontier, the bounded
// worker pool that fetches and extracts pages, and the indexing pipeline
// that turns crawled pages into chunks for a downstream sink.
package crawl

import (
	"context"
	"time"

	"github.com/docubot/docubot"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Crawler walks a site breadth-first from a seed URL, fetching and
// extracting pages with a bounded worker pool. A page failure never fails
// the crawl: it is recorded in that page's PageResult and traversal
// continues.
type Crawler struct {
	Fetcher   docubot.Fetcher
	Extractor docubot.Extractor
}

// fetchOutcome is one worker's result: the page plus the outbound links
// discovered on it. Links are merged into the frontier by the coordinator
// between rounds, never by workers.
type fetchOutcome struct {
	result *docubot.PageResult
	links  []string
}

// Run crawls breadth-first from job.SeedURL and returns one PageResult per
// attempted URL, in discovery order. Successful results beyond job.MaxPages
// are truncated deterministically; failures are always kept.
//
// Cancelling the context stops new fetches from starting; fetches already
// in flight are drained (bounded by the fetcher's own timeout) and their
// results included. The returned error is non-nil only for an invalid job
// or a cancelled context, never for per-page failures.
func (c *Crawler) Run(ctx context.Context, job docubot.CrawlJob) ([]*docubot.PageResult, error) {
	return c.run(ctx, job, []string{job.SeedURL}, true)
}

// RunList fetches a fixed list of URLs without link traversal. The job
// supplies pacing and budgets; the listed URLs bypass the link policy the
// same way a seed does.
func (c *Crawler) RunList(ctx context.Context, job docubot.CrawlJob, urls []string) ([]*docubot.PageResult, error) {
	return c.run(ctx, job, urls, false)
}

func (c *Crawler) run(ctx context.Context, job docubot.CrawlJob, seeds []string, traverse bool) ([]*docubot.PageResult, error) {
	job = job.WithDefaults()
	if err := job.Validate(); err != nil {
		return nil, err
	}
	policy, err := docubot.NewLinkPolicy(job)
	if err != nil {
		return nil, err
	}

	frontier := NewFrontier(seeds...)
	limiter := NewLimiter(job.RequestDelay)
	sem := semaphore.NewWeighted(int64(job.Concurrency))

	var results []*docubot.PageResult
	successes := 0

	for successes < job.MaxPages {
		batch := frontier.NextBatch()
		if len(batch) == 0 {
			break
		}

		outcomes := c.runRound(ctx, batch, sem, limiter)

		// Single-writer merge: results in discovery order, newly found
		// links into the frontier for the next depth level.
		for _, outcome := range outcomes {
			if outcome.result == nil {
				continue // never started, cancelled before dispatch
			}
			results = append(results, outcome.result)
			if outcome.result.Success {
				successes++
			}
			if !traverse || frontier.Depth() >= job.MaxDepth {
				continue
			}
			for _, link := range outcome.links {
				if policy.ShouldCrawl(link) {
					frontier.Enqueue(link)
				}
			}
		}

		if ctx.Err() != nil {
			return truncateSuccesses(results, job.MaxPages), ctx.Err()
		}
	}

	return truncateSuccesses(results, job.MaxPages), nil
}

// runRound fetches one depth level. The semaphore bounds concurrent fetches
// globally across rounds; the errgroup scopes this round's workers.
func (c *Crawler) runRound(ctx context.Context, batch []string, sem *semaphore.Weighted, limiter *Limiter) []fetchOutcome {
	outcomes := make([]fetchOutcome, len(batch))

	g, gctx := errgroup.WithContext(ctx)
	for i, url := range batch {
		g.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)
			if err := limiter.Wait(gctx); err != nil {
				return err
			}
			outcomes[i] = c.fetchOne(ctx, url)
			return nil
		})
	}
	// The only worker errors are context cancellations; per-page failures
	// are carried inside the outcomes.
	_ = g.Wait()

	return outcomes
}

// fetchOne fetches and extracts a single page. The fetch itself runs
// detached from the crawl context so an in-flight request is drained rather
// than aborted on cancellation; the fetcher's timeout bounds the drain.
func (c *Crawler) fetchOne(ctx context.Context, url string) fetchOutcome {
	fetchedAt := time.Now()

	html, err := c.Fetcher.Fetch(context.WithoutCancel(ctx), url)
	if err != nil {
		return fetchOutcome{result: &docubot.PageResult{
			URL:       url,
			Err:       err,
			FetchedAt: fetchedAt,
		}}
	}

	content, err := c.Extractor.Extract(html, url)
	if err != nil {
		return fetchOutcome{result: &docubot.PageResult{
			URL:       url,
			Err:       err,
			FetchedAt: fetchedAt,
		}}
	}

	links := make([]string, 0, len(content.Structured.Links))
	for _, link := range content.Structured.Links {
		links = append(links, link.URL)
	}

	return fetchOutcome{
		result: &docubot.PageResult{
			URL:       url,
			Success:   true,
			Content:   content,
			FetchedAt: fetchedAt,
		},
		links: links,
	}
}

// truncateSuccesses drops successful results beyond the maxPages budget,
// preserving discovery order. Failures are kept for reporting.
func truncateSuccesses(results []*docubot.PageResult, maxPages int) []*docubot.PageResult {
	kept := results[:0:0]
	successes := 0
	for _, r := range results {
		if r.Success {
			if successes >= maxPages {
				continue
			}
			successes++
		}
		kept = append(kept, r)
	}
	return kept
}
