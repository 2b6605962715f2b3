package crawl

import (
	"context"
	"log/slog"

	"github.com/docubot/docubot"
	"github.com/google/uuid"
)

// Indexer is the indexing pipeline: crawl, chunk, hand off to the sink.
// The sink is fire-and-forget per crawl; a sink rejection is recorded in the
// report's SinkErr but does not undo or interrupt the crawl itself.
//
// Documents is optional page persistence: when set, every successful page is
// stored as a docubot.Document before chunking. Persistence failures are
// logged and the page is still indexed.
type Indexer struct {
	Crawler   *Crawler
	Chunker   *docubot.Chunker
	Sink      docubot.Sink
	Documents docubot.DocumentService
	Logger    *slog.Logger
}

// RunCrawl crawls from job.SeedURL and indexes every successful page.
// The report is always returned, even under partial failure; the error is
// non-nil only for an invalid job or a cancelled context.
func (ix *Indexer) RunCrawl(ctx context.Context, job docubot.CrawlJob) (*docubot.CrawlReport, error) {
	results, err := ix.Crawler.Run(ctx, job)
	if results == nil && err != nil {
		return nil, err
	}
	return ix.index(ctx, results), err
}

// RunURLList fetches and indexes a fixed list of URLs without traversal.
// The job supplies pacing and budgets.
func (ix *Indexer) RunURLList(ctx context.Context, job docubot.CrawlJob, urls []string) (*docubot.CrawlReport, error) {
	results, err := ix.Crawler.RunList(ctx, job, urls)
	if results == nil && err != nil {
		return nil, err
	}
	return ix.index(ctx, results), err
}

// RunSingleURL fetches and indexes exactly one page without traversal and
// returns that page's tagged outcome. A sink rejection is logged rather
// than returned; the page was still fetched.
func (ix *Indexer) RunSingleURL(ctx context.Context, url string) (*docubot.PageResult, error) {
	job := docubot.CrawlJob{SeedURL: url, MaxPages: 1}
	results, err := ix.Crawler.RunList(ctx, job, []string{url})
	if len(results) == 0 {
		return nil, err
	}

	report := ix.index(ctx, results)
	if report.SinkErr != nil && ix.Logger != nil {
		ix.Logger.Warn("sink rejected chunks",
			slog.String("url", url),
			slog.String("error", report.SinkErr.Error()))
	}
	return results[0], err
}

// index turns crawl results into chunks and feeds them to the sink, in
// discovery order. After the first sink failure no further batches are sent;
// remaining pages count as crawled but not indexed.
func (ix *Indexer) index(ctx context.Context, results []*docubot.PageResult) *docubot.CrawlReport {
	report := &docubot.CrawlReport{}

	for _, page := range results {
		if !page.Success {
			report.PagesFailed++
			continue
		}
		report.PagesCrawled++

		ix.persist(ctx, page)

		chunks := ix.Chunker.Chunk(page.Content)
		for _, chunk := range chunks {
			chunk.ID = uuid.NewString()
			chunk.FetchedAt = page.FetchedAt
		}
		if len(chunks) == 0 || report.SinkErr != nil {
			continue
		}

		accepted, err := ix.Sink.AddChunks(ctx, chunks)
		if err != nil {
			report.SinkErr = err
			continue
		}
		report.TotalChunks += accepted
		report.PagesIndexed++
		report.IndexedPages = append(report.IndexedPages, page.URL)
	}

	return report
}

// persist stores the page as a document when a document store is configured.
func (ix *Indexer) persist(ctx context.Context, page *docubot.PageResult) {
	if ix.Documents == nil {
		return
	}

	body := page.Content.MarkdownText
	if body == "" {
		body = page.Content.PlainText
	}

	doc := &docubot.Document{
		ID:          uuid.NewString(),
		SourceURL:   page.URL,
		Title:       page.Content.Title,
		Content:     body,
		ContentHash: ContentHash(body),
		FetchedAt:   page.FetchedAt,
	}
	if err := ix.Documents.CreateDocument(ctx, doc); err != nil && ix.Logger != nil {
		ix.Logger.Warn("page persistence failed",
			slog.String("url", page.URL),
			slog.String("error", err.Error()))
	}
}
