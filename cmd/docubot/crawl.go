package main

import (
	"fmt"

	"github.com/docubot/docubot"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	job := crawlJobFromEnv(c.URL)
	if c.MaxPages > 0 {
		job.MaxPages = c.MaxPages
	}
	if c.MaxDepth > 0 {
		job.MaxDepth = c.MaxDepth
	}
	if c.Concurrency > 0 {
		job.Concurrency = c.Concurrency
	}
	if c.Delay > 0 {
		job.RequestDelay = c.Delay
	}
	if c.AllDomains {
		job.SameDomainOnly = false
	}
	if len(c.Include) > 0 {
		job.IncludePatterns = append(job.IncludePatterns, c.Include...)
	}
	if len(c.Exclude) > 0 {
		job.ExcludePatterns = append(docubot.DefaultExcludePatterns, c.Exclude...)
	}

	report, err := deps.Indexer.RunCrawl(deps.Ctx, job)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docubot.ErrorMessage(err))
		return err
	}

	printReport(deps, report)
	return nil
}

// printReport writes the crawl summary shared by crawl and ingest.
func printReport(deps *Dependencies, report *docubot.CrawlReport) {
	fmt.Fprintf(deps.Stdout, "Crawled %d pages (%d failed), indexed %d pages, %d chunks\n",
		report.PagesCrawled, report.PagesFailed, report.PagesIndexed, report.TotalChunks)
	if report.SinkErr != nil {
		fmt.Fprintf(deps.Stderr, "warning: index rejected chunks: %v\n", report.SinkErr)
	}
}
