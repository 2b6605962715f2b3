package main

import (
	"fmt"

	"github.com/docubot/docubot"
)

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	filter, err := docubot.ParseURLFilter(c.Filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docubot.ErrorMessage(err))
		return err
	}

	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docubot.ErrorMessage(err))
		return err
	}

	if c.Preview {
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No sitemap URLs found. Use 'docubot crawl' to walk the site instead.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d URLs\n", len(urls))

	job := crawlJobFromEnv(c.URL)
	job.MaxPages = len(urls)
	if c.Concurrency > 0 {
		job.Concurrency = c.Concurrency
	}
	if c.Delay > 0 {
		job.RequestDelay = c.Delay
	}

	report, err := deps.Indexer.RunURLList(deps.Ctx, job, urls)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docubot.ErrorMessage(err))
		return err
	}

	printReport(deps, report)
	return nil
}
