package main

import (
	"fmt"
	"time"

	"github.com/docubot/docubot"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocumentsBySource(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docubot.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stdout, "No pages stored for %q.\n", c.URL)
		return nil
	}

	for _, d := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", d.ID, d.FetchedAt.Format(time.RFC3339), d.SourceURL)
		if c.Full {
			fmt.Fprintf(deps.Stdout, "# %s\n\n%s\n\n", d.Title, d.Content)
		}
	}

	return nil
}
