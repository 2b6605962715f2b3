package main

import (
	"fmt"

	"github.com/docubot/docubot"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return docubot.Errorf(docubot.EINVALID, "use --force to confirm deletion")
	}

	chunks, err := deps.Index.DeleteBySource(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docubot.ErrorMessage(err))
		return err
	}

	pages, err := deps.Documents.DeleteDocumentsBySource(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docubot.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %d chunks and %d stored pages for %q\n", chunks, pages, c.URL)
	return nil
}
