package main

import (
	"fmt"
	"path/filepath"

	"github.com/docubot/docubot"
	"github.com/docubot/docubot/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocumentsBySource(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docubot.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stdout, "No pages stored for %q.\n", c.URL)
		return nil
	}

	store := fs.NewExportStore(c.Dir, c.Name)
	for _, d := range docs {
		if err := store.Save(deps.Ctx, d); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", docubot.ErrorMessage(err))
			return err
		}
	}

	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docubot.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d pages to %s\n", len(docs), filepath.Join(c.Dir, c.Name))
	return nil
}
