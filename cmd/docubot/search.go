package main

import (
	"fmt"
	"strings"

	"github.com/docubot/docubot"
)

// snippetLength caps the chunk text shown per search hit, in runes.
const snippetLength = 200

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	matches, err := deps.Index.Search(deps.Ctx, c.Query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docubot.ErrorMessage(err))
		return err
	}

	if len(matches) == 0 {
		fmt.Fprintln(deps.Stdout, "No matches found.")
		return nil
	}

	for i, m := range matches {
		fmt.Fprintf(deps.Stdout, "%2d. %.2f  %s  [%s]\n", i+1, m.Score, m.Chunk.SourceURL, m.Chunk.ContentType)
		fmt.Fprintf(deps.Stdout, "    %s\n", snippet(m.Chunk.Text))
	}

	return nil
}

// snippet collapses whitespace and truncates text for display.
func snippet(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= snippetLength {
		return text
	}
	return string(runes[:snippetLength]) + "..."
}
