package main

import (
	"fmt"

	"github.com/docubot/docubot"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	stats, err := deps.Index.Stats(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docubot.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%d chunks across %d sources\n", stats.TotalChunks, len(stats.Sources))
	for _, s := range stats.Sources {
		fmt.Fprintf(deps.Stdout, "  %s\n", s)
	}

	return nil
}
