package main

import (
	"context"
	"io"
	"time"

	"github.com/docubot/docubot"
	"github.com/docubot/docubot/crawl"
	"github.com/docubot/docubot/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Documents docubot.DocumentService
	Sitemaps  docubot.SitemapService
	Index     docubot.ChunkIndex
	Indexer   *crawl.Indexer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl  CrawlCmd  `cmd:"" help:"Crawl a site breadth-first and index its pages"`
	Ingest IngestCmd `cmd:"" help:"Index pages discovered from a site's sitemap"`
	Search SearchCmd `cmd:"" help:"Search indexed chunks"`
	Pages  PagesCmd  `cmd:"" help:"List stored pages for a source URL prefix"`
	Stats  StatsCmd  `cmd:"" help:"Show chunk index statistics"`
	Export ExportCmd `cmd:"" help:"Export stored pages as markdown files"`
	Delete DeleteCmd `cmd:"" help:"Delete indexed content for a source URL"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL         string        `arg:"" help:"Seed URL to crawl from"`
	MaxPages    int           `short:"n" help:"Maximum pages to index"`
	MaxDepth    int           `short:"d" help:"Maximum link depth from the seed"`
	Concurrency int           `short:"c" help:"Concurrent fetch limit"`
	Delay       time.Duration `help:"Minimum delay between request starts"`
	AllDomains  bool          `help:"Follow links to other domains"`
	Include     []string      `short:"i" name:"include" help:"Only follow URLs containing a pattern (repeatable)"`
	Exclude     []string      `short:"x" name:"exclude" help:"Skip URLs containing a pattern (repeatable)"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	URL         string        `arg:"" help:"Base URL whose sitemap to ingest"`
	Preview     bool          `short:"p" help:"Show discovered URLs without indexing"`
	Filter      []string      `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
	Concurrency int           `short:"c" help:"Concurrent fetch limit"`
	Delay       time.Duration `help:"Minimum delay between request starts"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Full-text query"`
	Limit int    `short:"l" default:"10" help:"Maximum results to return"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	URL  string `arg:"" help:"Source URL prefix"`
	Full bool   `help:"Show full page content"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	URL  string `arg:"" help:"Source URL prefix to export"`
	Dir  string `short:"o" default:"." help:"Parent directory for the export"`
	Name string `default:"docs" help:"Output directory name"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	URL   string `arg:"" help:"Source URL to delete"`
	Force bool   `help:"Confirm deletion"`
}
