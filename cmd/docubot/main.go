package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/docubot/docubot"
	"github.com/docubot/docubot/bleve"
	"github.com/docubot/docubot/crawl"
	"github.com/docubot/docubot/goquery"
	"github.com/docubot/docubot/htmltomarkdown"
	docubothttp "github.com/docubot/docubot/http"
	docubotslog "github.com/docubot/docubot/slog"
	"github.com/docubot/docubot/sqlite"
	"github.com/docubot/docubot/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database and index paths. Set before calling Run().
	DBPath    string
	IndexPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Bleve chunk index.
	Index *bleve.Index

	// Services for end-to-end testing.
	DocumentService docubot.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:    defaultDBPath(),
		IndexPath: defaultIndexPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Index != nil {
		if err := m.Index.Close(); err != nil {
			return err
		}
		m.Index = nil
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docubot"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docubot --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCUBOT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Open chunk index
	m.Index, err = bleve.Open(m.IndexPath)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCUBOT_INDEX to use a different index path\n")
		return fmt.Errorf("failed to open index at %q: %w", m.IndexPath, err)
	}

	// Wire core services into dependencies
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	deps.DB = m.DB
	deps.Documents = m.DocumentService
	deps.Index = m.Index

	// Wire the crawl pipeline only for commands that fetch pages
	if cmd == "crawl" || cmd == "ingest" {
		logger := slog.New(slog.NewTextHandler(stderr, nil))

		fetcher := docubotslog.NewLoggingFetcher(docubothttp.NewFetcher(), logger)
		defer fetcher.Close()

		extractor := goquery.NewExtractor(htmltomarkdown.NewConverter(),
			goquery.WithFallback(trafilatura.NewSource()),
			goquery.WithOptions(extractOptionsFromEnv()),
		)

		deps.Sitemaps = docubotslog.NewLoggingSitemapService(docubothttp.NewSitemapService(nil), logger)
		deps.Indexer = &crawl.Indexer{
			Crawler:   &crawl.Crawler{Fetcher: fetcher, Extractor: extractor},
			Chunker:   &docubot.Chunker{},
			Sink:      docubotslog.NewLoggingSink(m.Index, logger),
			Documents: m.DocumentService,
			Logger:    logger,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("DOCUBOT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docubot.db"
	}
	dir := filepath.Join(home, ".docubot")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docubot.db")
}

func defaultIndexPath() string {
	if path := os.Getenv("DOCUBOT_INDEX"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "index.bleve"
	}
	dir := filepath.Join(home, ".docubot")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "index.bleve")
}
