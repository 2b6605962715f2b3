// Package fs exports stored pages to disk as markdown files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/docubot/docubot"
)

// URLToPath converts a page URL to a relative file path.
// Example: https://example.com/docs/api/users becomes docs/api/users.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Root or trailing slash becomes index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	path = strings.TrimPrefix(path, "/")

	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	return path + ".md", nil
}

// FormatDocument formats a stored page with YAML frontmatter.
func FormatDocument(doc *docubot.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(doc.Title)
	b.WriteString("\nfetched: ")
	b.WriteString(doc.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Content)
	return b.String()
}

// ExportStore writes pages under a directory with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit,
// so a partial export never replaces a previous complete one.
type ExportStore struct {
	baseDir string
	name    string
}

// NewExportStore creates a new ExportStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewExportStore(baseDir, name string) *ExportStore {
	return &ExportStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *ExportStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *ExportStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes one page to the temporary directory.
func (s *ExportStore) Save(ctx context.Context, doc *docubot.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(doc.SourceURL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatDocument(doc)), 0644)
}

// Commit atomically replaces the final directory with the temporary one.
func (s *ExportStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the temporary directory.
func (s *ExportStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
