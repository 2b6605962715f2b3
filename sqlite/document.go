package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/docubot/docubot"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docubot.DocumentService = (*DocumentService)(nil)

// DocumentService implements docubot.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// CreateDocument creates a new document. An empty ID gets a generated UUID;
// a zero FetchedAt gets the current time. The caller-computed ContentHash is
// stored as-is.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *docubot.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.FetchedAt.IsZero() {
		doc.FetchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, source_url, title, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.SourceURL, doc.Title, doc.Content, doc.ContentHash,
		doc.FetchedAt.UTC().Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
// Returns ENOTFOUND if the document does not exist.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*docubot.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, content, content_hash, fetched_at
		FROM documents
		WHERE id = ?
	`, id)

	doc, err := scanDocument(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, docubot.Errorf(docubot.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocumentsBySource retrieves documents whose source URL starts with the
// given prefix, most recently fetched first.
func (s *DocumentService) FindDocumentsBySource(ctx context.Context, sourceURL string) ([]*docubot.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_url, title, content, content_hash, fetched_at
		FROM documents
		WHERE source_url LIKE ? ESCAPE '\'
		ORDER BY fetched_at DESC, id ASC
	`, likePrefix(sourceURL))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*docubot.Document
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// DeleteDocumentsBySource removes all documents whose source URL starts with
// the given prefix and returns the number removed.
func (s *DocumentService) DeleteDocumentsBySource(ctx context.Context, sourceURL string) (int, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM documents WHERE source_url LIKE ? ESCAPE '\'
	`, likePrefix(sourceURL))
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// likePrefix builds a LIKE pattern matching rows that start with prefix.
// Wildcard characters in the prefix match literally.
func likePrefix(prefix string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(prefix) + "%"
}

// scanDocument scans one documents row, parsing the stored timestamp.
func scanDocument(scan func(dest ...any) error) (*docubot.Document, error) {
	var doc docubot.Document
	var fetchedAt string

	if err := scan(&doc.ID, &doc.SourceURL, &doc.Title, &doc.Content,
		&doc.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}
	doc.FetchedAt = t

	return &doc, nil
}
