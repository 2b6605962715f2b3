package docubot

import (
	"context"
	"time"
)

// Heading is a typed h1-h6 element.
type Heading struct {
	Level    int    `json:"level"`
	Text     string `json:"text"`
	Markdown string `json:"markdown"`
}

// Paragraph is a typed paragraph element. Paragraphs shorter than 20
// characters are excluded from structured extraction (still present in
// the page's plain text).
type Paragraph struct {
	Text     string `json:"text"`
	Markdown string `json:"markdown"`
}

// ListBlock is a typed ul/ol element with its flattened item texts.
type ListBlock struct {
	Ordered  bool     `json:"ordered"`
	Items    []string `json:"items"`
	Markdown string   `json:"markdown"`
}

// Table is a typed table element. HeaderRow holds row 0; DataRows hold the
// remaining rows in document order.
type Table struct {
	HeaderRow []string   `json:"headerRow"`
	DataRows  [][]string `json:"dataRows"`
	Markdown  string     `json:"markdown"`
}

// CodeBlock is a typed pre/code element with its inferred language.
type CodeBlock struct {
	Language string `json:"language"`
	Content  string `json:"content"`
	Markdown string `json:"markdown"`
}

// Link is a typed anchor element with its resolved URL.
type Link struct {
	URL      string `json:"url"`
	Text     string `json:"text"`
	Title    string `json:"title,omitempty"`
	Markdown string `json:"markdown"`
}

// Image is a typed img element.
type Image struct {
	Src      string `json:"src"`
	Alt      string `json:"alt"`
	Title    string `json:"title,omitempty"`
	Markdown string `json:"markdown"`
}

// StructuredContent holds the typed elements of a page, each slice in
// document order, independent of the flattened markdown string.
type StructuredContent struct {
	Headings   []Heading   `json:"headings"`
	Paragraphs []Paragraph `json:"paragraphs"`
	Lists      []ListBlock `json:"lists"`
	Tables     []Table     `json:"tables"`
	CodeBlocks []CodeBlock `json:"codeBlocks"`
	Links      []Link      `json:"links"`
	Images     []Image     `json:"images"`
}

// PageContent is the extracted representation of one fetched page.
type PageContent struct {
	URL          string            `json:"url"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	PlainText    string            `json:"plainText"`
	MarkdownText string            `json:"markdownText"`
	Structured   StructuredContent `json:"structured"`
}

// PageResult is the tagged outcome of one attempted URL. Content and Err are
// never both populated.
type PageResult struct {
	URL       string       `json:"url"`
	Success   bool         `json:"success"`
	Content   *PageContent `json:"content,omitempty"`
	Err       error        `json:"-"`
	FetchedAt time.Time    `json:"fetchedAt"`
}

// Document represents a crawled page persisted to storage.
type Document struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// DocumentService represents a service for managing persisted pages.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocumentsBySource retrieves documents for a source URL prefix,
	// most recently fetched first.
	FindDocumentsBySource(ctx context.Context, sourceURL string) ([]*Document, error)

	// DeleteDocumentsBySource removes all documents for a source URL prefix
	// and returns the number removed.
	DeleteDocumentsBySource(ctx context.Context, sourceURL string) (int, error)
}
