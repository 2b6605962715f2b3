package docubot

import (
	"context"
	"time"
)

// ContentType tags a chunk with the kind of content it was cut from.
type ContentType string

// Chunk content types.
const (
	ContentTypeMain      ContentType = "main"
	ContentTypeHeading   ContentType = "heading"
	ContentTypeParagraph ContentType = "paragraph"
	ContentTypeList      ContentType = "list"
	ContentTypeTable     ContentType = "table"
	ContentTypeCode      ContentType = "code"
)

// Chunk is a bounded span of text ready for embedding and retrieval.
// ChunkIndex increases monotonically per (SourceURL, ContentType) group.
type Chunk struct {
	ID          string      `json:"id"`
	Text        string      `json:"text"`
	ContentType ContentType `json:"contentType"`
	SourceURL   string      `json:"sourceUrl"`
	Title       string      `json:"title,omitempty"`
	ChunkIndex  int         `json:"chunkIndex"`
	SizeBytes   int         `json:"sizeBytes"`
	FetchedAt   time.Time   `json:"fetchedAt,omitempty"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.SourceURL == "" {
		return Errorf(EINVALID, "chunk source URL required")
	}
	if c.Text == "" {
		return Errorf(EINVALID, "chunk text required")
	}
	return nil
}

// Sink is the outbound contract to the index collaborator. The pipeline
// treats it as fire-and-forget per crawl; a failure is surfaced in the crawl
// report but does not roll back already-fetched content.
type Sink interface {
	// AddChunks indexes a batch and returns the number of chunks accepted.
	AddChunks(ctx context.Context, batch []*Chunk) (accepted int, err error)
}

// ChunkMatch is a search hit over indexed chunks.
type ChunkMatch struct {
	Chunk *Chunk  `json:"chunk"`
	Score float64 `json:"score"`
}

// IndexStats summarizes the chunk index.
type IndexStats struct {
	TotalChunks uint64   `json:"totalChunks"`
	Sources     []string `json:"sources"`
}

// ChunkIndex is the full index surface: the Sink contract plus search and
// maintenance operations.
type ChunkIndex interface {
	Sink

	// Search returns chunks matching the query, best first.
	Search(ctx context.Context, query string, limit int) ([]ChunkMatch, error)

	// Stats returns chunk counts and the distinct source URLs indexed.
	Stats(ctx context.Context) (*IndexStats, error)

	// DeleteBySource removes all chunks for a source URL and returns the
	// number removed.
	DeleteBySource(ctx context.Context, sourceURL string) (int, error)

	// Close releases index resources.
	Close() error
}

// CrawlReport is the structured result of one indexing-pipeline invocation.
// It is always returned, even under partial failure; per-page failures never
// surface as a bare error.
type CrawlReport struct {
	PagesCrawled int      `json:"pagesCrawled"`
	PagesFailed  int      `json:"pagesFailed"`
	PagesIndexed int      `json:"pagesIndexed"`
	TotalChunks  int      `json:"totalChunks"`
	IndexedPages []string `json:"indexedPages"`

	// SinkErr records a downstream index rejection. Pages were still
	// crawled; indexing failed.
	SinkErr error `json:"-"`
}
