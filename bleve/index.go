// Package bleve implements the chunk index on a bleve full-text index.
// It is the reference docubot.Sink: chunks go in as field-mapped documents
// and come back out through match-query search.
package bleve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/docubot/docubot"
)

// Compile-time interface verification.
var _ docubot.ChunkIndex = (*Index)(nil)

// searchPageSize bounds how many hits are pulled per page when walking the
// whole index (stats, delete-by-source).
const searchPageSize = 1000

// Index stores chunks in a bleve index.
type Index struct {
	index bleve.Index
}

// Open opens the index at path, creating it if it does not exist.
func Open(path string) (*Index, error) {
	index, err := bleve.Open(path)
	if errors.Is(err, bleve.ErrorIndexPathDoesNotExist) {
		index, err = bleve.New(path, indexMapping())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open chunk index: %w", err)
	}
	return &Index{index: index}, nil
}

// NewMemOnly creates an in-memory index, used in tests and one-off runs.
func NewMemOnly() (*Index, error) {
	index, err := bleve.NewMemOnly(indexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create chunk index: %w", err)
	}
	return &Index{index: index}, nil
}

// indexMapping maps chunk fields: free text analyzed, identifiers kept as
// keywords so exact matches (delete-by-source) work.
func indexMapping() mapping.IndexMapping {
	chunk := bleve.NewDocumentMapping()

	chunk.AddFieldMappingsAt("sourceUrl", bleve.NewKeywordFieldMapping())
	chunk.AddFieldMappingsAt("contentType", bleve.NewKeywordFieldMapping())
	chunk.AddFieldMappingsAt("fetchedAt", bleve.NewKeywordFieldMapping())
	chunk.AddFieldMappingsAt("text", bleve.NewTextFieldMapping())
	chunk.AddFieldMappingsAt("title", bleve.NewTextFieldMapping())
	chunk.AddFieldMappingsAt("chunkIndex", bleve.NewNumericFieldMapping())
	chunk.AddFieldMappingsAt("sizeBytes", bleve.NewNumericFieldMapping())

	m := bleve.NewIndexMapping()
	m.DefaultMapping = chunk
	return m
}

// AddChunks indexes a batch of chunks and returns the number accepted.
// The whole batch is validated up front; an invalid chunk rejects the batch.
func (ix *Index) AddChunks(ctx context.Context, batch []*docubot.Chunk) (int, error) {
	for _, chunk := range batch {
		if err := chunk.Validate(); err != nil {
			return 0, err
		}
		if chunk.ID == "" {
			return 0, docubot.Errorf(docubot.EINVALID, "chunk ID required")
		}
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	b := ix.index.NewBatch()
	for _, chunk := range batch {
		if err := b.Index(chunk.ID, chunkDoc(chunk)); err != nil {
			return 0, fmt.Errorf("failed to batch chunk %s: %w", chunk.ID, err)
		}
	}
	if err := ix.index.Batch(b); err != nil {
		return 0, fmt.Errorf("failed to index batch: %w", err)
	}
	return len(batch), nil
}

// chunkDoc flattens a chunk into the field names the mapping knows.
func chunkDoc(c *docubot.Chunk) map[string]any {
	return map[string]any{
		"text":        c.Text,
		"contentType": string(c.ContentType),
		"sourceUrl":   c.SourceURL,
		"title":       c.Title,
		"chunkIndex":  c.ChunkIndex,
		"sizeBytes":   c.SizeBytes,
		"fetchedAt":   c.FetchedAt.UTC().Format(time.RFC3339),
	}
}

// Search returns chunks matching the query, best first.
func (ix *Index) Search(ctx context.Context, query string, limit int) ([]docubot.ChunkMatch, error) {
	if limit <= 0 {
		limit = 10
	}

	req := bleve.NewSearchRequest(bleve.NewMatchQuery(query))
	req.Size = limit
	req.Fields = []string{"*"}

	result, err := ix.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	matches := make([]docubot.ChunkMatch, 0, len(result.Hits))
	for _, hit := range result.Hits {
		matches = append(matches, docubot.ChunkMatch{
			Chunk: chunkFromFields(hit.ID, hit.Fields),
			Score: hit.Score,
		})
	}
	return matches, nil
}

// chunkFromFields rebuilds a chunk from stored hit fields.
func chunkFromFields(id string, fields map[string]any) *docubot.Chunk {
	chunk := &docubot.Chunk{ID: id}
	if v, ok := fields["text"].(string); ok {
		chunk.Text = v
	}
	if v, ok := fields["contentType"].(string); ok {
		chunk.ContentType = docubot.ContentType(v)
	}
	if v, ok := fields["sourceUrl"].(string); ok {
		chunk.SourceURL = v
	}
	if v, ok := fields["title"].(string); ok {
		chunk.Title = v
	}
	if v, ok := fields["chunkIndex"].(float64); ok {
		chunk.ChunkIndex = int(v)
	}
	if v, ok := fields["sizeBytes"].(float64); ok {
		chunk.SizeBytes = int(v)
	}
	if v, ok := fields["fetchedAt"].(string); ok {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			chunk.FetchedAt = t
		}
	}
	return chunk
}

// Stats returns the chunk count and the distinct source URLs indexed.
func (ix *Index) Stats(ctx context.Context) (*docubot.IndexStats, error) {
	total, err := ix.index.DocCount()
	if err != nil {
		return nil, fmt.Errorf("doc count failed: %w", err)
	}

	seen := make(map[string]bool)
	var sources []string
	err = ix.walkHits(ctx, bleve.NewMatchAllQuery(), []string{"sourceUrl"}, func(id string, fields map[string]any) error {
		if src, ok := fields["sourceUrl"].(string); ok && !seen[src] {
			seen[src] = true
			sources = append(sources, src)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &docubot.IndexStats{TotalChunks: total, Sources: sources}, nil
}

// DeleteBySource removes all chunks for an exact source URL and returns the
// number removed.
func (ix *Index) DeleteBySource(ctx context.Context, sourceURL string) (int, error) {
	query := bleve.NewTermQuery(sourceURL)
	query.SetField("sourceUrl")

	var ids []string
	err := ix.walkHits(ctx, query, nil, func(id string, _ map[string]any) error {
		ids = append(ids, id)
		return nil
	})
	if err != nil {
		return 0, err
	}

	b := ix.index.NewBatch()
	for _, id := range ids {
		b.Delete(id)
	}
	if err := ix.index.Batch(b); err != nil {
		return 0, fmt.Errorf("failed to delete batch: %w", err)
	}
	return len(ids), nil
}

// walkHits pages through every hit of the query, invoking fn per hit.
func (ix *Index) walkHits(ctx context.Context, q query.Query, fields []string, fn func(id string, fields map[string]any) error) error {
	for from := 0; ; from += searchPageSize {
		req := bleve.NewSearchRequest(q)
		req.Size = searchPageSize
		req.From = from
		if fields != nil {
			req.Fields = fields
		}

		result, err := ix.index.SearchInContext(ctx, req)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		for _, hit := range result.Hits {
			if err := fn(hit.ID, hit.Fields); err != nil {
				return err
			}
		}
		if len(result.Hits) < searchPageSize {
			return nil
		}
	}
}

// Close releases index resources.
func (ix *Index) Close() error {
	return ix.index.Close()
}
