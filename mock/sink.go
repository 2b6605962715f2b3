package mock

import (
	"context"

	"github.com/docubot/docubot"
)

var _ docubot.Sink = (*Sink)(nil)

// Sink is a mock implementation of docubot.Sink.
type Sink struct {
	AddChunksFn func(ctx context.Context, batch []*docubot.Chunk) (int, error)
}

func (s *Sink) AddChunks(ctx context.Context, batch []*docubot.Chunk) (int, error) {
	return s.AddChunksFn(ctx, batch)
}

var _ docubot.ChunkIndex = (*ChunkIndex)(nil)

// ChunkIndex is a mock implementation of docubot.ChunkIndex.
type ChunkIndex struct {
	AddChunksFn      func(ctx context.Context, batch []*docubot.Chunk) (int, error)
	SearchFn         func(ctx context.Context, query string, limit int) ([]docubot.ChunkMatch, error)
	StatsFn          func(ctx context.Context) (*docubot.IndexStats, error)
	DeleteBySourceFn func(ctx context.Context, sourceURL string) (int, error)
	CloseFn          func() error
}

func (i *ChunkIndex) AddChunks(ctx context.Context, batch []*docubot.Chunk) (int, error) {
	return i.AddChunksFn(ctx, batch)
}

func (i *ChunkIndex) Search(ctx context.Context, query string, limit int) ([]docubot.ChunkMatch, error) {
	return i.SearchFn(ctx, query, limit)
}

func (i *ChunkIndex) Stats(ctx context.Context) (*docubot.IndexStats, error) {
	return i.StatsFn(ctx)
}

func (i *ChunkIndex) DeleteBySource(ctx context.Context, sourceURL string) (int, error) {
	return i.DeleteBySourceFn(ctx, sourceURL)
}

func (i *ChunkIndex) Close() error {
	if i.CloseFn == nil {
		return nil
	}
	return i.CloseFn()
}
