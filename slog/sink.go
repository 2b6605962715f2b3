package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/docubot/docubot"
)

// Ensure LoggingSink implements docubot.Sink.
var _ docubot.Sink = (*LoggingSink)(nil)

// LoggingSink wraps a chunk Sink with structured logging.
type LoggingSink struct {
	next   docubot.Sink
	logger *slog.Logger
}

// NewLoggingSink creates a new LoggingSink.
func NewLoggingSink(next docubot.Sink, logger *slog.Logger) *LoggingSink {
	return &LoggingSink{next: next, logger: logger}
}

// AddChunks delegates to the wrapped sink and logs the operation.
func (s *LoggingSink) AddChunks(ctx context.Context, batch []*docubot.Chunk) (accepted int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("add chunks",
			"batch", len(batch),
			"accepted", accepted,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.AddChunks(ctx, batch)
}
