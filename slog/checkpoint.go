package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mkdict"
)

// Ensure LoggingCheckpointStore implements mkdict.CheckpointStore.
var _ mkdict.CheckpointStore = (*LoggingCheckpointStore)(nil)

// LoggingCheckpointStore wraps a CheckpointStore with logging.
type LoggingCheckpointStore struct {
	next   mkdict.CheckpointStore
	logger *slog.Logger
}

// NewLoggingCheckpointStore creates a new LoggingCheckpointStore.
func NewLoggingCheckpointStore(next mkdict.CheckpointStore, logger *slog.Logger) *LoggingCheckpointStore {
	return &LoggingCheckpointStore{next: next, logger: logger}
}

// ReadJSON delegates to the wrapped store and logs the operation.
func (s *LoggingCheckpointStore) ReadJSON(ctx context.Context, name string, v any) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("read checkpoint",
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadJSON(ctx, name, v)
}

// WriteJSON delegates to the wrapped store and logs the operation.
func (s *LoggingCheckpointStore) WriteJSON(ctx context.Context, name string, v any) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("write checkpoint",
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteJSON(ctx, name, v)
}
