package mock

import (
	"context"

	"github.com/fwojciec/mkdict"
)

var _ mkdict.CheckpointStore = (*CheckpointStore)(nil)

// CheckpointStore is a mock implementation of mkdict.CheckpointStore.
type CheckpointStore struct {
	ReadJSONFn  func(ctx context.Context, name string, v any) error
	WriteJSONFn func(ctx context.Context, name string, v any) error
}

func (s *CheckpointStore) ReadJSON(ctx context.Context, name string, v any) error {
	return s.ReadJSONFn(ctx, name, v)
}

func (s *CheckpointStore) WriteJSON(ctx context.Context, name string, v any) error {
	return s.WriteJSONFn(ctx, name, v)
}
