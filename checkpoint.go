package mkdict

import "context"

// Checkpoint names, one per persisted artifact.
const (
	CheckpointRangeURIs = "wordRangeURIs"
	CheckpointWordURIs  = "wordURIs"
	CheckpointWords     = "allWordsData"
)

// CheckpointStore persists named JSON documents.
type CheckpointStore interface {
	// ReadJSON decodes the named document into v.
	// A missing or empty document is not an error: v is left untouched.
	// Returns EPERSISTENCE if the document exists but cannot be read.
	ReadJSON(ctx context.Context, name string, v any) error

	// WriteJSON encodes v and stores it under name, replacing any
	// previous document.
	WriteJSON(ctx context.Context, name string, v any) error
}
