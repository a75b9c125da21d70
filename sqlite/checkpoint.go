package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/mkdict"
)

// Compile-time interface verification.
var _ mkdict.CheckpointStore = (*CheckpointStore)(nil)

// CheckpointStore implements mkdict.CheckpointStore using SQLite.
// Each body is stored with its xxHash so a damaged row is reported instead
// of being trusted as a completed stage.
type CheckpointStore struct {
	db *DB
}

// NewCheckpointStore creates a new CheckpointStore.
func NewCheckpointStore(db *DB) *CheckpointStore {
	return &CheckpointStore{db: db}
}

// hashBody returns the hex xxHash of a checkpoint body.
func hashBody(body []byte) string {
	return strconv.FormatUint(xxhash.Sum64(body), 16)
}

// ReadJSON decodes the named checkpoint into v.
// A missing row or blank body leaves v untouched.
func (s *CheckpointStore) ReadJSON(ctx context.Context, name string, v any) error {
	var body, hash string
	err := s.db.QueryRowContext(ctx, `
		SELECT body, hash
		FROM checkpoints
		WHERE name = ?
	`, name).Scan(&body, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return mkdict.WrapError(mkdict.EPERSISTENCE, err, "read checkpoint %q", name)
	}

	data := []byte(body)
	if hashBody(data) != hash {
		return mkdict.Errorf(mkdict.EPERSISTENCE, "checkpoint %q failed checksum", name)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return mkdict.WrapError(mkdict.EPERSISTENCE, err, "decode checkpoint %q", name)
	}
	return nil
}

// WriteJSON stores v under name, replacing any previous checkpoint.
func (s *CheckpointStore) WriteJSON(ctx context.Context, name string, v any) error {
	if name == "" {
		return mkdict.Errorf(mkdict.EINVALID, "checkpoint name required")
	}

	data, err := json.Marshal(v)
	if err != nil {
		return mkdict.WrapError(mkdict.EPERSISTENCE, err, "encode checkpoint %q", name)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO checkpoints (name, body, hash, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			body = excluded.body,
			hash = excluded.hash,
			updated_at = excluded.updated_at
	`, name, string(data), hashBody(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return mkdict.WrapError(mkdict.EPERSISTENCE, err, "write checkpoint %q", name)
	}
	return nil
}
