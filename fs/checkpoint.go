// Package fs provides file-based checkpoint storage.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/mkdict"
)

// Ensure CheckpointStore implements mkdict.CheckpointStore at compile time.
var _ mkdict.CheckpointStore = (*CheckpointStore)(nil)

// CheckpointStore keeps each checkpoint as an indented JSON file named
// <name>.json inside a directory. Writes go to <name>.json.tmp first and are
// renamed into place, so a crash never leaves a truncated checkpoint.
type CheckpointStore struct {
	dir string
}

// NewCheckpointStore creates a CheckpointStore rooted at dir.
// The directory is created on first write.
func NewCheckpointStore(dir string) *CheckpointStore {
	return &CheckpointStore{dir: dir}
}

// Path returns the file that holds the named checkpoint.
func (s *CheckpointStore) Path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// ReadJSON decodes the named checkpoint into v.
// A missing or blank file leaves v untouched.
func (s *CheckpointStore) ReadJSON(ctx context.Context, name string, v any) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(s.Path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return mkdict.WrapError(mkdict.EPERSISTENCE, err, "read checkpoint %q", name)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return mkdict.WrapError(mkdict.EPERSISTENCE, err, "decode checkpoint %q", name)
	}
	return nil
}

// WriteJSON replaces the named checkpoint with v.
func (s *CheckpointStore) WriteJSON(ctx context.Context, name string, v any) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mkdict.WrapError(mkdict.EPERSISTENCE, err, "encode checkpoint %q", name)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return mkdict.WrapError(mkdict.EPERSISTENCE, err, "create checkpoint directory")
	}

	final := s.Path(name)
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return mkdict.WrapError(mkdict.EPERSISTENCE, err, "write checkpoint %q", name)
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return mkdict.WrapError(mkdict.EPERSISTENCE, err, "commit checkpoint %q", name)
	}
	return nil
}

// validateName rejects names that would escape the store directory.
func validateName(name string) error {
	if name == "" {
		return mkdict.Errorf(mkdict.EINVALID, "checkpoint name required")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return mkdict.Errorf(mkdict.EINVALID, "invalid checkpoint name %q: path traversal", name)
	}
	return nil
}
