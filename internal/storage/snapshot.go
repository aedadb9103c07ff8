// Package storage provides the persistence backends for user data: a
// JSON snapshot file and a SQLite database, both implementing
// service.Store.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nileshk/paisa/internal/common"
	"github.com/nileshk/paisa/internal/service"
)

// SnapshotFile stores the whole user snapshot as one JSON document.
type SnapshotFile struct {
	path string
}

// NewSnapshotFile creates a store writing to the given path.
func NewSnapshotFile(path string) *SnapshotFile {
	return &SnapshotFile{path: path}
}

// Load reads the snapshot, returning common.ErrNotFound when the file
// does not exist yet.
func (s *SnapshotFile) Load(_ context.Context) (*service.UserSnapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snapshot service.UserSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	return &snapshot, nil
}

// Save writes the snapshot, creating parent directories as needed.
func (s *SnapshotFile) Save(_ context.Context, snapshot *service.UserSnapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

// Close is a no-op for file-backed snapshots.
func (s *SnapshotFile) Close() error { return nil }
