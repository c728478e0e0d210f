// Package localstore persists guest state as JSON files under the
// storefront's state directory, standing in for browser local storage.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/shop/storefront/internal/domain/cart"
)

// Store reads and writes the guest cart snapshot. A missing file is an
// empty cart; a corrupt file is purged so it cannot poison later loads.
type Store struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewStore creates a store backed by the given file path
func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the snapshot file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted cart entries. Missing or unreadable snapshots
// resolve to an empty cart rather than an error.
func (s *Store) Load() []cart.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read cart snapshot", zap.String("path", s.path), zap.Error(err))
		}
		return nil
	}

	var entries []cart.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.logger.Warn("purging corrupt cart snapshot", zap.String("path", s.path), zap.Error(err))
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to remove corrupt cart snapshot", zap.Error(err))
		}
		return nil
	}
	return entries
}

// Save writes the cart entries atomically via a temp file rename
func (s *Store) Save(entries []cart.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entries == nil {
		entries = []cart.Entry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("localstore: failed to encode cart snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("localstore: failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cart-*.json")
	if err != nil {
		return fmt.Errorf("localstore: failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("localstore: failed to write cart snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("localstore: failed to close cart snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("localstore: failed to replace cart snapshot: %w", err)
	}
	return nil
}

// Clear removes the snapshot file entirely
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("localstore: failed to remove cart snapshot: %w", err)
	}
	return nil
}
