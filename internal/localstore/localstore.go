// Package localstore implements the client's durable key-value storage:
// one JSON (or plain-text) file per key under a data directory, mirroring
// the browser's localStorage semantics. Values are written in full on
// every update; there is no transactional guarantee across keys.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Storage keys used by the client. Each key lives in its own file.
const (
	KeyAccessToken   = "access_token"
	KeyUser          = "user"
	KeyCart          = "cart"
	KeyFavorites     = "favorites"
	KeySearchHistory = "searchHistory"
)

// Store is a file-backed key-value store. Safe for concurrent use.
type Store struct {
	dir string
	mu  sync.RWMutex
	log *zap.Logger
}

// New creates the data directory if needed and returns a Store over it.
func New(dir string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{dir: dir, log: log}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// GetString returns the raw value stored under key, or "" if absent.
func (s *Store) GetString(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SetString stores a raw string value under key.
func (s *Store) SetString(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(s.path(key), []byte(value), 0o600)
}

// GetJSON decodes the value stored under key into v. A missing key or
// malformed JSON is treated as absent: v is left untouched and ok is
// false. Malformed payloads are logged and never propagate as errors.
func (s *Store) GetJSON(key string, v any) (ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn("discarding malformed persisted value",
			zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// SetJSON serializes v and stores it under key, replacing any previous
// value in full.
func (s *Store) SetJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(s.path(key), data, 0o600)
}

// Delete removes the value stored under key. Deleting an absent key is
// a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Has reports whether a value exists under key.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, err := os.Stat(s.path(key))
	return err == nil
}
