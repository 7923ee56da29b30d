package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the key space as a single JSON object on disk. It is
// the process-local analogue of browser local storage: one file, one
// logical session, last writer wins. Writes go through a temp file and a
// rename so a crash never leaves a half-written store behind.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFileStore opens (or creates) the store file at path. A missing file
// starts empty; an unreadable or malformed file is an error so the caller
// can decide whether to discard it.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("kvstore: file path is required")
	}

	store := &FileStore{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("kvstore: read %s: %w", path, err)
	}
	if len(data) == 0 {
		return store, nil
	}
	if err := json.Unmarshal(data, &store.values); err != nil {
		return nil, fmt.Errorf("kvstore: parse %s: %w", path, err)
	}
	if store.values == nil {
		store.values = make(map[string]string)
	}
	return store, nil
}

// Get implements the Store interface.
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok, nil
}

// Set implements the Store interface.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous, existed := s.values[key]
	s.values[key] = value
	if err := s.flushLocked(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// Delete implements the Store interface.
func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous, existed := s.values[key]
	if !existed {
		return nil
	}
	delete(s.values, key)
	if err := s.flushLocked(); err != nil {
		s.values[key] = previous
		return err
	}
	return nil
}

func (s *FileStore) flushLocked() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("kvstore: encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".kvstore-*")
	if err != nil {
		return fmt.Errorf("kvstore: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("kvstore: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("kvstore: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("kvstore: replace %s: %w", s.path, err)
	}
	return nil
}
