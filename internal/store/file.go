package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// storeFileExtension is the file extension used for stored values.
const storeFileExtension = ".json"

// FileStore persists values as individual files in a directory.
// Thread-safe for concurrent access within a single process.
type FileStore struct {
	// directory is the storage directory path.
	directory string

	// mu protects concurrent access to file operations.
	mu sync.RWMutex
}

// NewFileStore creates a file-backed store rooted at directory.
// The directory is created if it does not exist.
func NewFileStore(directory string) (*FileStore, error) {
	if directory == "" {
		return nil, errors.New("store directory cannot be empty")
	}

	if err := os.MkdirAll(directory, 0750); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	return &FileStore{directory: directory}, nil
}

// Read returns the raw bytes stored under key.
// Returns ErrNotFound if no file exists for the key.
func (s *FileStore) Read(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.keyToFilePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	return data, nil
}

// Write stores value under key, replacing any existing value.
func (s *FileStore) Write(key string, value []byte) error {
	if key == "" {
		return ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filePath := s.keyToFilePath(key)

	// Write to a temporary file first, then rename for atomicity
	tempPath := filePath + ".tmp"
	if err := os.WriteFile(tempPath, value, 0600); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}

	if err := os.Rename(tempPath, filePath); err != nil {
		_ = os.Remove(tempPath) // Clean up temp file on error
		return fmt.Errorf("failed to rename store file: %w", err)
	}

	return nil
}

// Remove deletes the value under key. Removing a missing key is a no-op.
func (s *FileStore) Remove(key string) error {
	if key == "" {
		return ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.keyToFilePath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete store file: %w", err)
	}

	return nil
}

// Directory returns the storage directory path.
func (s *FileStore) Directory() string {
	return s.directory
}

// keyToFilePath converts a store key to a file path.
// The key is sanitized to ensure filesystem safety.
func (s *FileStore) keyToFilePath(key string) string {
	safeKey := strings.ReplaceAll(key, "/", "_")
	safeKey = strings.ReplaceAll(safeKey, "\\", "_")
	safeKey = strings.ReplaceAll(safeKey, ":", "_")
	return filepath.Join(s.directory, safeKey+storeFileExtension)
}
