// Package store provides persistent key-value storage for user preferences.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ThemeKey is the storage key holding the persisted theme preference.
const ThemeKey = "shade.theme"

// Store is a persistent key-value store. Get reports absence via the
// second return value instead of an error.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// FileStore persists values as a flat JSON object in a single file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path. The file is
// not created until the first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: expandPath(path)}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Get returns the stored value for key. A missing file or missing key is
// reported as absent, not as an error.
func (s *FileStore) Get(key string) (string, bool, error) {
	values, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set writes the value for key, overwriting any prior value. Parent
// directories are created as needed. Write failures propagate to the
// caller.
func (s *FileStore) Set(key, value string) error {
	if s.path == "" {
		return fmt.Errorf("store path not set")
	}

	values, err := s.read()
	if err != nil {
		return err
	}
	values[key] = value

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}

	return nil
}

// read loads the backing file into a map. Missing or empty files yield an
// empty map.
func (s *FileStore) read() (map[string]string, error) {
	values := map[string]string{}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return values, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	if len(data) == 0 {
		return values, nil
	}

	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse store file: %w", err)
	}

	return values, nil
}

func expandPath(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
