package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gallery-backend/internal/models"
)

// FileStore keeps the collection in one JSON file, rewritten wholesale on
// every save.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a file-backed store at path. The parent directory is
// created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the full collection from disk.
func (s *FileStore) Load(ctx context.Context) ([]models.Photo, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Photo{}, nil
		}
		return nil, fmt.Errorf("failed to read photo store: %w", err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return []models.Photo{}, nil
	}

	var photos []models.Photo
	if err := json.Unmarshal(data, &photos); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	return photos, nil
}

// Save replaces the stored collection. The document is written to a
// temporary file and renamed over the target so a crash mid-write never
// leaves a truncated document behind.
func (s *FileStore) Save(ctx context.Context, photos []models.Photo) error {
	if photos == nil {
		photos = []models.Photo{}
	}

	data, err := json.MarshalIndent(photos, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal photo store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write photo store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace photo store: %w", err)
	}
	return nil
}
