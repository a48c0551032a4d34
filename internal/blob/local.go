package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"time"
)

var whitespace = regexp.MustCompile(`\s+`)

// LocalStore writes blobs to a directory served statically by the HTTP
// layer. Stored names are prefixed with a millisecond timestamp so repeated
// uploads of the same file never collide.
type LocalStore struct {
	dir        string
	publicPath string
	now        func() time.Time
}

var _ Store = (*LocalStore)(nil)

// NewLocalStore creates a disk-backed blob store rooted at dir, publishing
// blobs under publicPath.
func NewLocalStore(dir, publicPath string) *LocalStore {
	return &LocalStore{dir: dir, publicPath: publicPath, now: time.Now}
}

// Save stores the content under "<unix-millis>-<sanitized original name>".
func (s *LocalStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create images directory: %w", err)
	}

	sanitized := whitespace.ReplaceAllString(filepath.Base(originalName), "-")
	filename := fmt.Sprintf("%d-%s", s.now().UnixMilli(), sanitized)

	f, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return filename, nil
}

// Remove deletes a stored blob. Removing an absent blob is not an error.
func (s *LocalStore) Remove(ctx context.Context, filename string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove image file: %w", err)
	}
	return nil
}

// URL returns the public path for a stored blob.
func (s *LocalStore) URL(filename string) string {
	return path.Join(s.publicPath, filename)
}
