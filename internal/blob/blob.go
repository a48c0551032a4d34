package blob

import (
	"context"
	"io"
)

// Store holds the actual image bytes, addressed by filename. The photo
// service only ever stores and reads that filename string; it never inspects
// blob content.
type Store interface {
	// Save stores the uploaded content and returns the filename it was
	// stored under.
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	// Remove deletes a stored blob.
	Remove(ctx context.Context, filename string) error
	// URL derives the externally addressable URL for a stored blob. Pure;
	// the filename is assumed non-empty (enforced by the photo service).
	URL(filename string) string
}
