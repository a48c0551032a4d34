package store

import (
	"context"
	"errors"

	"gallery-backend/internal/models"
)

// ErrCorrupt indicates that the persisted document exists but could not be
// parsed. Callers must not treat a corrupt store as an empty collection.
var ErrCorrupt = errors.New("store: corrupt document")

// Store persists the photo collection as a single document. Load returns the
// full collection; an absent or empty store yields an empty collection, not
// an error. Save atomically replaces the prior document: a concurrent Load
// observes either the old or the new collection, never a partial write.
type Store interface {
	Load(ctx context.Context) ([]models.Photo, error)
	Save(ctx context.Context, photos []models.Photo) error
}
