package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"

	"gallery-backend/internal/blob"
	"gallery-backend/internal/models"
	"gallery-backend/internal/store"
)

// PhotoService owns the photo collection. Every operation is a full
// load→mutate→save cycle against the durable store; mutations hold one mutex
// so concurrent requests are strictly serialized and never overwrite each
// other's effect.
type PhotoService struct {
	store store.Store
	blobs blob.Store

	mu sync.Mutex
}

// NewPhotoService creates a new photo service.
func NewPhotoService(st store.Store, blobs blob.Store) *PhotoService {
	return &PhotoService{store: st, blobs: blobs}
}

// List returns every photo in display order, with derived URLs.
func (s *PhotoService) List(ctx context.Context) ([]models.Photo, error) {
	photos, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	sortPhotos(photos)
	return s.withURLs(photos), nil
}

// Create validates, assigns identity and the next display order, and
// persists the new photo.
func (s *PhotoService) Create(ctx context.Context, title, description, filename string) (models.Photo, error) {
	if title == "" || filename == "" {
		return models.Photo{}, validationErr("Title and filename are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	photos, err := s.store.Load(ctx)
	if err != nil {
		return models.Photo{}, err
	}

	maxOrder := 0
	for _, p := range photos {
		if p.DisplayOrder > maxOrder {
			maxOrder = p.DisplayOrder
		}
	}

	photo := models.Photo{
		ID:           uuid.New().String(),
		Title:        title,
		Description:  description,
		Filename:     filename,
		DisplayOrder: maxOrder + 1,
	}

	photos = append(photos, photo)
	if err := s.store.Save(ctx, photos); err != nil {
		return models.Photo{}, err
	}
	return s.withURL(photo), nil
}

// Update applies a partial patch to the photo with the given id. Nil patch
// fields leave the attribute unchanged; an empty title or filename in the
// patch is ignored rather than rejected.
func (s *PhotoService) Update(ctx context.Context, id string, patch models.PhotoPatch) (models.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	photos, err := s.store.Load(ctx)
	if err != nil {
		return models.Photo{}, err
	}

	idx := indexByID(photos, id)
	if idx < 0 {
		return models.Photo{}, ErrNotFound
	}

	p := &photos[idx]
	if patch.Title != nil && *patch.Title != "" {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Filename != nil && *patch.Filename != "" {
		p.Filename = *patch.Filename
	}
	if patch.DisplayOrder != nil {
		p.DisplayOrder = *patch.DisplayOrder
	}

	if err := s.store.Save(ctx, photos); err != nil {
		return models.Photo{}, err
	}
	return s.withURL(*p), nil
}

// Delete removes the photo with the given id and returns the removed record
// so the caller still knows which blob it referenced.
func (s *PhotoService) Delete(ctx context.Context, id string) (models.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	photos, err := s.store.Load(ctx)
	if err != nil {
		return models.Photo{}, err
	}

	idx := indexByID(photos, id)
	if idx < 0 {
		return models.Photo{}, ErrNotFound
	}

	removed := photos[idx]
	photos = append(photos[:idx], photos[idx+1:]...)

	if err := s.store.Save(ctx, photos); err != nil {
		return models.Photo{}, err
	}
	return s.withURL(removed), nil
}

// RemoveBlob deletes an uploaded blob that ended up orphaned, for example
// when the request that uploaded it then failed validation. Best effort.
func (s *PhotoService) RemoveBlob(ctx context.Context, filename string) error {
	if filename == "" {
		return nil
	}
	if err := s.blobs.Remove(ctx, filename); err != nil {
		return fmt.Errorf("failed to clean up blob %q: %w", filename, err)
	}
	return nil
}

// SaveBlob stores uploaded content through the blob store and returns the
// stored filename.
func (s *PhotoService) SaveBlob(ctx context.Context, originalName string, r io.Reader) (string, error) {
	return s.blobs.Save(ctx, originalName, r)
}

func (s *PhotoService) withURL(p models.Photo) models.Photo {
	p.URL = s.blobs.URL(p.Filename)
	return p
}

func (s *PhotoService) withURLs(photos []models.Photo) []models.Photo {
	out := make([]models.Photo, len(photos))
	for i, p := range photos {
		out[i] = s.withURL(p)
	}
	return out
}

// sortPhotos orders by display order, breaking ties lexicographically by
// title so the result is deterministic.
func sortPhotos(photos []models.Photo) {
	sort.Slice(photos, func(i, j int) bool {
		if photos[i].DisplayOrder == photos[j].DisplayOrder {
			return photos[i].Title < photos[j].Title
		}
		return photos[i].DisplayOrder < photos[j].DisplayOrder
	})
}

func indexByID(photos []models.Photo, id string) int {
	for i, p := range photos {
		if p.ID == id {
			return i
		}
	}
	return -1
}
