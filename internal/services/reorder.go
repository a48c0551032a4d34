package services

import (
	"context"
	"sort"

	"gallery-backend/internal/models"
)

// Reorder rewrites every photo's display order from a client-supplied
// ranking. Ids listed in order get positions 1..len(order); photos omitted
// from the ranking keep their relative order and are appended after the
// explicit block. All-or-nothing: an invalid order leaves the stored
// collection untouched.
func (s *PhotoService) Reorder(ctx context.Context, order []string) ([]models.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	photos, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := planReorder(photos, order)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, updated); err != nil {
		return nil, err
	}

	sortPhotos(updated)
	return s.withURLs(updated), nil
}

// planReorder computes the new collection without touching the store.
func planReorder(photos []models.Photo, order []string) ([]models.Photo, error) {
	if len(order) == 0 {
		return nil, validationErr("Order must be a non-empty array of photo IDs")
	}

	known := make(map[string]bool, len(photos))
	for _, p := range photos {
		known[p.ID] = true
	}

	seen := make(map[string]bool, len(order))
	for _, id := range order {
		if !known[id] {
			return nil, validationErr("Order contains unknown photo IDs")
		}
		if seen[id] {
			return nil, validationErr("Order contains duplicate photo IDs")
		}
		seen[id] = true
	}

	rank := make(map[string]int, len(order))
	for i, id := range order {
		rank[id] = i + 1
	}

	updated := make([]models.Photo, len(photos))
	copy(updated, photos)

	var remaining []*models.Photo
	for i := range updated {
		if r, ok := rank[updated[i].ID]; ok {
			updated[i].DisplayOrder = r
		} else {
			remaining = append(remaining, &updated[i])
		}
	}

	// Omitted photos follow the explicit block, keeping their prior
	// relative order.
	sort.SliceStable(remaining, func(i, j int) bool {
		return remaining[i].DisplayOrder < remaining[j].DisplayOrder
	})
	for i, p := range remaining {
		p.DisplayOrder = len(order) + 1 + i
	}

	return updated, nil
}
