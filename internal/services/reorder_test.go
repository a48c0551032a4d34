package services

import (
	"context"
	"errors"
	"testing"

	"gallery-backend/internal/models"
)

func threePhotos() []models.Photo {
	return []models.Photo{
		{ID: "id1", Title: "One", Filename: "1.jpg", DisplayOrder: 1},
		{ID: "id2", Title: "Two", Filename: "2.jpg", DisplayOrder: 2},
		{ID: "id3", Title: "Three", Filename: "3.jpg", DisplayOrder: 3},
	}
}

func orderByID(photos []models.Photo) map[string]int {
	out := make(map[string]int, len(photos))
	for _, p := range photos {
		out[p.ID] = p.DisplayOrder
	}
	return out
}

func TestPlanReorderFullOrder(t *testing.T) {
	updated, err := planReorder(threePhotos(), []string{"id2", "id3", "id1"})
	if err != nil {
		t.Fatalf("planReorder error: %v", err)
	}

	got := orderByID(updated)
	want := map[string]int{"id2": 1, "id3": 2, "id1": 3}
	for id, order := range want {
		if got[id] != order {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestPlanReorderPartialAppendsRemaining(t *testing.T) {
	updated, err := planReorder(threePhotos(), []string{"id3", "id1"})
	if err != nil {
		t.Fatalf("planReorder error: %v", err)
	}

	got := orderByID(updated)
	want := map[string]int{"id3": 1, "id1": 2, "id2": 3}
	for id, order := range want {
		if got[id] != order {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestPlanReorderRemainingKeepPriorRelativeOrder(t *testing.T) {
	photos := []models.Photo{
		{ID: "a", Title: "A", Filename: "a.jpg", DisplayOrder: 5},
		{ID: "b", Title: "B", Filename: "b.jpg", DisplayOrder: 2},
		{ID: "c", Title: "C", Filename: "c.jpg", DisplayOrder: 9},
		{ID: "d", Title: "D", Filename: "d.jpg", DisplayOrder: 1},
	}

	updated, err := planReorder(photos, []string{"c"})
	if err != nil {
		t.Fatalf("planReorder error: %v", err)
	}

	got := orderByID(updated)
	// c leads; d, b, a follow in their prior ascending order.
	want := map[string]int{"c": 1, "d": 2, "b": 3, "a": 4}
	for id, order := range want {
		if got[id] != order {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestPlanReorderValidation(t *testing.T) {
	cases := []struct {
		name  string
		order []string
	}{
		{"empty order", nil},
		{"unknown id", []string{"id1", "ghost"}},
		{"duplicate id", []string{"id1", "id1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := planReorder(threePhotos(), tc.order)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestReorderIsIdempotent(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	if err := st.Save(ctx, threePhotos()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	order := []string{"id3", "id2", "id1"}
	first, err := svc.Reorder(ctx, order)
	if err != nil {
		t.Fatalf("first Reorder error: %v", err)
	}
	second, err := svc.Reorder(ctx, order)
	if err != nil {
		t.Fatalf("second Reorder error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("result length changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("reorder not idempotent at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestReorderReturnsSortedCollection(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	if err := st.Save(ctx, threePhotos()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	photos, err := svc.Reorder(ctx, []string{"id3", "id1"})
	if err != nil {
		t.Fatalf("Reorder error: %v", err)
	}

	wantIDs := []string{"id3", "id1", "id2"}
	for i, id := range wantIDs {
		if photos[i].ID != id {
			t.Fatalf("expected sequence %v, got %+v", wantIDs, photos)
		}
		if photos[i].DisplayOrder != i+1 {
			t.Fatalf("expected contiguous orders, got %+v", photos)
		}
	}
}

func TestReorderFailureLeavesStoreUntouched(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	seed := threePhotos()
	if err := st.Save(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := svc.Reorder(ctx, []string{"id1", "ghost"}); err == nil {
		t.Fatal("expected validation failure")
	}

	photos, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(photos) != len(seed) {
		t.Fatalf("expected %d photos, got %d", len(seed), len(photos))
	}
	got := orderByID(photos)
	for _, p := range seed {
		if got[p.ID] != p.DisplayOrder {
			t.Fatalf("stored collection changed after failed reorder: %+v", photos)
		}
	}
}
