package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"gallery-backend/internal/models"
	"gallery-backend/internal/services"
)

// PhotoHandler handles photo-related HTTP requests
type PhotoHandler struct {
	photoService *services.PhotoService
	hub          *services.WSHub
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(photoService *services.PhotoService, hub *services.WSHub) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
		hub:          hub,
	}
}

// photoRequest carries the writable photo fields of a JSON body. A missing
// field stays nil so patches only touch what the client sent. displayOrder
// is kept raw: it may arrive as a number or a numeric string, and anything
// unparseable is ignored rather than rejected.
type photoRequest struct {
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	Filename     *string         `json:"filename"`
	DisplayOrder json.RawMessage `json:"displayOrder"`
}

// ListPhotos handles GET /api/photos
func (h *PhotoHandler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := h.photoService.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, photos)
}

// CreatePhoto handles POST /api/photos
func (h *PhotoHandler) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	patch, uploaded, err := h.parseBody(r)
	if err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var title, description, filename string
	if patch.Title != nil {
		title = *patch.Title
	}
	if patch.Description != nil {
		description = *patch.Description
	}
	if patch.Filename != nil {
		filename = *patch.Filename
	}

	photo, err := h.photoService.Create(ctx, title, description, filename)
	if err != nil {
		// The upload already hit the blob store; don't leave it orphaned.
		if uploaded != "" {
			if rmErr := h.photoService.RemoveBlob(ctx, uploaded); rmErr != nil {
				log.Warn().Err(rmErr).Msg("Orphaned blob cleanup failed")
			}
		}
		respondServiceError(w, err)
		return
	}

	log.Info().Str("photo_id", photo.ID).Str("title", photo.Title).Msg("Photo created")
	h.hub.Broadcast(services.WSMessage{Type: services.EventPhotoCreated, Photo: &photo})
	respondJSON(w, http.StatusCreated, photo)
}

// UpdatePhoto handles PATCH /api/photos/{id}
func (h *PhotoHandler) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	patch, uploaded, err := h.parseBody(r)
	if err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	photo, err := h.photoService.Update(ctx, id, patch)
	if err != nil {
		if uploaded != "" && errors.Is(err, services.ErrNotFound) {
			if rmErr := h.photoService.RemoveBlob(ctx, uploaded); rmErr != nil {
				log.Warn().Err(rmErr).Msg("Orphaned blob cleanup failed")
			}
		}
		respondServiceError(w, err)
		return
	}

	log.Info().Str("photo_id", photo.ID).Msg("Photo updated")
	h.hub.Broadcast(services.WSMessage{Type: services.EventPhotoUpdated, Photo: &photo})
	respondJSON(w, http.StatusOK, photo)
}

// DeletePhoto handles DELETE /api/photos/{id}
func (h *PhotoHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	photo, err := h.photoService.Delete(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().Str("photo_id", photo.ID).Msg("Photo deleted")
	h.hub.Broadcast(services.WSMessage{Type: services.EventPhotoDeleted, Photo: &photo})
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Photo removed",
		"photo":   photo,
	})
}

type reorderRequest struct {
	Order []string `json:"order"`
}

// ReorderPhotos handles POST /api/photos/reorder
func (h *PhotoHandler) ReorderPhotos(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Order must be a non-empty array of photo IDs", http.StatusBadRequest)
		return
	}

	photos, err := h.photoService.Reorder(r.Context(), req.Order)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().Int("count", len(req.Order)).Msg("Photos reordered")
	h.hub.Broadcast(services.WSMessage{Type: services.EventPhotosReordered, Photos: photos})
	respondJSON(w, http.StatusOK, photos)
}

// parseBody extracts the writable photo fields from a JSON or multipart
// request. When a file upload is present it is stored through the blob store
// first, and the stored name is returned so a failed request can clean it
// up.
func (h *PhotoHandler) parseBody(r *http.Request) (models.PhotoPatch, string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return h.parseMultipart(r)
	}

	var req photoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return models.PhotoPatch{}, "", err
	}

	return models.PhotoPatch{
		Title:        req.Title,
		Description:  req.Description,
		Filename:     req.Filename,
		DisplayOrder: parseOrderJSON(req.DisplayOrder),
	}, "", nil
}

func (h *PhotoHandler) parseMultipart(r *http.Request) (models.PhotoPatch, string, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return models.PhotoPatch{}, "", err
	}

	var patch models.PhotoPatch
	form := r.MultipartForm.Value
	if v, ok := formValue(form, "title"); ok {
		patch.Title = &v
	}
	if v, ok := formValue(form, "description"); ok {
		patch.Description = &v
	}
	if v, ok := formValue(form, "filename"); ok {
		patch.Filename = &v
	}
	if v, ok := formValue(form, "displayOrder"); ok {
		patch.DisplayOrder = parseOrderString(v)
	}

	uploaded := ""
	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()
		stored, err := h.photoService.SaveBlob(r.Context(), header.Filename, file)
		if err != nil {
			return models.PhotoPatch{}, "", err
		}
		uploaded = stored
		patch.Filename = &stored
	} else if !errors.Is(err, http.ErrMissingFile) {
		return models.PhotoPatch{}, "", err
	}

	return patch, uploaded, nil
}

func formValue(form map[string][]string, key string) (string, bool) {
	vals, ok := form[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// parseOrderJSON accepts a JSON number or a numeric string; anything else is
// ignored.
func parseOrderJSON(raw json.RawMessage) *int {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		n := int(f)
		return &n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parseOrderString(s)
	}
	return nil
}

func parseOrderString(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n := int(f)
	return &n
}
