package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/lumapix/lumapix/internal/core/model"
	"github.com/lumapix/lumapix/internal/core/port"
	httpCtx "github.com/lumapix/lumapix/internal/http/context"
	"github.com/pkg/errors"
)

type CreatePhotoRequest struct {
	Filename    string   `json:"filename"`
	MimeType    string   `json:"mimeType"`
	Size        int64    `json:"size"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Equipment   string   `json:"equipment"`
	Albums      []string `json:"albums"`
	Tags        []string `json:"tags"`
	Categories  []string `json:"categories"`
}

type PhotoHeader struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Filename    string    `json:"filename"`
	MimeType    string    `json:"mimeType"`
	Size        int64     `json:"size"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Equipment   string    `json:"equipment,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

func newPhotoHeader(photo model.PersistedPhoto) PhotoHeader {
	return PhotoHeader{
		ID:          string(photo.ID()),
		OwnerID:     string(photo.OwnerID()),
		Filename:    photo.Filename(),
		MimeType:    photo.MimeType(),
		Size:        photo.Size(),
		Title:       photo.Title(),
		Description: photo.Description(),
		Location:    photo.Location(),
		Equipment:   photo.Equipment(),
		UploadedAt:  photo.UploadedAt(),
	}
}

type CreatePhotoResponse struct {
	Photo PhotoHeader `json:"photo"`
}

func (h *Handler) handleCreatePhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	var req CreatePhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "could not parse request body")
		return
	}

	if req.Filename == "" || req.MimeType == "" {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "filename and mimeType are required")
		return
	}

	photo := model.NewPhoto(
		user.ID(), req.Filename, req.MimeType, req.Size,
		model.WithPhotoTitle(req.Title),
		model.WithPhotoDescription(req.Description),
		model.WithPhotoLocation(req.Location),
		model.WithPhotoEquipment(req.Equipment),
	)

	assocs := port.PhotoAssociations{}
	for _, id := range req.Albums {
		assocs.Albums = append(assocs.Albums, model.AlbumID(id))
	}
	for _, id := range req.Tags {
		assocs.Tags = append(assocs.Tags, model.TagID(id))
	}
	for _, id := range req.Categories {
		assocs.Categories = append(assocs.Categories, model.CategoryID(id))
	}

	saved, err := h.library.SavePhoto(ctx, photo, assocs)
	if err != nil {
		slog.ErrorContext(ctx, "could not save photo", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusCreated, CreatePhotoResponse{
		Photo: newPhotoHeader(saved),
	})
}

type ListPhotosResponse struct {
	Photos []PhotoHeader `json:"photos"`
	Total  int64         `json:"total"`
	Page   int           `json:"page"`
	Limit  int           `json:"limit"`
}

func (h *Handler) handleListPhotos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	query := r.URL.Query()
	page := getQueryPage(query, 0)
	limit := getQueryLimit(query, 10)

	ownerID := user.ID()

	photos, total, err := h.library.QueryPhotos(ctx, port.QueryPhotosOptions{
		OwnerID: &ownerID,
		Page:    &page,
		Limit:   &limit,
	})
	if err != nil {
		slog.ErrorContext(ctx, "could not query photos", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res := ListPhotosResponse{
		Photos: make([]PhotoHeader, 0, len(photos)),
		Total:  total,
		Page:   page,
		Limit:  limit,
	}

	for _, photo := range photos {
		res.Photos = append(res.Photos, newPhotoHeader(photo))
	}

	writeJSON(w, r, http.StatusOK, res)
}

type GetPhotoResponse struct {
	Photo      PhotoHeader      `json:"photo"`
	Albums     []AlbumHeader    `json:"albums"`
	Tags       []TaxonomyHeader `json:"tags"`
	Categories []TaxonomyHeader `json:"categories"`
}

func (h *Handler) handleGetPhoto(w http.ResponseWriter, r *http.Request) {
	photoID := model.PhotoID(r.PathValue("photoID"))

	ctx := r.Context()
	user := httpCtx.User(ctx)

	payload, err := h.library.GetPhotoAggregate(ctx, photoID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		slog.ErrorContext(ctx, "could not get photo", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if payload.Photo.OwnerID() != user.ID() {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	res := GetPhotoResponse{
		Photo:      newPhotoHeader(payload.Photo),
		Albums:     make([]AlbumHeader, 0, len(payload.Albums)),
		Tags:       make([]TaxonomyHeader, 0, len(payload.Tags)),
		Categories: make([]TaxonomyHeader, 0, len(payload.Categories)),
	}

	for _, album := range payload.Albums {
		res.Albums = append(res.Albums, newAlbumHeader(album))
	}
	for _, tag := range payload.Tags {
		res.Tags = append(res.Tags, TaxonomyHeader{ID: string(tag.ID()), Name: tag.Name()})
	}
	for _, category := range payload.Categories {
		res.Categories = append(res.Categories, TaxonomyHeader{ID: string(category.ID()), Name: category.Name()})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) handleDeletePhoto(w http.ResponseWriter, r *http.Request) {
	photoID := model.PhotoID(r.PathValue("photoID"))

	ctx := r.Context()
	user := httpCtx.User(ctx)

	photo, err := h.library.GetPhotoByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		slog.ErrorContext(ctx, "could not get photo", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if photo.OwnerID() != user.ID() {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	if err := h.library.DeletePhoto(ctx, photoID); err != nil {
		slog.ErrorContext(ctx, "could not delete photo", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
