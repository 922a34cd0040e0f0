package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lumapix/lumapix/internal/core/model"
	"github.com/lumapix/lumapix/internal/core/port"
	httpCtx "github.com/lumapix/lumapix/internal/http/context"
	"github.com/pkg/errors"
)

type AlbumHeader struct {
	ID          string `json:"id"`
	OwnerID     string `json:"ownerId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func newAlbumHeader(album model.PersistedAlbum) AlbumHeader {
	return AlbumHeader{
		ID:          string(album.ID()),
		OwnerID:     string(album.OwnerID()),
		Name:        album.Name(),
		Description: album.Description(),
	}
}

type CreateAlbumRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateAlbumResponse struct {
	Album AlbumHeader `json:"album"`
}

func (h *Handler) handleCreateAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	var req CreateAlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "could not parse request body")
		return
	}

	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	album, err := h.library.SaveAlbum(ctx, model.NewAlbum(user.ID(), req.Name, req.Description))
	if err != nil {
		slog.ErrorContext(ctx, "could not save album", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusCreated, CreateAlbumResponse{
		Album: newAlbumHeader(album),
	})
}

type ListAlbumsResponse struct {
	Albums []AlbumHeader `json:"albums"`
	Total  int64         `json:"total"`
	Page   int           `json:"page"`
	Limit  int           `json:"limit"`
}

func (h *Handler) handleListAlbums(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	query := r.URL.Query()
	page := getQueryPage(query, 0)
	limit := getQueryLimit(query, 10)

	ownerID := user.ID()

	albums, total, err := h.library.QueryAlbums(ctx, port.QueryAlbumsOptions{
		OwnerID: &ownerID,
		Page:    &page,
		Limit:   &limit,
	})
	if err != nil {
		slog.ErrorContext(ctx, "could not query albums", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res := ListAlbumsResponse{
		Albums: make([]AlbumHeader, 0, len(albums)),
		Total:  total,
		Page:   page,
		Limit:  limit,
	}

	for _, album := range albums {
		res.Albums = append(res.Albums, newAlbumHeader(album))
	}

	writeJSON(w, r, http.StatusOK, res)
}

type GetAlbumResponse struct {
	Album  AlbumHeader   `json:"album"`
	Photos []PhotoHeader `json:"photos"`
}

func (h *Handler) handleGetAlbum(w http.ResponseWriter, r *http.Request) {
	albumID := model.AlbumID(r.PathValue("albumID"))

	ctx := r.Context()
	user := httpCtx.User(ctx)

	payload, err := h.library.GetAlbumAggregate(ctx, albumID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		slog.ErrorContext(ctx, "could not get album", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if payload.Album.OwnerID() != user.ID() {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	res := GetAlbumResponse{
		Album:  newAlbumHeader(payload.Album),
		Photos: make([]PhotoHeader, 0, len(payload.Photos)),
	}

	for _, photo := range payload.Photos {
		res.Photos = append(res.Photos, newPhotoHeader(photo))
	}

	writeJSON(w, r, http.StatusOK, res)
}
