package api

import (
	"net/http"

	"github.com/lumapix/lumapix/internal/core/port"
	"github.com/lumapix/lumapix/internal/core/service"
	"github.com/lumapix/lumapix/internal/http/middleware/authz"
)

type Handler struct {
	shareManager *service.ShareManager
	shares       port.ShareStore
	library      port.LibraryStore
	users        port.UserStore
	mux          *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(shareManager *service.ShareManager, shares port.ShareStore, library port.LibraryStore, users port.UserStore) *Handler {
	h := &Handler{
		shareManager: shareManager,
		shares:       shares,
		library:      library,
		users:        users,
		mux:          &http.ServeMux{},
	}

	assertUser := authz.Middleware(nil, authz.IsAuthenticated)

	h.mux.Handle("POST /register", http.HandlerFunc(h.handleRegister))

	h.mux.Handle("POST /share", assertUser(http.HandlerFunc(h.handleCreateShares)))
	h.mux.Handle("GET /share", assertUser(http.HandlerFunc(h.handleListShares)))
	h.mux.Handle("DELETE /share/{shareID}", assertUser(http.HandlerFunc(h.handleDeleteShare)))

	h.mux.Handle("POST /photos", assertUser(http.HandlerFunc(h.handleCreatePhoto)))
	h.mux.Handle("GET /photos", assertUser(http.HandlerFunc(h.handleListPhotos)))
	h.mux.Handle("GET /photos/{photoID}", assertUser(http.HandlerFunc(h.handleGetPhoto)))
	h.mux.Handle("DELETE /photos/{photoID}", assertUser(http.HandlerFunc(h.handleDeletePhoto)))

	h.mux.Handle("POST /albums", assertUser(http.HandlerFunc(h.handleCreateAlbum)))
	h.mux.Handle("GET /albums", assertUser(http.HandlerFunc(h.handleListAlbums)))
	h.mux.Handle("GET /albums/{albumID}", assertUser(http.HandlerFunc(h.handleGetAlbum)))

	h.mux.Handle("GET /tags", assertUser(http.HandlerFunc(h.handleListTags)))
	h.mux.Handle("POST /tags", assertUser(http.HandlerFunc(h.handleCreateTag)))
	h.mux.Handle("GET /categories", assertUser(http.HandlerFunc(h.handleListCategories)))
	h.mux.Handle("POST /categories", assertUser(http.HandlerFunc(h.handleCreateCategory)))

	return h
}

var _ http.Handler = &Handler{}
