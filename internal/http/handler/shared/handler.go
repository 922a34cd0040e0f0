package shared

import (
	"net/http"

	"github.com/lumapix/lumapix/internal/core/service"
)

// Handler resolves public share links. It is mounted outside of the
// authenticated API surface: anonymous requests are expected, and an
// authenticated identity only widens what a token resolves to.
type Handler struct {
	access *service.ShareAccess
	mux    *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(access *service.ShareAccess) *Handler {
	h := &Handler{
		access: access,
		mux:    &http.ServeMux{},
	}

	h.mux.Handle("GET /{shareToken}", http.HandlerFunc(h.handleResolveShare))

	return h
}

var _ http.Handler = &Handler{}
