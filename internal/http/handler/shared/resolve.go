package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/lumapix/lumapix/internal/core/model"
	"github.com/lumapix/lumapix/internal/core/service"
	httpCtx "github.com/lumapix/lumapix/internal/http/context"
	"github.com/lumapix/lumapix/internal/metrics"
	"github.com/pkg/errors"
)

type ResolveShareResponse struct {
	Share   ShareInfo `json:"share"`
	Content *Content  `json:"content"`
}

type ShareInfo struct {
	Kind      string     `json:"kind"`
	Public    bool       `json:"public"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

type Content struct {
	Kind       string         `json:"kind"`
	Photo      *Photo         `json:"photo,omitempty"`
	Album      *Album         `json:"album,omitempty"`
	Tag        *TaxonomyItem  `json:"tag,omitempty"`
	Category   *TaxonomyItem  `json:"category,omitempty"`
	Photos     []Photo        `json:"photos,omitempty"`
	Albums     []Album        `json:"albums,omitempty"`
	Tags       []TaxonomyItem `json:"tags,omitempty"`
	Categories []TaxonomyItem `json:"categories,omitempty"`
}

type Photo struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	MimeType    string    `json:"mimeType"`
	Size        int64     `json:"size"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Equipment   string    `json:"equipment,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

type Album struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type TaxonomyItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ErrorResponse struct {
	Error ErrorObject `json:"error"`
}

type ErrorObject struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (h *Handler) handleResolveShare(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("shareToken")

	ctx := r.Context()

	var identity *model.UserID
	if user := httpCtx.User(ctx); user != nil {
		id := user.ID()
		identity = &id
	}

	result, err := h.access.Access(ctx, token, identity)
	if err != nil {
		slog.ErrorContext(ctx, "could not resolve share token", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	metrics.ShareAccessDecisions.WithLabelValues(string(result.Decision)).Inc()

	switch result.Decision {
	case service.DecisionNotFound:
		writeJSON(w, r, http.StatusNotFound, ErrorResponse{
			Error: ErrorObject{Kind: "not_found", Message: "share not found"},
		})

	case service.DecisionExpired:
		writeJSON(w, r, http.StatusForbidden, ErrorResponse{
			Error: ErrorObject{Kind: "expired", Message: "this share has expired"},
		})

	case service.DecisionDenied:
		writeJSON(w, r, http.StatusForbidden, ErrorResponse{
			Error: ErrorObject{Kind: "denied", Message: "you are not allowed to access this share"},
		})

	case service.DecisionAllowed:
		writeJSON(w, r, http.StatusOK, ResolveShareResponse{
			Share: ShareInfo{
				Kind:      string(result.Grant.Content().Kind),
				Public:    result.Grant.IsPublic(),
				ExpiresAt: result.Grant.ExpiresAt(),
				CreatedAt: result.Grant.CreatedAt(),
			},
			Content: newContent(result.Payload),
		})
	}
}

func newContent(payload model.ContentPayload) *Content {
	content := &Content{
		Kind: string(payload.Kind()),
	}

	switch p := payload.(type) {
	case *model.PhotoPayload:
		photo := newPhoto(p.Photo)
		content.Photo = &photo
		for _, album := range p.Albums {
			content.Albums = append(content.Albums, newAlbum(album))
		}
		for _, tag := range p.Tags {
			content.Tags = append(content.Tags, TaxonomyItem{ID: string(tag.ID()), Name: tag.Name()})
		}
		for _, category := range p.Categories {
			content.Categories = append(content.Categories, TaxonomyItem{ID: string(category.ID()), Name: category.Name()})
		}

	case *model.AlbumPayload:
		album := newAlbum(p.Album)
		content.Album = &album
		for _, photo := range p.Photos {
			content.Photos = append(content.Photos, newPhoto(photo))
		}

	case *model.TagPayload:
		content.Tag = &TaxonomyItem{ID: string(p.Tag.ID()), Name: p.Tag.Name()}
		for _, photo := range p.Photos {
			content.Photos = append(content.Photos, newPhoto(photo))
		}

	case *model.CategoryPayload:
		content.Category = &TaxonomyItem{ID: string(p.Category.ID()), Name: p.Category.Name()}
		for _, photo := range p.Photos {
			content.Photos = append(content.Photos, newPhoto(photo))
		}
	}

	return content
}

func newPhoto(photo model.PersistedPhoto) Photo {
	return Photo{
		ID:          string(photo.ID()),
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

func newAlbum(album model.PersistedAlbum) Album {
	return Album{
		ID:          string(album.ID()),
		Name:        album.Name(),
		Description: album.Description(),
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := encoder.Encode(payload); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slog.Any("error", errors.WithStack(err)))
	}
}
