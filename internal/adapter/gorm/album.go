package gorm

import (
	"time"

	"github.com/lumapix/lumapix/internal/core/model"
)

type Album struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Owner   *User
	OwnerID string `gorm:"index"`

	Name        string
	Description string

	Photos []*Photo `gorm:"many2many:photo_albums;"`
}

type wrappedAlbum struct {
	a *Album
}

// ID implements [model.Album].
func (w *wrappedAlbum) ID() model.AlbumID {
	return model.AlbumID(w.a.ID)
}

// OwnerID implements [model.Album].
func (w *wrappedAlbum) OwnerID() model.UserID {
	return model.UserID(w.a.OwnerID)
}

// Name implements [model.Album].
func (w *wrappedAlbum) Name() string {
	return w.a.Name
}

// Description implements [model.Album].
func (w *wrappedAlbum) Description() string {
	return w.a.Description
}

// CreatedAt implements [model.PersistedAlbum].
func (w *wrappedAlbum) CreatedAt() time.Time {
	return w.a.CreatedAt
}

// UpdatedAt implements [model.PersistedAlbum].
func (w *wrappedAlbum) UpdatedAt() time.Time {
	return w.a.UpdatedAt
}

var _ model.PersistedAlbum = &wrappedAlbum{}

func fromAlbum(a model.Album) *Album {
	return &Album{
		ID:          string(a.ID()),
		OwnerID:     string(a.OwnerID()),
		Name:        a.Name(),
		Description: a.Description(),
	}
}
