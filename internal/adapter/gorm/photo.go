package gorm

import (
	"time"

	"github.com/lumapix/lumapix/internal/core/model"
)

type Photo struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Owner   *User
	OwnerID string `gorm:"index"`

	Filename string
	MimeType string
	Size     int64

	Title       string
	Description string
	Location    string
	Equipment   string

	UploadedAt time.Time

	Albums     []*Album    `gorm:"many2many:photo_albums;"`
	Tags       []*Tag      `gorm:"many2many:photo_tags;"`
	Categories []*Category `gorm:"many2many:photo_categories;"`
}

type wrappedPhoto struct {
	p *Photo
}

// ID implements [model.Photo].
func (w *wrappedPhoto) ID() model.PhotoID {
	return model.PhotoID(w.p.ID)
}

// OwnerID implements [model.Photo].
func (w *wrappedPhoto) OwnerID() model.UserID {
	return model.UserID(w.p.OwnerID)
}

// Filename implements [model.Photo].
func (w *wrappedPhoto) Filename() string {
	return w.p.Filename
}

// MimeType implements [model.Photo].
func (w *wrappedPhoto) MimeType() string {
	return w.p.MimeType
}

// Size implements [model.Photo].
func (w *wrappedPhoto) Size() int64 {
	return w.p.Size
}

// Title implements [model.Photo].
func (w *wrappedPhoto) Title() string {
	return w.p.Title
}

// Description implements [model.Photo].
func (w *wrappedPhoto) Description() string {
	return w.p.Description
}

// Location implements [model.Photo].
func (w *wrappedPhoto) Location() string {
	return w.p.Location
}

// Equipment implements [model.Photo].
func (w *wrappedPhoto) Equipment() string {
	return w.p.Equipment
}

// UploadedAt implements [model.Photo].
func (w *wrappedPhoto) UploadedAt() time.Time {
	return w.p.UploadedAt
}

// CreatedAt implements [model.PersistedPhoto].
func (w *wrappedPhoto) CreatedAt() time.Time {
	return w.p.CreatedAt
}

// UpdatedAt implements [model.PersistedPhoto].
func (w *wrappedPhoto) UpdatedAt() time.Time {
	return w.p.UpdatedAt
}

var _ model.PersistedPhoto = &wrappedPhoto{}

func fromPhoto(p model.Photo) *Photo {
	return &Photo{
		ID:          string(p.ID()),
		OwnerID:     string(p.OwnerID()),
		Filename:    p.Filename(),
		MimeType:    p.MimeType(),
		Size:        p.Size(),
		Title:       p.Title(),
		Description: p.Description(),
		Location:    p.Location(),
		Equipment:   p.Equipment(),
		UploadedAt:  p.UploadedAt(),
	}
}
