package gorm

import (
	"time"

	"github.com/lumapix/lumapix/internal/core/model"
)

type Tag struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Name string `gorm:"unique"`

	Photos []*Photo `gorm:"many2many:photo_tags;"`
}

type wrappedTag struct {
	t *Tag
}

// ID implements [model.Tag].
func (w *wrappedTag) ID() model.TagID {
	return model.TagID(w.t.ID)
}

// Name implements [model.Tag].
func (w *wrappedTag) Name() string {
	return w.t.Name
}

// CreatedAt implements [model.PersistedTag].
func (w *wrappedTag) CreatedAt() time.Time {
	return w.t.CreatedAt
}

// UpdatedAt implements [model.PersistedTag].
func (w *wrappedTag) UpdatedAt() time.Time {
	return w.t.UpdatedAt
}

var _ model.PersistedTag = &wrappedTag{}

type Category struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Name string `gorm:"unique"`

	Photos []*Photo `gorm:"many2many:photo_categories;"`
}

type wrappedCategory struct {
	c *Category
}

// ID implements [model.Category].
func (w *wrappedCategory) ID() model.CategoryID {
	return model.CategoryID(w.c.ID)
}

// Name implements [model.Category].
func (w *wrappedCategory) Name() string {
	return w.c.Name
}

// CreatedAt implements [model.PersistedCategory].
func (w *wrappedCategory) CreatedAt() time.Time {
	return w.c.CreatedAt
}

// UpdatedAt implements [model.PersistedCategory].
func (w *wrappedCategory) UpdatedAt() time.Time {
	return w.c.UpdatedAt
}

var _ model.PersistedCategory = &wrappedCategory{}
