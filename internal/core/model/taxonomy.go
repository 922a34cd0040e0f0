package model

import (
	"github.com/rs/xid"
)

// Tags and categories are shared vocabulary: they have no owner and any
// user may associate photos with them.

type TagID string

func NewTagID() TagID {
	return TagID(xid.New().String())
}

type Tag interface {
	WithID[TagID]

	Name() string
}

type PersistedTag interface {
	Tag
	WithLifecycle
}

type BaseTag struct {
	id   TagID
	name string
}

// ID implements Tag.
func (t *BaseTag) ID() TagID {
	return t.id
}

// Name implements Tag.
func (t *BaseTag) Name() string {
	return t.name
}

var _ Tag = &BaseTag{}

func NewTag(name string) *BaseTag {
	return &BaseTag{
		id:   NewTagID(),
		name: name,
	}
}

type CategoryID string

func NewCategoryID() CategoryID {
	return CategoryID(xid.New().String())
}

type Category interface {
	WithID[CategoryID]

	Name() string
}

type PersistedCategory interface {
	Category
	WithLifecycle
}

type BaseCategory struct {
	id   CategoryID
	name string
}

// ID implements Category.
func (c *BaseCategory) ID() CategoryID {
	return c.id
}

// Name implements Category.
func (c *BaseCategory) Name() string {
	return c.name
}

var _ Category = &BaseCategory{}

func NewCategory(name string) *BaseCategory {
	return &BaseCategory{
		id:   NewCategoryID(),
		name: name,
	}
}
