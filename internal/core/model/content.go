package model

import (
	"fmt"
)

// ContentKind identifies which repository a shared content reference
// points into. The set is closed: a grant may never reference a kind
// outside of it.
type ContentKind string

const (
	ContentKindPhoto    ContentKind = "photo"
	ContentKindAlbum    ContentKind = "album"
	ContentKindTag      ContentKind = "tag"
	ContentKindCategory ContentKind = "category"
)

var ContentKinds = []ContentKind{
	ContentKindPhoto,
	ContentKindAlbum,
	ContentKindTag,
	ContentKindCategory,
}

func (k ContentKind) Valid() bool {
	switch k {
	case ContentKindPhoto, ContentKindAlbum, ContentKindTag, ContentKindCategory:
		return true
	}

	return false
}

// OwnershipChecked reports whether sharing content of this kind requires
// the grant creator to own it. Tags and categories are shared vocabulary
// across users and carry no owner; this is an intentional policy, with the
// consequence that any user may share someone else's tag or category.
func (k ContentKind) OwnershipChecked() bool {
	switch k {
	case ContentKindPhoto, ContentKindAlbum:
		return true
	}

	return false
}

// ContentRef is a polymorphic reference to one content item. The kind
// fully determines which repository the identifier resolves against.
type ContentRef struct {
	Kind ContentKind
	ID   string
}

func (r ContentRef) String() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.ID)
}

type ContentPayload interface {
	Kind() ContentKind
}

// PhotoPayload is a photo with its full set of associations.
type PhotoPayload struct {
	Photo      PersistedPhoto
	Albums     []PersistedAlbum
	Tags       []PersistedTag
	Categories []PersistedCategory
}

// Kind implements ContentPayload.
func (p *PhotoPayload) Kind() ContentKind {
	return ContentKindPhoto
}

// AlbumPayload is an album with its photos.
type AlbumPayload struct {
	Album  PersistedAlbum
	Photos []PersistedPhoto
}

// Kind implements ContentPayload.
func (p *AlbumPayload) Kind() ContentKind {
	return ContentKindAlbum
}

// TagPayload is a tag with its associated photos, restricted to the
// photos authored by the owner of the grant being resolved.
type TagPayload struct {
	Tag    PersistedTag
	Photos []PersistedPhoto
}

// Kind implements ContentPayload.
func (p *TagPayload) Kind() ContentKind {
	return ContentKindTag
}

// CategoryPayload is a category with its associated photos, restricted
// like TagPayload.
type CategoryPayload struct {
	Category PersistedCategory
	Photos   []PersistedPhoto
}

// Kind implements ContentPayload.
func (p *CategoryPayload) Kind() ContentKind {
	return ContentKindCategory
}

var (
	_ ContentPayload = &PhotoPayload{}
	_ ContentPayload = &AlbumPayload{}
	_ ContentPayload = &TagPayload{}
	_ ContentPayload = &CategoryPayload{}
)
