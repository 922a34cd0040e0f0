package port

import (
	"context"

	"github.com/lumapix/lumapix/internal/core/model"
)

// LibraryStore persists the four content kinds a share grant can point
// to, along with their associations.
type LibraryStore interface {
	// SavePhoto saves a photo and replaces its album/tag/category
	// associations
	SavePhoto(ctx context.Context, photo model.Photo, assocs PhotoAssociations) (model.PersistedPhoto, error)
	// GetPhotoByID returns a photo by its id, or ErrNotFound
	GetPhotoByID(ctx context.Context, id model.PhotoID) (model.PersistedPhoto, error)
	// GetPhotoAggregate returns a photo with its albums, tags and
	// categories, or ErrNotFound
	GetPhotoAggregate(ctx context.Context, id model.PhotoID) (*model.PhotoPayload, error)
	// QueryPhotos queries photos given the query options
	QueryPhotos(ctx context.Context, opts QueryPhotosOptions) ([]model.PersistedPhoto, int64, error)
	// DeletePhoto deletes a photo by its id
	DeletePhoto(ctx context.Context, id model.PhotoID) error

	// SaveAlbum saves an album
	SaveAlbum(ctx context.Context, album model.Album) (model.PersistedAlbum, error)
	// GetAlbumByID returns an album by its id, or ErrNotFound
	GetAlbumByID(ctx context.Context, id model.AlbumID) (model.PersistedAlbum, error)
	// GetAlbumAggregate returns an album with its photos, or ErrNotFound
	GetAlbumAggregate(ctx context.Context, id model.AlbumID) (*model.AlbumPayload, error)
	// QueryAlbums queries albums given the query options
	QueryAlbums(ctx context.Context, opts QueryAlbumsOptions) ([]model.PersistedAlbum, int64, error)

	// FindOrCreateTag returns the tag with the given name, creating it
	// if necessary. Tag names are unique.
	FindOrCreateTag(ctx context.Context, name string) (model.PersistedTag, error)
	// GetTagByID returns a tag by its id, or ErrNotFound
	GetTagByID(ctx context.Context, id model.TagID) (model.PersistedTag, error)
	// GetTagAggregate returns a tag with its associated photos restricted
	// to the ones authored by the given user, or ErrNotFound
	GetTagAggregate(ctx context.Context, id model.TagID, authorID model.UserID) (*model.TagPayload, error)
	// ListTags lists all tags
	ListTags(ctx context.Context) ([]model.PersistedTag, error)

	// FindOrCreateCategory returns the category with the given name,
	// creating it if necessary. Category names are unique.
	FindOrCreateCategory(ctx context.Context, name string) (model.PersistedCategory, error)
	// GetCategoryByID returns a category by its id, or ErrNotFound
	GetCategoryByID(ctx context.Context, id model.CategoryID) (model.PersistedCategory, error)
	// GetCategoryAggregate returns a category with its associated photos
	// restricted to the ones authored by the given user, or ErrNotFound
	GetCategoryAggregate(ctx context.Context, id model.CategoryID, authorID model.UserID) (*model.CategoryPayload, error)
	// ListCategories lists all categories
	ListCategories(ctx context.Context) ([]model.PersistedCategory, error)
}

type PhotoAssociations struct {
	Albums     []model.AlbumID
	Tags       []model.TagID
	Categories []model.CategoryID
}

type QueryPhotosOptions struct {
	OwnerID *model.UserID

	Page  *int
	Limit *int
}

type QueryAlbumsOptions struct {
	OwnerID *model.UserID

	Page  *int
	Limit *int
}
