package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/lumapix/lumapix/internal/core/model"
	"github.com/lumapix/lumapix/internal/core/port"
	"github.com/pkg/errors"
)

type LibraryStore struct {
	mu sync.RWMutex

	photos     map[model.PhotoID]*persistedPhoto
	photoOrder []model.PhotoID
	assocs     map[model.PhotoID]port.PhotoAssociations

	albums     map[model.AlbumID]*persistedAlbum
	albumOrder []model.AlbumID

	tags       map[model.TagID]*persistedTag
	categories map[model.CategoryID]*persistedCategory
}

// SavePhoto implements [port.LibraryStore].
func (s *LibraryStore) SavePhoto(ctx context.Context, photo model.Photo, assocs port.PhotoAssociations) (model.PersistedPhoto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	persisted, exists := s.photos[photo.ID()]
	if exists {
		persisted.Photo = photo
		persisted.updatedAt = now
	} else {
		persisted = &persistedPhoto{
			Photo:     photo,
			createdAt: now,
			updatedAt: now,
		}
		s.photos[photo.ID()] = persisted
		s.photoOrder = append(s.photoOrder, photo.ID())
	}

	s.assocs[photo.ID()] = assocs

	return persisted, nil
}

// GetPhotoByID implements [port.LibraryStore].
func (s *LibraryStore) GetPhotoByID(ctx context.Context, id model.PhotoID) (model.PersistedPhoto, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	photo, exists := s.photos[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return photo, nil
}

// GetPhotoAggregate implements [port.LibraryStore].
func (s *LibraryStore) GetPhotoAggregate(ctx context.Context, id model.PhotoID) (*model.PhotoPayload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	photo, exists := s.photos[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	payload := &model.PhotoPayload{
		Photo:      photo,
		Albums:     []model.PersistedAlbum{},
		Tags:       []model.PersistedTag{},
		Categories: []model.PersistedCategory{},
	}

	assocs := s.assocs[id]
	for _, albumID := range assocs.Albums {
		if album, exists := s.albums[albumID]; exists {
			payload.Albums = append(payload.Albums, album)
		}
	}
	for _, tagID := range assocs.Tags {
		if tag, exists := s.tags[tagID]; exists {
			payload.Tags = append(payload.Tags, tag)
		}
	}
	for _, categoryID := range assocs.Categories {
		if category, exists := s.categories[categoryID]; exists {
			payload.Categories = append(payload.Categories, category)
		}
	}

	return payload, nil
}

// QueryPhotos implements [port.LibraryStore].
func (s *LibraryStore) QueryPhotos(ctx context.Context, opts port.QueryPhotosOptions) ([]model.PersistedPhoto, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	photos := make([]model.PersistedPhoto, 0, len(s.photoOrder))
	for _, id := range s.photoOrder {
		photo := s.photos[id]
		if opts.OwnerID != nil && photo.OwnerID() != *opts.OwnerID {
			continue
		}

		photos = append(photos, photo)
	}

	total := int64(len(photos))

	return paginate(photos, opts.Page, opts.Limit), total, nil
}

// DeletePhoto implements [port.LibraryStore].
func (s *LibraryStore) DeletePhoto(ctx context.Context, id model.PhotoID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.photos[id]; !exists {
		return errors.WithStack(port.ErrNotFound)
	}

	delete(s.photos, id)
	delete(s.assocs, id)

	for i, pid := range s.photoOrder {
		if pid == id {
			s.photoOrder = append(s.photoOrder[:i], s.photoOrder[i+1:]...)
			break
		}
	}

	return nil
}

// SaveAlbum implements [port.LibraryStore].
func (s *LibraryStore) SaveAlbum(ctx context.Context, album model.Album) (model.PersistedAlbum, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	persisted, exists := s.albums[album.ID()]
	if exists {
		persisted.Album = album
		persisted.updatedAt = now
	} else {
		persisted = &persistedAlbum{
			Album:     album,
			createdAt: now,
			updatedAt: now,
		}
		s.albums[album.ID()] = persisted
		s.albumOrder = append(s.albumOrder, album.ID())
	}

	return persisted, nil
}

// GetAlbumByID implements [port.LibraryStore].
func (s *LibraryStore) GetAlbumByID(ctx context.Context, id model.AlbumID) (model.PersistedAlbum, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	album, exists := s.albums[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return album, nil
}

// GetAlbumAggregate implements [port.LibraryStore].
func (s *LibraryStore) GetAlbumAggregate(ctx context.Context, id model.AlbumID) (*model.AlbumPayload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	album, exists := s.albums[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	payload := &model.AlbumPayload{
		Album:  album,
		Photos: []model.PersistedPhoto{},
	}

	for _, photoID := range s.photoOrder {
		if slices.Contains(s.assocs[photoID].Albums, id) {
			payload.Photos = append(payload.Photos, s.photos[photoID])
		}
	}

	return payload, nil
}

// QueryAlbums implements [port.LibraryStore].
func (s *LibraryStore) QueryAlbums(ctx context.Context, opts port.QueryAlbumsOptions) ([]model.PersistedAlbum, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	albums := make([]model.PersistedAlbum, 0, len(s.albumOrder))
	for _, id := range s.albumOrder {
		album := s.albums[id]
		if opts.OwnerID != nil && album.OwnerID() != *opts.OwnerID {
			continue
		}

		albums = append(albums, album)
	}

	total := int64(len(albums))

	return paginate(albums, opts.Page, opts.Limit), total, nil
}

// FindOrCreateTag implements [port.LibraryStore].
func (s *LibraryStore) FindOrCreateTag(ctx context.Context, name string) (model.PersistedTag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tag := range s.tags {
		if tag.Name() == name {
			return tag, nil
		}
	}

	now := time.Now().UTC()
	tag := &persistedTag{
		Tag:       model.NewTag(name),
		createdAt: now,
		updatedAt: now,
	}
	s.tags[tag.ID()] = tag

	return tag, nil
}

// GetTagByID implements [port.LibraryStore].
func (s *LibraryStore) GetTagByID(ctx context.Context, id model.TagID) (model.PersistedTag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tag, exists := s.tags[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return tag, nil
}

// GetTagAggregate implements [port.LibraryStore].
func (s *LibraryStore) GetTagAggregate(ctx context.Context, id model.TagID, authorID model.UserID) (*model.TagPayload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tag, exists := s.tags[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	payload := &model.TagPayload{
		Tag:    tag,
		Photos: []model.PersistedPhoto{},
	}

	for _, photoID := range s.photoOrder {
		photo := s.photos[photoID]
		if photo.OwnerID() != authorID {
			continue
		}
		if slices.Contains(s.assocs[photoID].Tags, id) {
			payload.Photos = append(payload.Photos, photo)
		}
	}

	return payload, nil
}

// ListTags implements [port.LibraryStore].
func (s *LibraryStore) ListTags(ctx context.Context) ([]model.PersistedTag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tags := make([]model.PersistedTag, 0, len(s.tags))
	for _, tag := range s.tags {
		tags = append(tags, tag)
	}

	slices.SortFunc(tags, func(a, b model.PersistedTag) int {
		return strings.Compare(a.Name(), b.Name())
	})

	return tags, nil
}

// FindOrCreateCategory implements [port.LibraryStore].
func (s *LibraryStore) FindOrCreateCategory(ctx context.Context, name string) (model.PersistedCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, category := range s.categories {
		if category.Name() == name {
			return category, nil
		}
	}

	now := time.Now().UTC()
	category := &persistedCategory{
		Category:  model.NewCategory(name),
		createdAt: now,
		updatedAt: now,
	}
	s.categories[category.ID()] = category

	return category, nil
}

// GetCategoryByID implements [port.LibraryStore].
func (s *LibraryStore) GetCategoryByID(ctx context.Context, id model.CategoryID) (model.PersistedCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, exists := s.categories[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return category, nil
}

// GetCategoryAggregate implements [port.LibraryStore].
func (s *LibraryStore) GetCategoryAggregate(ctx context.Context, id model.CategoryID, authorID model.UserID) (*model.CategoryPayload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, exists := s.categories[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	payload := &model.CategoryPayload{
		Category: category,
		Photos:   []model.PersistedPhoto{},
	}

	for _, photoID := range s.photoOrder {
		photo := s.photos[photoID]
		if photo.OwnerID() != authorID {
			continue
		}
		if slices.Contains(s.assocs[photoID].Categories, id) {
			payload.Photos = append(payload.Photos, photo)
		}
	}

	return payload, nil
}

// ListCategories implements [port.LibraryStore].
func (s *LibraryStore) ListCategories(ctx context.Context) ([]model.PersistedCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]model.PersistedCategory, 0, len(s.categories))
	for _, category := range s.categories {
		categories = append(categories, category)
	}

	slices.SortFunc(categories, func(a, b model.PersistedCategory) int {
		return strings.Compare(a.Name(), b.Name())
	})

	return categories, nil
}

var _ port.LibraryStore = &LibraryStore{}

func NewLibraryStore() *LibraryStore {
	return &LibraryStore{
		photos:     map[model.PhotoID]*persistedPhoto{},
		assocs:     map[model.PhotoID]port.PhotoAssociations{},
		albums:     map[model.AlbumID]*persistedAlbum{},
		tags:       map[model.TagID]*persistedTag{},
		categories: map[model.CategoryID]*persistedCategory{},
	}
}
