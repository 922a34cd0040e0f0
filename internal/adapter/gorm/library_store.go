package gorm

import (
	"context"

	"github.com/lumapix/lumapix/internal/core/model"
	"github.com/lumapix/lumapix/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SavePhoto implements [port.LibraryStore].
func (s *Store) SavePhoto(ctx context.Context, photo model.Photo, assocs port.PhotoAssociations) (model.PersistedPhoto, error) {
	var saved Photo

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		p := fromPhoto(photo)

		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Omit("Owner", "Albums", "Tags", "Categories").Create(p).Error; err != nil {
			return errors.WithStack(err)
		}

		albums := make([]*Album, 0, len(assocs.Albums))
		for _, id := range assocs.Albums {
			albums = append(albums, &Album{ID: string(id)})
		}
		if err := db.Model(p).Association("Albums").Replace(albums); err != nil {
			return errors.WithStack(err)
		}

		tags := make([]*Tag, 0, len(assocs.Tags))
		for _, id := range assocs.Tags {
			tags = append(tags, &Tag{ID: string(id)})
		}
		if err := db.Model(p).Association("Tags").Replace(tags); err != nil {
			return errors.WithStack(err)
		}

		categories := make([]*Category, 0, len(assocs.Categories))
		for _, id := range assocs.Categories {
			categories = append(categories, &Category{ID: string(id)})
		}
		if err := db.Model(p).Association("Categories").Replace(categories); err != nil {
			return errors.WithStack(err)
		}

		if err := db.First(&saved, "id = ?", p.ID).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedPhoto{&saved}, nil
}

// GetPhotoByID implements [port.LibraryStore].
func (s *Store) GetPhotoByID(ctx context.Context, id model.PhotoID) (model.PersistedPhoto, error) {
	var photo Photo

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&photo, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedPhoto{&photo}, nil
}

// GetPhotoAggregate implements [port.LibraryStore].
func (s *Store) GetPhotoAggregate(ctx context.Context, id model.PhotoID) (*model.PhotoPayload, error) {
	var photo Photo

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Preload("Albums").Preload("Tags").Preload("Categories").First(&photo, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	payload := &model.PhotoPayload{
		Photo:      &wrappedPhoto{&photo},
		Albums:     make([]model.PersistedAlbum, 0, len(photo.Albums)),
		Tags:       make([]model.PersistedTag, 0, len(photo.Tags)),
		Categories: make([]model.PersistedCategory, 0, len(photo.Categories)),
	}

	for _, a := range photo.Albums {
		payload.Albums = append(payload.Albums, &wrappedAlbum{a})
	}
	for _, t := range photo.Tags {
		payload.Tags = append(payload.Tags, &wrappedTag{t})
	}
	for _, c := range photo.Categories {
		payload.Categories = append(payload.Categories, &wrappedCategory{c})
	}

	return payload, nil
}

// QueryPhotos implements [port.LibraryStore].
func (s *Store) QueryPhotos(ctx context.Context, opts port.QueryPhotosOptions) ([]model.PersistedPhoto, int64, error) {
	var (
		photos []*Photo
		total  int64
	)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := db.Model(&Photo{}).Order("created_at asc")

		if opts.OwnerID != nil {
			query = query.Where("owner_id = ?", string(*opts.OwnerID))
		}

		if err := query.Count(&total).Error; err != nil {
			return errors.WithStack(err)
		}

		if opts.Page != nil {
			limit := 10
			if opts.Limit != nil {
				limit = *opts.Limit
			}
			query = query.Offset(*opts.Page * limit)
		}

		if opts.Limit != nil {
			query = query.Limit(*opts.Limit)
		}

		if err := query.Find(&photos).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	wrappedPhotos := make([]model.PersistedPhoto, 0, len(photos))
	for _, p := range photos {
		wrappedPhotos = append(wrappedPhotos, &wrappedPhoto{p})
	}

	return wrappedPhotos, total, nil
}

// DeletePhoto implements [port.LibraryStore].
func (s *Store) DeletePhoto(ctx context.Context, id model.PhotoID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		var photo Photo
		if err := db.First(&photo, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}

		if err := db.Select(clause.Associations).Delete(&photo).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// SaveAlbum implements [port.LibraryStore].
func (s *Store) SaveAlbum(ctx context.Context, album model.Album) (model.PersistedAlbum, error) {
	var saved Album

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		a := fromAlbum(album)

		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Omit("Owner", "Photos").Create(a).Error; err != nil {
			return errors.WithStack(err)
		}

		if err := db.First(&saved, "id = ?", a.ID).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedAlbum{&saved}, nil
}

// GetAlbumByID implements [port.LibraryStore].
func (s *Store) GetAlbumByID(ctx context.Context, id model.AlbumID) (model.PersistedAlbum, error) {
	var album Album

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&album, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedAlbum{&album}, nil
}

// GetAlbumAggregate implements [port.LibraryStore].
func (s *Store) GetAlbumAggregate(ctx context.Context, id model.AlbumID) (*model.AlbumPayload, error) {
	var album Album

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("photos.uploaded_at asc")
		}).First(&album, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	payload := &model.AlbumPayload{
		Album:  &wrappedAlbum{&album},
		Photos: make([]model.PersistedPhoto, 0, len(album.Photos)),
	}

	for _, p := range album.Photos {
		payload.Photos = append(payload.Photos, &wrappedPhoto{p})
	}

	return payload, nil
}

// QueryAlbums implements [port.LibraryStore].
func (s *Store) QueryAlbums(ctx context.Context, opts port.QueryAlbumsOptions) ([]model.PersistedAlbum, int64, error) {
	var (
		albums []*Album
		total  int64
	)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := db.Model(&Album{}).Order("created_at asc")

		if opts.OwnerID != nil {
			query = query.Where("owner_id = ?", string(*opts.OwnerID))
		}

		if err := query.Count(&total).Error; err != nil {
			return errors.WithStack(err)
		}

		if opts.Page != nil {
			limit := 10
			if opts.Limit != nil {
				limit = *opts.Limit
			}
			query = query.Offset(*opts.Page * limit)
		}

		if opts.Limit != nil {
			query = query.Limit(*opts.Limit)
		}

		if err := query.Find(&albums).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	wrappedAlbums := make([]model.PersistedAlbum, 0, len(albums))
	for _, a := range albums {
		wrappedAlbums = append(wrappedAlbums, &wrappedAlbum{a})
	}

	return wrappedAlbums, total, nil
}

// FindOrCreateTag implements [port.LibraryStore].
func (s *Store) FindOrCreateTag(ctx context.Context, name string) (model.PersistedTag, error) {
	var tag Tag

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		err := db.Where("name = ?", name).
			Attrs(&Tag{
				ID:   string(model.NewTagID()),
				Name: name,
			}).
			FirstOrCreate(&tag).Error
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedTag{&tag}, nil
}

// GetTagByID implements [port.LibraryStore].
func (s *Store) GetTagByID(ctx context.Context, id model.TagID) (model.PersistedTag, error) {
	var tag Tag

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&tag, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedTag{&tag}, nil
}

// GetTagAggregate implements [port.LibraryStore].
func (s *Store) GetTagAggregate(ctx context.Context, id model.TagID, authorID model.UserID) (*model.TagPayload, error) {
	var (
		tag    Tag
		photos []*Photo
	)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&tag, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}

		err := db.Model(&Photo{}).
			Joins("join photo_tags on photo_tags.photo_id = photos.id").
			Where("photo_tags.tag_id = ? and photos.owner_id = ?", string(id), string(authorID)).
			Order("photos.uploaded_at asc").
			Find(&photos).Error
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	payload := &model.TagPayload{
		Tag:    &wrappedTag{&tag},
		Photos: make([]model.PersistedPhoto, 0, len(photos)),
	}

	for _, p := range photos {
		payload.Photos = append(payload.Photos, &wrappedPhoto{p})
	}

	return payload, nil
}

// ListTags implements [port.LibraryStore].
func (s *Store) ListTags(ctx context.Context) ([]model.PersistedTag, error) {
	var tags []*Tag

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Order("name asc").Find(&tags).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrappedTags := make([]model.PersistedTag, 0, len(tags))
	for _, t := range tags {
		wrappedTags = append(wrappedTags, &wrappedTag{t})
	}

	return wrappedTags, nil
}

// FindOrCreateCategory implements [port.LibraryStore].
func (s *Store) FindOrCreateCategory(ctx context.Context, name string) (model.PersistedCategory, error) {
	var category Category

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		err := db.Where("name = ?", name).
			Attrs(&Category{
				ID:   string(model.NewCategoryID()),
				Name: name,
			}).
			FirstOrCreate(&category).Error
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedCategory{&category}, nil
}

// GetCategoryByID implements [port.LibraryStore].
func (s *Store) GetCategoryByID(ctx context.Context, id model.CategoryID) (model.PersistedCategory, error) {
	var category Category

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&category, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedCategory{&category}, nil
}

// GetCategoryAggregate implements [port.LibraryStore].
func (s *Store) GetCategoryAggregate(ctx context.Context, id model.CategoryID, authorID model.UserID) (*model.CategoryPayload, error) {
	var (
		category Category
		photos   []*Photo
	)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&category, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}

		err := db.Model(&Photo{}).
			Joins("join photo_categories on photo_categories.photo_id = photos.id").
			Where("photo_categories.category_id = ? and photos.owner_id = ?", string(id), string(authorID)).
			Order("photos.uploaded_at asc").
			Find(&photos).Error
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	payload := &model.CategoryPayload{
		Category: &wrappedCategory{&category},
		Photos:   make([]model.PersistedPhoto, 0, len(photos)),
	}

	for _, p := range photos {
		payload.Photos = append(payload.Photos, &wrappedPhoto{p})
	}

	return payload, nil
}

// ListCategories implements [port.LibraryStore].
func (s *Store) ListCategories(ctx context.Context) ([]model.PersistedCategory, error) {
	var categories []*Category

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Order("name asc").Find(&categories).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrappedCategories := make([]model.PersistedCategory, 0, len(categories))
	for _, c := range categories {
		wrappedCategories = append(wrappedCategories, &wrappedCategory{c})
	}

	return wrappedCategories, nil
}

var _ port.LibraryStore = &Store{}
