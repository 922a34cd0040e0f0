package gorm

import (
	"context"

	"github.com/lumapix/lumapix/internal/core/model"
	"github.com/lumapix/lumapix/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateShareGrant implements [port.ShareStore].
func (s *Store) CreateShareGrant(ctx context.Context, grant model.ShareGrant) (model.PersistedShareGrant, error) {
	sg := fromShareGrant(grant)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(sg).Error; err != nil {
			var sqliteErr *sqlite3.Error
			if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode() == sqlite3.CONSTRAINT_UNIQUE {
				return errors.WithStack(port.ErrDuplicateToken)
			}
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errors.WithStack(port.ErrDuplicateToken)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedShareGrant{sg}, nil
}

// FindShareGrantByToken implements [port.ShareStore].
func (s *Store) FindShareGrantByToken(ctx context.Context, token string) (model.PersistedShareGrant, error) {
	var grant ShareGrant

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&grant, "token = ?", token).Error; err != nil {
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

	return &wrappedShareGrant{&grant}, nil
}

// GetShareGrantByID implements [port.ShareStore].
func (s *Store) GetShareGrantByID(ctx context.Context, id model.ShareID) (model.PersistedShareGrant, error) {
	var grant ShareGrant

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&grant, "id = ?", string(id)).Error; err != nil {
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

	return &wrappedShareGrant{&grant}, nil
}

// DeleteShareGrant implements [port.ShareStore].
func (s *Store) DeleteShareGrant(ctx context.Context, id model.ShareID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		var grant ShareGrant
		if err := db.First(&grant, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}

		if err := db.Delete(&grant).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// QueryShareGrants implements [port.ShareStore].
func (s *Store) QueryShareGrants(ctx context.Context, opts port.QueryShareGrantsOptions) ([]model.PersistedShareGrant, error) {
	var grants []*ShareGrant

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := db.Model(&ShareGrant{}).Order("created_at asc")

		if opts.OwnerID != nil {
			query = query.Where("owner_id = ?", string(*opts.OwnerID))
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

		if err := query.Find(&grants).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrappedGrants := make([]model.PersistedShareGrant, 0, len(grants))
	for _, g := range grants {
		wrappedGrants = append(wrappedGrants, &wrappedShareGrant{g})
	}

	return wrappedGrants, nil
}

var _ port.ShareStore = &Store{}
