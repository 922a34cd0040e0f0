package gorm

import (
	"context"

	"github.com/lumapix/lumapix/internal/core/model"
	"github.com/lumapix/lumapix/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser implements [port.UserStore].
func (s *Store) CreateUser(ctx context.Context, user model.User, passwordHash []byte) (model.PersistedUser, error) {
	u := fromUser(user, passwordHash)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		var count int64
		err := db.Model(&User{}).
			Where("email = ? or username = ?", u.Email, u.Username).
			Count(&count).Error
		if err != nil {
			return errors.WithStack(err)
		}

		if count > 0 {
			return errors.WithStack(port.ErrAlreadyExists)
		}

		if err := db.Create(u).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedUser{u}, nil
}

// GetUserByID implements [port.UserStore].
func (s *Store) GetUserByID(ctx context.Context, id model.UserID) (model.PersistedUser, error) {
	var user User

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&user, "id = ?", string(id)).Error; err != nil {
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

	return &wrappedUser{&user}, nil
}

// FindUserByEmail implements [port.UserStore].
func (s *Store) FindUserByEmail(ctx context.Context, email string) (model.PersistedUser, error) {
	var user User

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&user, "email = ?", email).Error; err != nil {
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

	return &wrappedUser{&user}, nil
}

// Authenticate implements [port.UserStore].
func (s *Store) Authenticate(ctx context.Context, email, password string) (model.PersistedUser, error) {
	var user User

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&user, "email = ?", email).Error; err != nil {
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

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, errors.WithStack(port.ErrNotAuthorized)
	}

	return &wrappedUser{&user}, nil
}

var _ port.UserStore = &Store{}
