package gorm

import (
	"time"

	"github.com/lumapix/lumapix/internal/core/model"
)

type User struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Username string `gorm:"unique"`
	Email    string `gorm:"unique"`

	PasswordHash []byte

	Bio       string
	AvatarURL string
}

type wrappedUser struct {
	u *User
}

// ID implements [model.User].
func (w *wrappedUser) ID() model.UserID {
	return model.UserID(w.u.ID)
}

// Username implements [model.User].
func (w *wrappedUser) Username() string {
	return w.u.Username
}

// Email implements [model.User].
func (w *wrappedUser) Email() string {
	return w.u.Email
}

// Bio implements [model.User].
func (w *wrappedUser) Bio() string {
	return w.u.Bio
}

// AvatarURL implements [model.User].
func (w *wrappedUser) AvatarURL() string {
	return w.u.AvatarURL
}

// CreatedAt implements [model.PersistedUser].
func (w *wrappedUser) CreatedAt() time.Time {
	return w.u.CreatedAt
}

// UpdatedAt implements [model.PersistedUser].
func (w *wrappedUser) UpdatedAt() time.Time {
	return w.u.UpdatedAt
}

var _ model.PersistedUser = &wrappedUser{}

func fromUser(u model.User, passwordHash []byte) *User {
	return &User{
		ID:           string(u.ID()),
		Username:     u.Username(),
		Email:        u.Email(),
		PasswordHash: passwordHash,
		Bio:          u.Bio(),
		AvatarURL:    u.AvatarURL(),
	}
}
