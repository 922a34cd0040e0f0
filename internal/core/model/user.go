package model

import (
	"github.com/rs/xid"
)

type UserID string

func NewUserID() UserID {
	return UserID(xid.New().String())
}

type User interface {
	WithID[UserID]

	Username() string
	Email() string
	Bio() string
	AvatarURL() string
}

type PersistedUser interface {
	User
	WithLifecycle
}

type BaseUser struct {
	id        UserID
	username  string
	email     string
	bio       string
	avatarURL string
}

// ID implements User.
func (u *BaseUser) ID() UserID {
	return u.id
}

// Username implements User.
func (u *BaseUser) Username() string {
	return u.username
}

// Email implements User.
func (u *BaseUser) Email() string {
	return u.email
}

// Bio implements User.
func (u *BaseUser) Bio() string {
	return u.bio
}

// AvatarURL implements User.
func (u *BaseUser) AvatarURL() string {
	return u.avatarURL
}

var _ User = &BaseUser{}

func NewUser(username, email string) *BaseUser {
	return &BaseUser{
		id:       NewUserID(),
		username: username,
		email:    email,
	}
}
