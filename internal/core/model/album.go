package model

import (
	"github.com/rs/xid"
)

type AlbumID string

func NewAlbumID() AlbumID {
	return AlbumID(xid.New().String())
}

type Album interface {
	WithID[AlbumID]
	WithOwner

	Name() string
	Description() string
}

type PersistedAlbum interface {
	Album
	WithLifecycle
}

type BaseAlbum struct {
	id          AlbumID
	ownerID     UserID
	name        string
	description string
}

// ID implements Album.
func (a *BaseAlbum) ID() AlbumID {
	return a.id
}

// OwnerID implements Album.
func (a *BaseAlbum) OwnerID() UserID {
	return a.ownerID
}

// Name implements Album.
func (a *BaseAlbum) Name() string {
	return a.name
}

// Description implements Album.
func (a *BaseAlbum) Description() string {
	return a.description
}

var _ Album = &BaseAlbum{}

func NewAlbum(ownerID UserID, name, description string) *BaseAlbum {
	return &BaseAlbum{
		id:          NewAlbumID(),
		ownerID:     ownerID,
		name:        name,
		description: description,
	}
}
