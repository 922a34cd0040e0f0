package model

import (
	"time"

	"github.com/rs/xid"
)

type PhotoID string

func NewPhotoID() PhotoID {
	return PhotoID(xid.New().String())
}

type Photo interface {
	WithID[PhotoID]
	WithOwner

	Filename() string
	MimeType() string
	Size() int64
	Title() string
	Description() string
	Location() string
	Equipment() string
	UploadedAt() time.Time
}

type PersistedPhoto interface {
	Photo
	WithLifecycle
}

type BasePhoto struct {
	id          PhotoID
	ownerID     UserID
	filename    string
	mimeType    string
	size        int64
	title       string
	description string
	location    string
	equipment   string
	uploadedAt  time.Time
}

// ID implements Photo.
func (p *BasePhoto) ID() PhotoID {
	return p.id
}

// OwnerID implements Photo.
func (p *BasePhoto) OwnerID() UserID {
	return p.ownerID
}

// Filename implements Photo.
func (p *BasePhoto) Filename() string {
	return p.filename
}

// MimeType implements Photo.
func (p *BasePhoto) MimeType() string {
	return p.mimeType
}

// Size implements Photo.
func (p *BasePhoto) Size() int64 {
	return p.size
}

// Title implements Photo.
func (p *BasePhoto) Title() string {
	return p.title
}

// Description implements Photo.
func (p *BasePhoto) Description() string {
	return p.description
}

// Location implements Photo.
func (p *BasePhoto) Location() string {
	return p.location
}

// Equipment implements Photo.
func (p *BasePhoto) Equipment() string {
	return p.equipment
}

// UploadedAt implements Photo.
func (p *BasePhoto) UploadedAt() time.Time {
	return p.uploadedAt
}

var _ Photo = &BasePhoto{}

type PhotoOptionFunc func(p *BasePhoto)

func WithPhotoTitle(title string) PhotoOptionFunc {
	return func(p *BasePhoto) {
		p.title = title
	}
}

func WithPhotoDescription(description string) PhotoOptionFunc {
	return func(p *BasePhoto) {
		p.description = description
	}
}

func WithPhotoLocation(location string) PhotoOptionFunc {
	return func(p *BasePhoto) {
		p.location = location
	}
}

func WithPhotoEquipment(equipment string) PhotoOptionFunc {
	return func(p *BasePhoto) {
		p.equipment = equipment
	}
}

func NewPhoto(ownerID UserID, filename, mimeType string, size int64, funcs ...PhotoOptionFunc) *BasePhoto {
	photo := &BasePhoto{
		id:         NewPhotoID(),
		ownerID:    ownerID,
		filename:   filename,
		mimeType:   mimeType,
		size:       size,
		uploadedAt: time.Now().UTC(),
	}
	for _, fn := range funcs {
		fn(photo)
	}
	return photo
}
