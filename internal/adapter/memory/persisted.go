package memory

import (
	"time"

	"github.com/lumapix/lumapix/internal/core/model"
)

type persistedUser struct {
	model.User
	createdAt time.Time
	updatedAt time.Time
}

func (p *persistedUser) CreatedAt() time.Time { return p.createdAt }
func (p *persistedUser) UpdatedAt() time.Time { return p.updatedAt }

var _ model.PersistedUser = &persistedUser{}

type persistedPhoto struct {
	model.Photo
	createdAt time.Time
	updatedAt time.Time
}

func (p *persistedPhoto) CreatedAt() time.Time { return p.createdAt }
func (p *persistedPhoto) UpdatedAt() time.Time { return p.updatedAt }

var _ model.PersistedPhoto = &persistedPhoto{}

type persistedAlbum struct {
	model.Album
	createdAt time.Time
	updatedAt time.Time
}

func (p *persistedAlbum) CreatedAt() time.Time { return p.createdAt }
func (p *persistedAlbum) UpdatedAt() time.Time { return p.updatedAt }

var _ model.PersistedAlbum = &persistedAlbum{}

type persistedTag struct {
	model.Tag
	createdAt time.Time
	updatedAt time.Time
}

func (p *persistedTag) CreatedAt() time.Time { return p.createdAt }
func (p *persistedTag) UpdatedAt() time.Time { return p.updatedAt }

var _ model.PersistedTag = &persistedTag{}

type persistedCategory struct {
	model.Category
	createdAt time.Time
	updatedAt time.Time
}

func (p *persistedCategory) CreatedAt() time.Time { return p.createdAt }
func (p *persistedCategory) UpdatedAt() time.Time { return p.updatedAt }

var _ model.PersistedCategory = &persistedCategory{}

type persistedShareGrant struct {
	model.ShareGrant
	createdAt time.Time
	updatedAt time.Time
}

func (p *persistedShareGrant) CreatedAt() time.Time { return p.createdAt }
func (p *persistedShareGrant) UpdatedAt() time.Time { return p.updatedAt }

var _ model.PersistedShareGrant = &persistedShareGrant{}
