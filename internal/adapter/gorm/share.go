package gorm

import (
	"time"

	"github.com/lumapix/lumapix/internal/core/model"
)

type ShareGrant struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Token string `gorm:"unique"`

	Owner   *User
	OwnerID string `gorm:"index"`

	Recipient   *User `gorm:"foreignKey:RecipientID"`
	RecipientID *string

	// Polymorphic reference: ContentKind selects the table ContentID
	// resolves against. No foreign key on purpose.
	ContentKind string `gorm:"index:idx_share_grants_content"`
	ContentID   string `gorm:"index:idx_share_grants_content"`

	ExpiresAt *time.Time
	IsPublic  bool
}

type wrappedShareGrant struct {
	g *ShareGrant
}

// ID implements [model.ShareGrant].
func (w *wrappedShareGrant) ID() model.ShareID {
	return model.ShareID(w.g.ID)
}

// Token implements [model.ShareGrant].
func (w *wrappedShareGrant) Token() string {
	return w.g.Token
}

// OwnerID implements [model.ShareGrant].
func (w *wrappedShareGrant) OwnerID() model.UserID {
	return model.UserID(w.g.OwnerID)
}

// RecipientID implements [model.ShareGrant].
func (w *wrappedShareGrant) RecipientID() *model.UserID {
	if w.g.RecipientID == nil {
		return nil
	}

	recipientID := model.UserID(*w.g.RecipientID)
	return &recipientID
}

// Content implements [model.ShareGrant].
func (w *wrappedShareGrant) Content() model.ContentRef {
	return model.ContentRef{
		Kind: model.ContentKind(w.g.ContentKind),
		ID:   w.g.ContentID,
	}
}

// ExpiresAt implements [model.ShareGrant].
func (w *wrappedShareGrant) ExpiresAt() *time.Time {
	return w.g.ExpiresAt
}

// IsPublic implements [model.ShareGrant].
func (w *wrappedShareGrant) IsPublic() bool {
	return w.g.IsPublic
}

// CreatedAt implements [model.PersistedShareGrant].
func (w *wrappedShareGrant) CreatedAt() time.Time {
	return w.g.CreatedAt
}

// UpdatedAt implements [model.PersistedShareGrant].
func (w *wrappedShareGrant) UpdatedAt() time.Time {
	return w.g.UpdatedAt
}

var _ model.PersistedShareGrant = &wrappedShareGrant{}

func fromShareGrant(g model.ShareGrant) *ShareGrant {
	grant := &ShareGrant{
		ID:          string(g.ID()),
		Token:       g.Token(),
		OwnerID:     string(g.OwnerID()),
		ContentKind: string(g.Content().Kind),
		ContentID:   g.Content().ID,
		ExpiresAt:   g.ExpiresAt(),
		IsPublic:    g.IsPublic(),
	}

	if recipientID := g.RecipientID(); recipientID != nil {
		id := string(*recipientID)
		grant.RecipientID = &id
	}

	return grant
}
