package model

import (
	"time"

	"github.com/rs/xid"
)

type ShareID string

func NewShareID() ShareID {
	return ShareID(xid.New().String())
}

// ShareGrant authorizes access to one content item through an opaque
// bearer token. A grant is immutable after creation: it is read on every
// access attempt and simply stops resolving once past its expiration.
// Ownership of the referenced content is verified at creation time only.
type ShareGrant interface {
	WithID[ShareID]
	WithOwner

	// Token is the sole external credential embedded in the share link.
	Token() string
	// RecipientID is the single named recipient, nil for public grants.
	RecipientID() *UserID
	Content() ContentRef
	// ExpiresAt is nil when the grant never expires.
	ExpiresAt() *time.Time
	IsPublic() bool
}

type PersistedShareGrant interface {
	ShareGrant
	WithLifecycle
}

type BaseShareGrant struct {
	id          ShareID
	token       string
	ownerID     UserID
	recipientID *UserID
	content     ContentRef
	expiresAt   *time.Time
	isPublic    bool
}

// ID implements ShareGrant.
func (g *BaseShareGrant) ID() ShareID {
	return g.id
}

// Token implements ShareGrant.
func (g *BaseShareGrant) Token() string {
	return g.token
}

// OwnerID implements ShareGrant.
func (g *BaseShareGrant) OwnerID() UserID {
	return g.ownerID
}

// RecipientID implements ShareGrant.
func (g *BaseShareGrant) RecipientID() *UserID {
	return g.recipientID
}

// Content implements ShareGrant.
func (g *BaseShareGrant) Content() ContentRef {
	return g.content
}

// ExpiresAt implements ShareGrant.
func (g *BaseShareGrant) ExpiresAt() *time.Time {
	return g.expiresAt
}

// IsPublic implements ShareGrant.
func (g *BaseShareGrant) IsPublic() bool {
	return g.isPublic
}

var _ ShareGrant = &BaseShareGrant{}

type ShareGrantOptionFunc func(g *BaseShareGrant)

func WithShareRecipient(recipientID UserID) ShareGrantOptionFunc {
	return func(g *BaseShareGrant) {
		g.recipientID = &recipientID
	}
}

func WithShareExpiration(expiresAt time.Time) ShareGrantOptionFunc {
	return func(g *BaseShareGrant) {
		g.expiresAt = &expiresAt
	}
}

func AsPublicShare() ShareGrantOptionFunc {
	return func(g *BaseShareGrant) {
		g.isPublic = true
	}
}

func NewShareGrant(ownerID UserID, content ContentRef, token string, funcs ...ShareGrantOptionFunc) *BaseShareGrant {
	grant := &BaseShareGrant{
		id:      NewShareID(),
		token:   token,
		ownerID: ownerID,
		content: content,
	}
	for _, fn := range funcs {
		fn(grant)
	}
	return grant
}

// ShareGrantExpired reports whether the grant is past its expiration at
// the given instant. Grants without an expiration never expire.
func ShareGrantExpired(grant ShareGrant, now time.Time) bool {
	expiresAt := grant.ExpiresAt()
	if expiresAt == nil {
		return false
	}

	return now.After(*expiresAt)
}
