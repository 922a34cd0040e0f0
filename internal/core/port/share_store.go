package port

import (
	"context"

	"github.com/lumapix/lumapix/internal/core/model"
)

type ShareStore interface {
	// CreateShareGrant persists a new share grant, or returns
	// port.ErrDuplicateToken if the token collides with an existing
	// grant. Collisions are astronomically rare; the caller should retry
	// with a freshly issued token.
	CreateShareGrant(ctx context.Context, grant model.ShareGrant) (model.PersistedShareGrant, error)

	// FindShareGrantByToken retrieves a grant by its token, or returns
	// port.ErrNotFound
	FindShareGrantByToken(ctx context.Context, token string) (model.PersistedShareGrant, error)

	// GetShareGrantByID returns a persisted grant by its id
	GetShareGrantByID(ctx context.Context, id model.ShareID) (model.PersistedShareGrant, error)

	// DeleteShareGrant deletes a grant by its id
	DeleteShareGrant(ctx context.Context, id model.ShareID) error

	// QueryShareGrants queries the existing grants given the query options
	QueryShareGrants(ctx context.Context, opts QueryShareGrantsOptions) ([]model.PersistedShareGrant, error)
}

type QueryShareGrantsOptions struct {
	OwnerID *model.UserID

	Page  *int
	Limit *int
}
