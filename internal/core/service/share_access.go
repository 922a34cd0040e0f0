package service

import (
	"context"
	"time"

	"github.com/lumapix/lumapix/internal/core/model"
	"github.com/lumapix/lumapix/internal/core/port"
	"github.com/pkg/errors"
)

type Decision string

const (
	DecisionNotFound Decision = "not_found"
	DecisionExpired  Decision = "expired"
	DecisionDenied   Decision = "denied"
	DecisionAllowed  Decision = "allowed"
)

// AccessResult is the outcome of resolving a token. Grant is set for
// every decision except DecisionNotFound; Payload only for
// DecisionAllowed.
type AccessResult struct {
	Decision Decision
	Grant    model.PersistedShareGrant
	Payload  model.ContentPayload
}

// ShareAccess turns an incoming token plus an optional authenticated
// identity into an authorization decision and, when allowed, the content
// payload. The decision is computed per request and never persisted.
type ShareAccess struct {
	shares   port.ShareStore
	resolver *ContentResolver
	now      func() time.Time
}

// Access applies the decision algorithm in order: grant lookup,
// expiration against wall-clock time, public flag, then identity against
// owner and recipient. A non-nil error is only returned on dependency
// failures.
func (a *ShareAccess) Access(ctx context.Context, token string, identity *model.UserID) (*AccessResult, error) {
	grant, err := a.shares.FindShareGrantByToken(ctx, token)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return &AccessResult{Decision: DecisionNotFound}, nil
		}

		return nil, errors.WithStack(err)
	}

	if model.ShareGrantExpired(grant, a.now()) {
		return &AccessResult{Decision: DecisionExpired, Grant: grant}, nil
	}

	if !a.allowed(grant, identity) {
		return &AccessResult{Decision: DecisionDenied, Grant: grant}, nil
	}

	payload, err := a.resolver.Resolve(ctx, grant.Content(), grant.OwnerID())
	if err != nil {
		// The grant outlived its content: report not found rather than
		// leaking that a grant exists for a deleted item.
		if errors.Is(err, port.ErrNotFound) {
			return &AccessResult{Decision: DecisionNotFound, Grant: grant}, nil
		}

		return nil, errors.WithStack(err)
	}

	return &AccessResult{Decision: DecisionAllowed, Grant: grant, Payload: payload}, nil
}

func (a *ShareAccess) allowed(grant model.PersistedShareGrant, identity *model.UserID) bool {
	if grant.IsPublic() {
		return true
	}

	if identity == nil {
		return false
	}

	if *identity == grant.OwnerID() {
		return true
	}

	if recipientID := grant.RecipientID(); recipientID != nil && *identity == *recipientID {
		return true
	}

	return false
}

type ShareAccessOptionFunc func(a *ShareAccess)

func WithClock(now func() time.Time) ShareAccessOptionFunc {
	return func(a *ShareAccess) {
		a.now = now
	}
}

func NewShareAccess(shares port.ShareStore, resolver *ContentResolver, funcs ...ShareAccessOptionFunc) *ShareAccess {
	access := &ShareAccess{
		shares:   shares,
		resolver: resolver,
		now:      time.Now,
	}
	for _, fn := range funcs {
		fn(access)
	}
	return access
}
