package memory

import (
	"context"
	"sync"
	"time"

	"github.com/lumapix/lumapix/internal/core/model"
	"github.com/lumapix/lumapix/internal/core/port"
	"github.com/pkg/errors"
)

type ShareStore struct {
	mu      sync.RWMutex
	grants  map[model.ShareID]*persistedShareGrant
	byToken map[string]model.ShareID
	order   []model.ShareID
}

// CreateShareGrant implements [port.ShareStore].
func (s *ShareStore) CreateShareGrant(ctx context.Context, grant model.ShareGrant) (model.PersistedShareGrant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byToken[grant.Token()]; exists {
		return nil, errors.WithStack(port.ErrDuplicateToken)
	}

	now := time.Now().UTC()
	persisted := &persistedShareGrant{
		ShareGrant: grant,
		createdAt:  now,
		updatedAt:  now,
	}

	s.grants[grant.ID()] = persisted
	s.byToken[grant.Token()] = grant.ID()
	s.order = append(s.order, grant.ID())

	return persisted, nil
}

// FindShareGrantByToken implements [port.ShareStore].
func (s *ShareStore) FindShareGrantByToken(ctx context.Context, token string) (model.PersistedShareGrant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, exists := s.byToken[token]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return s.grants[id], nil
}

// GetShareGrantByID implements [port.ShareStore].
func (s *ShareStore) GetShareGrantByID(ctx context.Context, id model.ShareID) (model.PersistedShareGrant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grant, exists := s.grants[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return grant, nil
}

// DeleteShareGrant implements [port.ShareStore].
func (s *ShareStore) DeleteShareGrant(ctx context.Context, id model.ShareID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	grant, exists := s.grants[id]
	if !exists {
		return errors.WithStack(port.ErrNotFound)
	}

	delete(s.byToken, grant.Token())
	delete(s.grants, id)

	for i, gid := range s.order {
		if gid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

// QueryShareGrants implements [port.ShareStore].
func (s *ShareStore) QueryShareGrants(ctx context.Context, opts port.QueryShareGrantsOptions) ([]model.PersistedShareGrant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grants := make([]model.PersistedShareGrant, 0, len(s.order))
	for _, id := range s.order {
		grant := s.grants[id]
		if opts.OwnerID != nil && grant.OwnerID() != *opts.OwnerID {
			continue
		}

		grants = append(grants, grant)
	}

	return paginate(grants, opts.Page, opts.Limit), nil
}

var _ port.ShareStore = &ShareStore{}

func NewShareStore() *ShareStore {
	return &ShareStore{
		grants:  map[model.ShareID]*persistedShareGrant{},
		byToken: map[string]model.ShareID{},
	}
}

func paginate[T any](items []T, page, limit *int) []T {
	if limit == nil {
		return items
	}

	offset := 0
	if page != nil {
		offset = *page * *limit
	}

	if offset >= len(items) {
		return []T{}
	}

	end := offset + *limit
	if end > len(items) {
		end = len(items)
	}

	return items[offset:end]
}
