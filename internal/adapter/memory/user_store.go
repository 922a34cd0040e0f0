package memory

import (
	"context"
	"sync"
	"time"

	"github.com/lumapix/lumapix/internal/core/model"
	"github.com/lumapix/lumapix/internal/core/port"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type UserStore struct {
	mu        sync.RWMutex
	users     map[model.UserID]*persistedUser
	passwords map[model.UserID][]byte
}

// CreateUser implements [port.UserStore].
func (s *UserStore) CreateUser(ctx context.Context, user model.User, passwordHash []byte) (model.PersistedUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email() == user.Email() || u.Username() == user.Username() {
			return nil, errors.WithStack(port.ErrAlreadyExists)
		}
	}

	now := time.Now().UTC()
	persisted := &persistedUser{
		User:      user,
		createdAt: now,
		updatedAt: now,
	}

	s.users[user.ID()] = persisted
	s.passwords[user.ID()] = passwordHash

	return persisted, nil
}

// GetUserByID implements [port.UserStore].
func (s *UserStore) GetUserByID(ctx context.Context, id model.UserID) (model.PersistedUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return user, nil
}

// FindUserByEmail implements [port.UserStore].
func (s *UserStore) FindUserByEmail(ctx context.Context, email string) (model.PersistedUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, err := s.findByEmail(email)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// Authenticate implements [port.UserStore].
func (s *UserStore) Authenticate(ctx context.Context, email, password string) (model.PersistedUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, err := s.findByEmail(email)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := bcrypt.CompareHashAndPassword(s.passwords[user.ID()], []byte(password)); err != nil {
		return nil, errors.WithStack(port.ErrNotAuthorized)
	}

	return user, nil
}

func (s *UserStore) findByEmail(email string) (*persistedUser, error) {
	for _, user := range s.users {
		if user.Email() == email {
			return user, nil
		}
	}

	return nil, errors.WithStack(port.ErrNotFound)
}

var _ port.UserStore = &UserStore{}

func NewUserStore() *UserStore {
	return &UserStore{
		users:     map[model.UserID]*persistedUser{},
		passwords: map[model.UserID][]byte{},
	}
}
