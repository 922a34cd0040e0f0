package port

import (
	"context"

	"github.com/lumapix/lumapix/internal/core/model"
)

type UserStore interface {
	// CreateUser creates a new user with the given credentials, or
	// returns ErrAlreadyExists if the username or email is taken
	CreateUser(ctx context.Context, user model.User, passwordHash []byte) (model.PersistedUser, error)

	// GetUserByID finds a user by its ID, or returns ErrNotFound
	GetUserByID(ctx context.Context, id model.UserID) (model.PersistedUser, error)

	// FindUserByEmail searches for a user by its email address, or
	// returns ErrNotFound
	FindUserByEmail(ctx context.Context, email string) (model.PersistedUser, error)

	// Authenticate checks the given credentials and returns the matching
	// user, ErrNotFound if the email is unknown, or ErrNotAuthorized if
	// the password does not match
	Authenticate(ctx context.Context, email, password string) (model.PersistedUser, error)
}
