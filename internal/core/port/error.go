package port

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateToken = errors.New("duplicate token")
	ErrNotAuthorized  = errors.New("not authorized")
	ErrAlreadyExists  = errors.New("already exists")
)
