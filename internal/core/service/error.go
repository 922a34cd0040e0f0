package service

import "errors"

var (
	// ErrEmptySelection is returned when a share request carries no items.
	ErrEmptySelection = errors.New("empty selection")
	// ErrInvalidContentKind is returned when an item references a kind
	// outside the closed set.
	ErrInvalidContentKind = errors.New("invalid content kind")
	// ErrItemNotAuthorized is returned when an item does not exist or is
	// not owned by the requester.
	ErrItemNotAuthorized = errors.New("item not authorized")
	// ErrRecipientNotFound is returned when a non-public share request
	// names a recipient email that resolves to no user.
	ErrRecipientNotFound = errors.New("recipient not found")
	// ErrNotificationFailed is returned when every grant of a batch was
	// persisted but the recipient notification could not be dispatched.
	// The created grants remain valid.
	ErrNotificationFailed = errors.New("notification failed")
)
