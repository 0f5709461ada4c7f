package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrItemNotFound     = errors.New("watchlist item not found")
	ErrNoUnwatchedItems = errors.New("no unwatched items found")
	ErrForbidden        = errors.New("access forbidden")
	ErrInvalidInput     = errors.New("invalid input")
	// ErrRequestInProgress is returned while another request holding the same
	// idempotency key has not finished.
	ErrRequestInProgress = errors.New("request with this idempotency key is in progress")
	// ErrEditConflict is returned by a store when the item changed between load and save.
	ErrEditConflict = errors.New("edit conflict")
)
