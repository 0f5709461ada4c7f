package ports

import (
	"context"
	"errors"
)

// ErrInvalidToken is returned by an IdentityVerifier for any token it rejects.
var ErrInvalidToken = errors.New("invalid token")

// IdentityVerifier turns a bearer token into the verified email of its subject.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (email string, err error)
}
