package ports

import (
	"context"

	"github.com/sharedwatchlist/watchlist-api/internal/core/domain"
)

// UserRepository defines persistence for users, keyed by unique email.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create fails with domain.ErrUserExists when the email is taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
