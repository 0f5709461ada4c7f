package ports

import (
	"context"

	"github.com/sharedwatchlist/watchlist-api/internal/core/domain"
)

// ItemRepository persists watchlist items together with their vote sets.
//
// Listing methods return items in creation order: CreatedAt ascending, then id
// ascending. Ids alone are not ordered by creation (ObjectIDs only sort by
// second and their counter can wrap), so CreatedAt always leads.
type ItemRepository interface {
	// FindOwnedBy returns a page of the owner's items and the owner's total item count.
	FindOwnedBy(ctx context.Context, ownerID string, page Page) ([]*domain.Item, int64, error)
	// FindWatchedBy is FindOwnedBy restricted to items with a WatchedAt timestamp.
	FindWatchedBy(ctx context.Context, ownerID string, page Page) ([]*domain.Item, int64, error)
	// FindByID returns domain.ErrItemNotFound when no item has the id, including malformed ids.
	FindByID(ctx context.Context, id string) (*domain.Item, error)
	// FindTopUnwatchedByVotes returns unwatched items ordered by vote count
	// descending, ties broken by creation order. limit <= 0 returns every match.
	FindTopUnwatchedByVotes(ctx context.Context, limit int) ([]*domain.Item, error)
	// Save inserts the item when ID is empty (assigning ID and Version 1) and
	// otherwise updates it, failing with domain.ErrEditConflict if the stored
	// Version no longer matches. On success item.Version holds the new version.
	Save(ctx context.Context, item *domain.Item) error
	// Delete removes the item and its votes.
	Delete(ctx context.Context, item *domain.Item) error
}
