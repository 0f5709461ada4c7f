package ports

import (
	"context"

	"github.com/sharedwatchlist/watchlist-api/internal/core/domain"
)

// ActivityLog records watchlist mutations for auditing.
type ActivityLog interface {
	Record(ctx context.Context, event domain.ActivityEvent) error
}

// NopActivityLog discards every event. Used by backends without an audit collection.
type NopActivityLog struct{}

func (NopActivityLog) Record(context.Context, domain.ActivityEvent) error { return nil }
