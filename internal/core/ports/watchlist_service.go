package ports

import (
	"context"

	"github.com/sharedwatchlist/watchlist-api/internal/core/domain"
)

// ItemDraft carries the editable fields of an item. Title, Type and Year are
// required; the remaining fields are optional. Updates replace every field.
type ItemDraft struct {
	Title       string
	Description string
	PosterURL   string
	Type        string
	Year        *int
	Genre       string
	Rating      *float64
	Runtime     *int
}

// AddItemInput is the input to AddItem. IdempotencyKey is optional.
type AddItemInput struct {
	Draft          ItemDraft
	IdempotencyKey string
}

// ItemPage is a page of projected items.
type ItemPage struct {
	Items    []domain.ItemView
	Metadata Metadata
}

// WatchlistService defines the use cases of the shared watchlist. Every call
// identifies the caller by the email of a verified principal.
type WatchlistService interface {
	GetWatchlist(ctx context.Context, email string, page Page) (*ItemPage, error)
	GetWatchedHistory(ctx context.Context, email string, page Page) (*ItemPage, error)
	AddItem(ctx context.Context, email string, input AddItemInput) (*domain.ItemView, error)
	UpdateItem(ctx context.Context, email, itemID string, draft ItemDraft) (*domain.ItemView, error)
	DeleteItem(ctx context.Context, email, itemID string) error
	ToggleVote(ctx context.Context, email, itemID string) (*domain.ItemView, error)
	MarkAsWatched(ctx context.Context, email, itemID string) (*domain.ItemView, error)
	GetRandomItem(ctx context.Context, email string) (*domain.ItemView, error)
}
