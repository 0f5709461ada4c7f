// Package memory provides process-local stores for development and tests.
// Data is lost on restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sharedwatchlist/watchlist-api/internal/core/domain"
	"github.com/sharedwatchlist/watchlist-api/internal/core/ports"
)

// ItemRepository keeps items in a map guarded by a RWMutex. Ids are ObjectID
// hex strings like the Mongo store's.
type ItemRepository struct {
	items map[string]*domain.Item
	mu    sync.RWMutex
}

var _ ports.ItemRepository = (*ItemRepository)(nil)

func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[string]*domain.Item)}
}

func (r *ItemRepository) FindOwnedBy(_ context.Context, ownerID string, page ports.Page) ([]*domain.Item, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items, total := paginate(r.filter(func(i *domain.Item) bool { return i.AddedByID == ownerID }), page)
	return items, total, nil
}

func (r *ItemRepository) FindWatchedBy(_ context.Context, ownerID string, page ports.Page) ([]*domain.Item, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items, total := paginate(r.filter(func(i *domain.Item) bool {
		return i.AddedByID == ownerID && i.WatchedAt != nil
	}), page)
	return items, total, nil
}

func (r *ItemRepository) FindByID(_ context.Context, id string) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return clone(item), nil
}

// FindTopUnwatchedByVotes orders by vote count descending, then creation order.
func (r *ItemRepository) FindTopUnwatchedByVotes(_ context.Context, limit int) ([]*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.filter(func(i *domain.Item) bool { return i.WatchedAt == nil })
	sort.SliceStable(items, func(a, b int) bool {
		return len(items[a].Votes) > len(items[b].Votes)
	})
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (r *ItemRepository) Save(_ context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = primitive.NewObjectID().Hex()
		item.Version = 1
		r.items[item.ID] = clone(item)
		return nil
	}

	stored, ok := r.items[item.ID]
	if !ok {
		return domain.ErrItemNotFound
	}
	if stored.Version != item.Version {
		return domain.ErrEditConflict
	}
	item.Version++
	r.items[item.ID] = clone(item)
	return nil
}

func (r *ItemRepository) Delete(_ context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrItemNotFound
	}
	delete(r.items, item.ID)
	return nil
}

// filter returns clones of matching items in creation order. Callers hold the lock.
func (r *ItemRepository) filter(keep func(*domain.Item) bool) []*domain.Item {
	out := make([]*domain.Item, 0)
	for _, item := range r.items {
		if keep(item) {
			out = append(out, clone(item))
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if !out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].CreatedAt.Before(out[b].CreatedAt)
		}
		return out[a].ID < out[b].ID
	})
	return out
}

func paginate(items []*domain.Item, page ports.Page) ([]*domain.Item, int64) {
	total := int64(len(items))
	page = page.Normalize()
	start := page.Offset()
	if start >= len(items) {
		return []*domain.Item{}, total
	}
	end := start + page.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total
}

func clone(i *domain.Item) *domain.Item {
	c := *i
	c.Votes = append([]string{}, i.Votes...)
	if i.WatchedAt != nil {
		w := *i.WatchedAt
		c.WatchedAt = &w
	}
	if i.Rating != nil {
		v := *i.Rating
		c.Rating = &v
	}
	if i.Runtime != nil {
		v := *i.Runtime
		c.Runtime = &v
	}
	return &c
}
