package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/sharedwatchlist/watchlist-api/internal/core/domain"
	"github.com/sharedwatchlist/watchlist-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "id-" + user.Email
	}
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

// stubItemRepo mirrors the real stores: sequential ids, version guard, and
// vote-count ordering with id as tiebreak.
type stubItemRepo struct {
	items   map[string]*domain.Item
	seq     int
	saves   int
	deletes int
	saveErr error // if set, Save returns this error
	findErr error // if set, FindTopUnwatchedByVotes returns this error
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[string]*domain.Item)}
}

func cloneItem(i *domain.Item) *domain.Item {
	clone := *i
	clone.Votes = append([]string(nil), i.Votes...)
	if i.WatchedAt != nil {
		w := *i.WatchedAt
		clone.WatchedAt = &w
	}
	return &clone
}

func (r *stubItemRepo) sorted(keep func(*domain.Item) bool) []*domain.Item {
	var out []*domain.Item
	for _, it := range r.items {
		if keep(it) {
			out = append(out, cloneItem(it))
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}

func paginate(items []*domain.Item, p ports.Page) ([]*domain.Item, int64) {
	total := int64(len(items))
	start := p.Offset()
	if start > len(items) {
		return []*domain.Item{}, total
	}
	end := start + p.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total
}

func (r *stubItemRepo) FindOwnedBy(_ context.Context, ownerID string, p ports.Page) ([]*domain.Item, int64, error) {
	items, total := paginate(r.sorted(func(i *domain.Item) bool { return i.AddedByID == ownerID }), p)
	return items, total, nil
}

func (r *stubItemRepo) FindWatchedBy(_ context.Context, ownerID string, p ports.Page) ([]*domain.Item, int64, error) {
	items, total := paginate(r.sorted(func(i *domain.Item) bool {
		return i.AddedByID == ownerID && i.WatchedAt != nil
	}), p)
	return items, total, nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id string) (*domain.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return cloneItem(it), nil
}

func (r *stubItemRepo) FindTopUnwatchedByVotes(_ context.Context, limit int) ([]*domain.Item, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := r.sorted(func(i *domain.Item) bool { return i.WatchedAt == nil })
	sort.SliceStable(out, func(a, b int) bool { return len(out[a].Votes) > len(out[b].Votes) })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubItemRepo) Save(_ context.Context, item *domain.Item) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if item.ID == "" {
		r.seq++
		item.ID = fmt.Sprintf("item-%04d", r.seq)
		item.Version = 1
	} else {
		stored, ok := r.items[item.ID]
		if !ok {
			return domain.ErrItemNotFound
		}
		if stored.Version != item.Version {
			return domain.ErrEditConflict
		}
		item.Version++
	}
	r.saves++
	r.items[item.ID] = cloneItem(item)
	return nil
}

func (r *stubItemRepo) Delete(_ context.Context, item *domain.Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrItemNotFound
	}
	r.deletes++
	delete(r.items, item.ID)
	return nil
}

type stubActivityLog struct {
	events []domain.ActivityEvent
	err    error
}

func (l *stubActivityLog) Record(_ context.Context, e domain.ActivityEvent) error {
	if l.err != nil {
		return l.err
	}
	l.events = append(l.events, e)
	return nil
}

// stubIdempotencyStore maps user:key to an item id; "" marks a claimed key
// whose request has not completed.
type stubIdempotencyStore struct {
	keys     map[string]string
	claimErr error
	released int
}

func newStubIdempotencyStore() *stubIdempotencyStore {
	return &stubIdempotencyStore{keys: make(map[string]string)}
}

func (s *stubIdempotencyStore) Claim(_ context.Context, userID, key string) (bool, string, error) {
	if s.claimErr != nil {
		return false, "", s.claimErr
	}
	id, ok := s.keys[userID+":"+key]
	if ok {
		return false, id, nil
	}
	s.keys[userID+":"+key] = ""
	return true, "", nil
}

func (s *stubIdempotencyStore) Complete(_ context.Context, userID, key, itemID string) error {
	s.keys[userID+":"+key] = itemID
	return nil
}

func (s *stubIdempotencyStore) Release(_ context.Context, userID, key string) error {
	s.released++
	delete(s.keys, userID+":"+key)
	return nil
}

// fixedRandom always returns the same index, clamped to n.
type fixedRandom struct{ idx int }

func (f fixedRandom) IntN(n int) int {
	if f.idx >= n {
		return n - 1
	}
	return f.idx
}

var (
	discardLogger = zerolog.Nop()
	errStoreDown  = errors.New("store unavailable")
)
