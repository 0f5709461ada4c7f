package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sharedwatchlist/watchlist-api/internal/core/domain"
	"github.com/sharedwatchlist/watchlist-api/internal/core/ports"
)

// Random picks an index in [0, n). Injected so tests can make picks deterministic.
type Random interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

// Option customises a WatchlistService.
type Option func(*WatchlistService)

// WithRandom replaces the random source used by GetRandomItem.
func WithRandom(r Random) Option {
	return func(s *WatchlistService) { s.rand = r }
}

// WithClock replaces time.Now for timestamping mutations.
func WithClock(now func() time.Time) Option {
	return func(s *WatchlistService) { s.now = now }
}

// WithActivityLog records every successful mutation to log.
func WithActivityLog(log ports.ActivityLog) Option {
	return func(s *WatchlistService) { s.activity = log }
}

// WithIdempotencyStore enables Idempotency-Key replay for AddItem.
func WithIdempotencyStore(store ports.IdempotencyStore) Option {
	return func(s *WatchlistService) { s.idempotency = store }
}

// WatchlistService enforces ownership, voting and watched-state rules over a
// single shared collection of items.
type WatchlistService struct {
	items       ports.ItemRepository
	users       ports.UserRepository
	activity    ports.ActivityLog
	idempotency ports.IdempotencyStore
	rand        Random
	now         func() time.Time
	log         zerolog.Logger
}

var _ ports.WatchlistService = (*WatchlistService)(nil)

func NewWatchlistService(items ports.ItemRepository, users ports.UserRepository, log zerolog.Logger, opts ...Option) *WatchlistService {
	s := &WatchlistService{
		items:    items,
		users:    users,
		activity: ports.NopActivityLog{},
		rand:     globalRandom{},
		now:      func() time.Time { return time.Now().UTC() },
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetWatchlist returns a page of the caller's own items.
func (s *WatchlistService) GetWatchlist(ctx context.Context, email string, page ports.Page) (*ports.ItemPage, error) {
	user, err := s.resolveUser(ctx, email)
	if err != nil {
		return nil, err
	}
	page = page.Normalize()
	items, total, err := s.items.FindOwnedBy(ctx, user.ID, page)
	if err != nil {
		return nil, fmt.Errorf("get watchlist: %w", err)
	}
	return projectPage(items, total, page, user), nil
}

// GetWatchedHistory returns a page of the caller's items that were marked watched.
func (s *WatchlistService) GetWatchedHistory(ctx context.Context, email string, page ports.Page) (*ports.ItemPage, error) {
	user, err := s.resolveUser(ctx, email)
	if err != nil {
		return nil, err
	}
	page = page.Normalize()
	items, total, err := s.items.FindWatchedBy(ctx, user.ID, page)
	if err != nil {
		return nil, fmt.Errorf("get watched history: %w", err)
	}
	return projectPage(items, total, page, user), nil
}

// AddItem creates an item owned by the caller with no votes and no watched
// timestamp. A repeated IdempotencyKey returns the item created the first time,
// or domain.ErrRequestInProgress while that first request is still running.
func (s *WatchlistService) AddItem(ctx context.Context, email string, input ports.AddItemInput) (*domain.ItemView, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}
	user, err := s.resolveUser(ctx, email)
	if err != nil {
		return nil, err
	}

	replay, claimed, err := s.claimKey(ctx, user, input.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if replay != nil {
		return replay, nil
	}

	now := s.now()
	item := &domain.Item{
		AddedByID:    user.ID,
		AddedByEmail: user.Email,
		Votes:        []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	applyDraft(item, input.Draft)

	if err := s.items.Save(ctx, item); err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to add watchlist item")
		if claimed {
			if relErr := s.idempotency.Release(ctx, user.ID, input.IdempotencyKey); relErr != nil {
				s.log.Warn().Err(relErr).Str("idempotency_key", input.IdempotencyKey).Msg("failed to release idempotency key")
			}
		}
		return nil, fmt.Errorf("add item: %w", err)
	}

	if claimed {
		if err := s.idempotency.Complete(ctx, user.ID, input.IdempotencyKey, item.ID); err != nil {
			s.log.Warn().Err(err).Str("item_id", item.ID).Msg("failed to store idempotency key")
		}
	}

	s.record(ctx, item.ID, user.ID, domain.ActionItemAdded)
	s.log.Info().Str("item_id", item.ID).Str("user_id", user.ID).Str("title", item.Title).Msg("watchlist item added")

	view := domain.Project(item, user)
	return &view, nil
}

// UpdateItem replaces every editable field of an item owned by the caller.
// Votes, CreatedAt and WatchedAt are left untouched.
func (s *WatchlistService) UpdateItem(ctx context.Context, email, itemID string, draft ports.ItemDraft) (*domain.ItemView, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	user, item, err := s.loadOwned(ctx, email, itemID)
	if err != nil {
		return nil, err
	}

	applyDraft(item, draft)
	item.Touch(s.now())

	if err := s.items.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	s.record(ctx, item.ID, user.ID, domain.ActionItemUpdated)
	s.log.Info().Str("item_id", item.ID).Str("user_id", user.ID).Msg("watchlist item updated")

	view := domain.Project(item, user)
	return &view, nil
}

// DeleteItem permanently removes an item owned by the caller.
func (s *WatchlistService) DeleteItem(ctx context.Context, email, itemID string) error {
	user, item, err := s.loadOwned(ctx, email, itemID)
	if err != nil {
		return err
	}
	if err := s.items.Delete(ctx, item); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	s.record(ctx, item.ID, user.ID, domain.ActionItemDeleted)
	s.log.Info().Str("item_id", item.ID).Str("user_id", user.ID).Msg("watchlist item deleted")
	return nil
}

// ToggleVote casts the caller's vote on an item, or retracts it if already cast.
// Any user may vote, the owner included.
func (s *WatchlistService) ToggleVote(ctx context.Context, email, itemID string) (*domain.ItemView, error) {
	user, err := s.resolveUser(ctx, email)
	if err != nil {
		return nil, err
	}
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	cast := item.ToggleVote(user.ID)
	item.Touch(s.now())

	if err := s.items.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("toggle vote: %w", err)
	}

	action := domain.ActionVoteRetracted
	if cast {
		action = domain.ActionVoteCast
	}
	s.record(ctx, item.ID, user.ID, action)
	s.log.Info().Str("item_id", item.ID).Str("user_id", user.ID).Bool("voted", cast).Int("votes", len(item.Votes)).Msg("vote toggled")

	view := domain.Project(item, user)
	return &view, nil
}

// MarkAsWatched sets WatchedAt on an item owned by the caller. Marking an
// already watched item again moves WatchedAt to the current time.
func (s *WatchlistService) MarkAsWatched(ctx context.Context, email, itemID string) (*domain.ItemView, error) {
	user, item, err := s.loadOwned(ctx, email, itemID)
	if err != nil {
		return nil, err
	}

	item.MarkWatched(s.now())

	if err := s.items.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("mark as watched: %w", err)
	}

	s.record(ctx, item.ID, user.ID, domain.ActionMarkedWatched)
	s.log.Info().Str("item_id", item.ID).Str("user_id", user.ID).Msg("watchlist item marked watched")

	view := domain.Project(item, user)
	return &view, nil
}

// GetRandomItem picks one unwatched item uniformly at random from the whole
// shared collection.
func (s *WatchlistService) GetRandomItem(ctx context.Context, email string) (*domain.ItemView, error) {
	user, err := s.resolveUser(ctx, email)
	if err != nil {
		return nil, err
	}
	candidates, err := s.items.FindTopUnwatchedByVotes(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("random item: %w", err)
	}
	if len(candidates) == 0 {
		return nil, domain.ErrNoUnwatchedItems
	}

	picked := candidates[s.rand.IntN(len(candidates))]
	s.log.Debug().Str("item_id", picked.ID).Int("candidates", len(candidates)).Msg("random item picked")

	view := domain.Project(picked, user)
	return &view, nil
}

func (s *WatchlistService) resolveUser(ctx context.Context, email string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domain.ErrUserNotFound
	}
	return s.users.FindByEmail(ctx, email)
}

// loadOwned resolves the caller and the item, failing with ErrForbidden when
// the caller does not own it.
func (s *WatchlistService) loadOwned(ctx context.Context, email, itemID string) (*domain.User, *domain.Item, error) {
	user, err := s.resolveUser(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}
	if !item.IsOwnedBy(user.ID) {
		s.log.Warn().Str("item_id", item.ID).Str("user_id", user.ID).Msg("ownership check failed")
		return nil, nil, domain.ErrForbidden
	}
	return user, item, nil
}

// claimKey reserves the idempotency key before an item is created. It returns
// the previously created item for a completed key, and claimed=true when this
// request owns the key and must complete or release it. Store failures
// disable replay protection for the request rather than failing it.
func (s *WatchlistService) claimKey(ctx context.Context, user *domain.User, key string) (*domain.ItemView, bool, error) {
	if key == "" || s.idempotency == nil {
		return nil, false, nil
	}
	claimed, itemID, err := s.idempotency.Claim(ctx, user.ID, key)
	if err != nil {
		s.log.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency claim failed, creating anyway")
		return nil, false, nil
	}
	if claimed {
		return nil, true, nil
	}
	if itemID == "" {
		return nil, false, domain.ErrRequestInProgress
	}

	item, err := s.items.FindByID(ctx, itemID)
	if errors.Is(err, domain.ErrItemNotFound) {
		// the remembered item was deleted since; create a fresh one and rebind the key
		return nil, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("idempotent replay: %w", err)
	}
	s.log.Info().Str("idempotency_key", key).Str("item_id", item.ID).Msg("idempotent replay")
	view := domain.Project(item, user)
	return &view, false, nil
}

func (s *WatchlistService) record(ctx context.Context, itemID, userID string, action domain.ActivityAction) {
	event := domain.ActivityEvent{ItemID: itemID, UserID: userID, Action: action, At: s.now()}
	if err := s.activity.Record(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("item_id", itemID).Str("action", string(action)).Msg("failed to record activity")
	}
}

func validateDraft(d ports.ItemDraft) error {
	switch {
	case strings.TrimSpace(d.Title) == "":
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	case strings.TrimSpace(d.Type) == "":
		return fmt.Errorf("%w: type is required", domain.ErrInvalidInput)
	case d.Year == nil:
		return fmt.Errorf("%w: year is required", domain.ErrInvalidInput)
	}
	return nil
}

func applyDraft(item *domain.Item, d ports.ItemDraft) {
	item.Title = d.Title
	item.Description = d.Description
	item.PosterURL = d.PosterURL
	item.Type = d.Type
	item.Year = *d.Year
	item.Genre = d.Genre
	item.Rating = d.Rating
	item.Runtime = d.Runtime
}

func projectPage(items []*domain.Item, total int64, page ports.Page, viewer *domain.User) *ports.ItemPage {
	views := make([]domain.ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, domain.Project(item, viewer))
	}
	return &ports.ItemPage{Items: views, Metadata: ports.CalculateMetadata(total, page)}
}
