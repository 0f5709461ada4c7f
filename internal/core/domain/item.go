package domain

import "time"

// Item is a single watchlist entry: a movie or show candidate added by one
// user and voted on by any user.
type Item struct {
	ID          string
	Title       string
	Description string
	PosterURL   string
	Type        string // free-form category, e.g. MOVIE or TV_SHOW
	Year        int
	Genre       string
	Rating      *float64
	Runtime     *int // minutes

	AddedByID    string
	AddedByEmail string

	// Votes holds the ids of users who voted for the item. Never contains duplicates.
	Votes []string

	CreatedAt time.Time
	UpdatedAt time.Time
	WatchedAt *time.Time

	// Version is bumped by the store on every successful save.
	Version int
}

// IsOwnedBy reports whether userID added the item.
func (i *Item) IsOwnedBy(userID string) bool {
	return i.AddedByID != "" && i.AddedByID == userID
}

// IsWatched reports whether the owner has marked the item as watched.
func (i *Item) IsWatched() bool {
	return i.WatchedAt != nil
}

// HasVote reports whether userID is in the vote set.
func (i *Item) HasVote(userID string) bool {
	for _, v := range i.Votes {
		if v == userID {
			return true
		}
	}
	return false
}

// ToggleVote adds userID to the vote set, or removes it if already present.
// It returns true when a vote was cast and false when one was retracted.
func (i *Item) ToggleVote(userID string) bool {
	for idx, v := range i.Votes {
		if v == userID {
			i.Votes = append(i.Votes[:idx:idx], i.Votes[idx+1:]...)
			return false
		}
	}
	i.Votes = append(i.Votes, userID)
	return true
}

// Touch refreshes UpdatedAt, never moving it before CreatedAt.
func (i *Item) Touch(now time.Time) {
	if now.Before(i.CreatedAt) {
		now = i.CreatedAt
	}
	i.UpdatedAt = now
}

// MarkWatched sets WatchedAt to now. Re-marking overwrites the previous timestamp.
func (i *Item) MarkWatched(now time.Time) {
	if now.Before(i.CreatedAt) {
		now = i.CreatedAt
	}
	i.WatchedAt = &now
	i.Touch(now)
}
