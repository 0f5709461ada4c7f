package domain

import "time"

// ActivityAction names a mutation recorded in the activity log.
type ActivityAction string

const (
	ActionItemAdded     ActivityAction = "item_added"
	ActionItemUpdated   ActivityAction = "item_updated"
	ActionItemDeleted   ActivityAction = "item_deleted"
	ActionVoteCast      ActivityAction = "vote_cast"
	ActionVoteRetracted ActivityAction = "vote_retracted"
	ActionMarkedWatched ActivityAction = "marked_watched"
)

// ActivityEvent is an append-only audit record of a watchlist mutation.
type ActivityEvent struct {
	ItemID string
	UserID string
	Action ActivityAction
	At     time.Time
}
