package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sharedwatchlist/watchlist-api/internal/core/domain"
	"github.com/sharedwatchlist/watchlist-api/internal/core/ports"
)

const collectionActivity = "watchlist_activity"

// ActivityLog appends watchlist mutations to an audit collection.
type ActivityLog struct {
	col *mongo.Collection
}

func NewActivityLog(db *mongo.Database) ports.ActivityLog {
	return &ActivityLog{col: db.Collection(collectionActivity)}
}

// Record inserts one audit document.
func (l *ActivityLog) Record(ctx context.Context, event domain.ActivityEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"item_id":     event.ItemID,
		"user_id":     event.UserID,
		"action":      string(event.Action),
		"at":          event.At.UTC(),
		"recorded_at": time.Now().UTC(),
	}

	_, err := l.col.InsertOne(ctx, doc)
	return err
}
