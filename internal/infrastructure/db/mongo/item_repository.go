package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sharedwatchlist/watchlist-api/internal/core/domain"
	"github.com/sharedwatchlist/watchlist-api/internal/core/ports"
)

const collectionItems = "watchlist_items"

// ItemRepository implements ports.ItemRepository on MongoDB. Ids are ObjectID
// hex strings; listings sort on created_at first since ObjectIDs only order
// by second.
type ItemRepository struct {
	col *mongo.Collection
}

var _ ports.ItemRepository = (*ItemRepository)(nil)

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{col: db.Collection(collectionItems)}
}

type itemDocument struct {
	ID           string     `bson:"_id"`
	Title        string     `bson:"title"`
	Description  string     `bson:"description,omitempty"`
	PosterURL    string     `bson:"poster_url,omitempty"`
	Type         string     `bson:"type"`
	Year         int        `bson:"year"`
	Genre        string     `bson:"genre,omitempty"`
	Rating       *float64   `bson:"rating,omitempty"`
	Runtime      *int       `bson:"runtime,omitempty"`
	AddedByID    string     `bson:"added_by_id"`
	AddedByEmail string     `bson:"added_by_email"`
	Votes        []string   `bson:"votes"`
	CreatedAt    time.Time  `bson:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at"`
	WatchedAt    *time.Time `bson:"watched_at"`
	Version      int        `bson:"version"`
}

func toDocument(i *domain.Item) itemDocument {
	votes := i.Votes
	if votes == nil {
		votes = []string{}
	}
	return itemDocument{
		ID:           i.ID,
		Title:        i.Title,
		Description:  i.Description,
		PosterURL:    i.PosterURL,
		Type:         i.Type,
		Year:         i.Year,
		Genre:        i.Genre,
		Rating:       i.Rating,
		Runtime:      i.Runtime,
		AddedByID:    i.AddedByID,
		AddedByEmail: i.AddedByEmail,
		Votes:        votes,
		CreatedAt:    i.CreatedAt.UTC(),
		UpdatedAt:    i.UpdatedAt.UTC(),
		WatchedAt:    i.WatchedAt,
		Version:      i.Version,
	}
}

func (d itemDocument) toDomain() *domain.Item {
	return &domain.Item{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		PosterURL:    d.PosterURL,
		Type:         d.Type,
		Year:         d.Year,
		Genre:        d.Genre,
		Rating:       d.Rating,
		Runtime:      d.Runtime,
		AddedByID:    d.AddedByID,
		AddedByEmail: d.AddedByEmail,
		Votes:        d.Votes,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		WatchedAt:    d.WatchedAt,
		Version:      d.Version,
	}
}

// FindOwnedBy returns a page of the owner's items in creation order.
func (r *ItemRepository) FindOwnedBy(ctx context.Context, ownerID string, page ports.Page) ([]*domain.Item, int64, error) {
	return r.findPage(ctx, bson.M{"added_by_id": ownerID}, page)
}

// FindWatchedBy returns a page of the owner's watched items in creation order.
func (r *ItemRepository) FindWatchedBy(ctx context.Context, ownerID string, page ports.Page) ([]*domain.Item, int64, error) {
	return r.findPage(ctx, bson.M{"added_by_id": ownerID, "watched_at": bson.M{"$ne": nil}}, page)
}

func (r *ItemRepository) findPage(ctx context.Context, filter bson.M, page ports.Page) ([]*domain.Item, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	opts := options.Find().
		SetSort(creationOrder).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Size))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find items: %w", err)
	}
	items, err := decodeAll(ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindByID retrieves a single item.
func (r *ItemRepository) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc itemDocument
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return doc.toDomain(), nil
}

// FindTopUnwatchedByVotes orders unwatched items by vote count descending,
// then creation order.
func (r *ItemRepository) FindTopUnwatchedByVotes(ctx context.Context, limit int) ([]*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, unwatchedByVotesPipeline(limit))
	if err != nil {
		return nil, fmt.Errorf("aggregate unwatched items: %w", err)
	}
	return decodeAll(ctx, cur)
}

// creationOrder sorts by created_at, falling back to _id for equal timestamps.
var creationOrder = bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}

func unwatchedByVotesPipeline(limit int) mongo.Pipeline {
	sortStage := append(bson.D{{Key: "vote_count", Value: -1}}, creationOrder...)
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"watched_at": nil}}},
		{{Key: "$addFields", Value: bson.M{"vote_count": bson.M{"$size": bson.M{"$ifNull": bson.A{"$votes", bson.A{}}}}}}},
		{{Key: "$sort", Value: sortStage}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: int64(limit)}})
	}
	return pipeline
}

// Save inserts a new item or replaces an existing one guarded by its version.
func (r *ItemRepository) Save(ctx context.Context, item *domain.Item) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if item.ID == "" {
		item.ID = primitive.NewObjectID().Hex()
		item.Version = 1
		if _, err := r.col.InsertOne(ctx, toDocument(item)); err != nil {
			item.ID, item.Version = "", 0
			return fmt.Errorf("insert item: %w", err)
		}
		return nil
	}

	doc := toDocument(item)
	doc.Version = item.Version + 1

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": item.ID, "version": item.Version}, doc)
	if err != nil {
		return fmt.Errorf("replace item: %w", err)
	}
	if res.MatchedCount == 0 {
		return r.missOrConflict(ctx, item.ID)
	}
	item.Version = doc.Version
	return nil
}

// Delete removes the item document; its votes live inside it and go with it.
func (r *ItemRepository) Delete(ctx context.Context, item *domain.Item) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": item.ID})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// missOrConflict tells a deleted item apart from a concurrent update.
func (r *ItemRepository) missOrConflict(ctx context.Context, id string) error {
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("check item: %w", err)
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	return domain.ErrEditConflict
}

// EnsureIndexes creates the indexes used by the list and random-pick queries.
func (r *ItemRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "added_by_id", Value: 1}, {Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}},
		{Keys: bson.D{{Key: "watched_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeAll(ctx context.Context, cur *mongo.Cursor) ([]*domain.Item, error) {
	defer cur.Close(ctx)

	items := make([]*domain.Item, 0)
	for cur.Next(ctx) {
		var doc itemDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}
