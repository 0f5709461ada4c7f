package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sharedwatchlist/watchlist-api/internal/core/domain"
	"github.com/sharedwatchlist/watchlist-api/internal/core/ports"
)

// ItemRepository implements ports.ItemRepository with GORM. Every write runs
// in one transaction covering the item row and its vote rows.
type ItemRepository struct {
	db *gorm.DB
}

var _ ports.ItemRepository = (*ItemRepository)(nil)

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) FindOwnedBy(ctx context.Context, ownerID string, page ports.Page) ([]*domain.Item, int64, error) {
	return r.findPage(ctx, r.db.WithContext(ctx).Where("added_by_id = ?", ownerID), page)
}

func (r *ItemRepository) FindWatchedBy(ctx context.Context, ownerID string, page ports.Page) ([]*domain.Item, int64, error) {
	scope := r.db.WithContext(ctx).Where("added_by_id = ? AND watched_at IS NOT NULL", ownerID)
	return r.findPage(ctx, scope, page)
}

func (r *ItemRepository) findPage(ctx context.Context, scope *gorm.DB, page ports.Page) ([]*domain.Item, int64, error) {
	var total int64
	if err := scope.Session(&gorm.Session{}).Model(&itemModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	var rows []itemModel
	err := scope.Session(&gorm.Session{}).
		Preload("Votes").
		Order("created_at ASC").
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("find items: %w", err)
	}
	return toDomainItems(rows), total, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	pk, ok := parseID(id)
	if !ok {
		return nil, domain.ErrItemNotFound
	}

	var row itemModel
	if err := r.db.WithContext(ctx).Preload("Votes").First(&row, pk).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return row.toDomain(), nil
}

// FindTopUnwatchedByVotes orders unwatched items by vote count descending,
// then creation order.
func (r *ItemRepository) FindTopUnwatchedByVotes(ctx context.Context, limit int) ([]*domain.Item, error) {
	var rows []itemModel
	if err := unwatchedByVotes(r.db.WithContext(ctx), limit).Preload("Votes").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find unwatched items: %w", err)
	}
	return toDomainItems(rows), nil
}

// unwatchedByVotes counts votes in a derived table so items without votes
// still appear, ordered last.
func unwatchedByVotes(db *gorm.DB, limit int) *gorm.DB {
	counts := db.Session(&gorm.Session{NewDB: true}).
		Model(&voteModel{}).
		Select("item_id, COUNT(*) AS vote_count").
		Group("item_id")

	q := db.Model(&itemModel{}).
		Select("watchlist_items.*").
		Joins("LEFT JOIN (?) AS vc ON vc.item_id = watchlist_items.id", counts).
		Where("watchlist_items.watched_at IS NULL").
		Order("COALESCE(vc.vote_count, 0) DESC").
		Order("watchlist_items.created_at ASC").
		Order("watchlist_items.id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q
}

func (r *ItemRepository) Save(ctx context.Context, item *domain.Item) error {
	if item.ID == "" {
		return r.insert(ctx, item)
	}
	pk, ok := parseID(item.ID)
	if !ok {
		return domain.ErrItemNotFound
	}

	next := item.Version + 1
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := fromDomain(item, pk)
		res := tx.Model(&itemModel{}).
			Where("id = ? AND version = ?", pk, item.Version).
			Updates(map[string]any{
				"title":       row.Title,
				"description": row.Description,
				"poster_url":  row.PosterURL,
				"type":        row.Type,
				"year":        row.Year,
				"genre":       row.Genre,
				"rating":      row.Rating,
				"runtime":     row.Runtime,
				"updated_at":  row.UpdatedAt,
				"watched_at":  row.WatchedAt,
				"version":     next,
			})
		if res.Error != nil {
			return fmt.Errorf("update item: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return missOrConflict(tx, pk)
		}

		if err := tx.Where("item_id = ?", pk).Delete(&voteModel{}).Error; err != nil {
			return fmt.Errorf("clear votes: %w", err)
		}
		if len(row.Votes) > 0 {
			if err := tx.Create(&row.Votes).Error; err != nil {
				return fmt.Errorf("write votes: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	item.Version = next
	return nil
}

func (r *ItemRepository) insert(ctx context.Context, item *domain.Item) error {
	row := fromDomain(item, 0)
	row.Version = 1
	// GORM writes the Votes association in the same transaction as the row.
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	item.ID = formatID(row.ID)
	item.Version = row.Version
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, item *domain.Item) error {
	pk, ok := parseID(item.ID)
	if !ok {
		return domain.ErrItemNotFound
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", pk).Delete(&voteModel{}).Error; err != nil {
			return fmt.Errorf("delete votes: %w", err)
		}
		res := tx.Delete(&itemModel{}, pk)
		if res.Error != nil {
			return fmt.Errorf("delete item: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrItemNotFound
		}
		return nil
	})
}

func missOrConflict(tx *gorm.DB, pk uint) error {
	var n int64
	if err := tx.Model(&itemModel{}).Where("id = ?", pk).Count(&n).Error; err != nil {
		return fmt.Errorf("check item: %w", err)
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	return domain.ErrEditConflict
}

func toDomainItems(rows []itemModel) []*domain.Item {
	items := make([]*domain.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDomain())
	}
	return items
}
