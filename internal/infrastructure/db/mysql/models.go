package mysql

import (
	"strconv"
	"time"

	"github.com/sharedwatchlist/watchlist-api/internal/core/domain"
)

type userModel struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	Firstname    string    `gorm:"size:255"`
	Lastname     string    `gorm:"size:255"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

func (userModel) TableName() string { return "users" }

// itemModel timestamps are assigned by the service, never by GORM hooks.
type itemModel struct {
	ID           uint       `gorm:"primaryKey"`
	Title        string     `gorm:"size:255;not null"`
	Description  string     `gorm:"type:text"`
	PosterURL    string     `gorm:"size:1024"`
	Type         string     `gorm:"size:64;not null"`
	Year         int        `gorm:"not null"`
	Genre        string     `gorm:"size:255"`
	Rating       *float64
	Runtime      *int
	AddedByID    string      `gorm:"size:64;index;not null"`
	AddedByEmail string      `gorm:"size:255;not null"`
	Votes        []voteModel `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time   `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime:false"`
	WatchedAt    *time.Time  `gorm:"index"`
	Version      int         `gorm:"not null;default:1"`
}

func (itemModel) TableName() string { return "watchlist_items" }

type voteModel struct {
	ItemID uint   `gorm:"primaryKey"`
	UserID string `gorm:"primaryKey;size:64"`
}

func (voteModel) TableName() string { return "watchlist_item_votes" }

func (u userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           formatID(u.ID),
		Email:        u.Email,
		Firstname:    u.Firstname,
		Lastname:     u.Lastname,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m itemModel) toDomain() *domain.Item {
	votes := make([]string, 0, len(m.Votes))
	for _, v := range m.Votes {
		votes = append(votes, v.UserID)
	}
	return &domain.Item{
		ID:           formatID(m.ID),
		Title:        m.Title,
		Description:  m.Description,
		PosterURL:    m.PosterURL,
		Type:         m.Type,
		Year:         m.Year,
		Genre:        m.Genre,
		Rating:       m.Rating,
		Runtime:      m.Runtime,
		AddedByID:    m.AddedByID,
		AddedByEmail: m.AddedByEmail,
		Votes:        votes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		WatchedAt:    m.WatchedAt,
		Version:      m.Version,
	}
}

// fromDomain builds the row for item. id is 0 for an insert.
func fromDomain(item *domain.Item, id uint) itemModel {
	return itemModel{
		ID:           id,
		Title:        item.Title,
		Description:  item.Description,
		PosterURL:    item.PosterURL,
		Type:         item.Type,
		Year:         item.Year,
		Genre:        item.Genre,
		Rating:       item.Rating,
		Runtime:      item.Runtime,
		AddedByID:    item.AddedByID,
		AddedByEmail: item.AddedByEmail,
		Votes:        voteRows(id, item.Votes),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
		WatchedAt:    item.WatchedAt,
		Version:      item.Version,
	}
}

func voteRows(itemID uint, userIDs []string) []voteModel {
	rows := make([]voteModel, 0, len(userIDs))
	for _, u := range userIDs {
		rows = append(rows, voteModel{ItemID: itemID, UserID: u})
	}
	return rows
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// parseID reports ok=false for anything that is not a positive integer id.
func parseID(id string) (uint, bool) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
