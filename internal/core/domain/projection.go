package domain

import "time"

// ItemView is the viewer-relative read model of an Item.
type ItemView struct {
	ID           string
	Title        string
	Description  string
	PosterURL    string
	Type         string
	Year         int
	Genre        string
	Rating       *float64
	Runtime      *int
	AddedByEmail string
	VoteCount    int
	HasUserVoted bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	WatchedAt    *time.Time
}

// Project builds the view of item as seen by viewer. It never mutates item and
// exposes the owner only by email.
func Project(item *Item, viewer *User) ItemView {
	v := ItemView{
		ID:           item.ID,
		Title:        item.Title,
		Description:  item.Description,
		PosterURL:    item.PosterURL,
		Type:         item.Type,
		Year:         item.Year,
		Genre:        item.Genre,
		Rating:       copyFloat(item.Rating),
		Runtime:      copyInt(item.Runtime),
		AddedByEmail: item.AddedByEmail,
		VoteCount:    len(item.Votes),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
	if viewer != nil {
		v.HasUserVoted = item.HasVote(viewer.ID)
	}
	if item.WatchedAt != nil {
		w := *item.WatchedAt
		v.WatchedAt = &w
	}
	return v
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
