package handler

import "time"

// itemRequest is the body of POST /watchlist and PUT /watchlist/:id. Only
// title, type and year are required; the caps follow the storage column sizes.
type itemRequest struct {
	Title       string   `json:"title"       validate:"required,max=255"`
	Description string   `json:"description"`
	PosterURL   string   `json:"posterUrl"   validate:"max=1024"`
	Type        string   `json:"type"        validate:"required,max=64"`
	Year        *int     `json:"year"        validate:"required"`
	Genre       string   `json:"genre"       validate:"max=255"`
	Rating      *float64 `json:"rating"`
	Runtime     *int     `json:"runtime"`
}

// itemResponse is the viewer-relative representation of a watchlist item.
type itemResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	PosterURL    string     `json:"posterUrl,omitempty"`
	Type         string     `json:"type"`
	Year         int        `json:"year"`
	Genre        string     `json:"genre,omitempty"`
	Rating       *float64   `json:"rating,omitempty"`
	Runtime      *int       `json:"runtime,omitempty"`
	AddedByEmail string     `json:"addedByEmail"`
	VoteCount    int        `json:"voteCount"`
	HasUserVoted bool       `json:"hasUserVoted"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	WatchedAt    *time.Time `json:"watchedAt,omitempty"`
}

type metadataResponse struct {
	CurrentPage  int   `json:"currentPage,omitempty"`
	PageSize     int   `json:"pageSize,omitempty"`
	FirstPage    int   `json:"firstPage,omitempty"`
	LastPage     int   `json:"lastPage,omitempty"`
	TotalRecords int64 `json:"totalRecords"`
}

// itemPageResponse wraps a page of items with its pagination metadata.
type itemPageResponse struct {
	Content  []itemResponse   `json:"content"`
	Metadata metadataResponse `json:"metadata"`
}
