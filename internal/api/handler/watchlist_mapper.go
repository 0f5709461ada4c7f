package handler

import (
	"github.com/sharedwatchlist/watchlist-api/internal/core/domain"
	"github.com/sharedwatchlist/watchlist-api/internal/core/ports"
)

func toItemDraft(req itemRequest) ports.ItemDraft {
	return ports.ItemDraft{
		Title:       req.Title,
		Description: req.Description,
		PosterURL:   req.PosterURL,
		Type:        req.Type,
		Year:        req.Year,
		Genre:       req.Genre,
		Rating:      req.Rating,
		Runtime:     req.Runtime,
	}
}

func toItemResponse(v *domain.ItemView) itemResponse {
	return itemResponse{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		PosterURL:    v.PosterURL,
		Type:         v.Type,
		Year:         v.Year,
		Genre:        v.Genre,
		Rating:       v.Rating,
		Runtime:      v.Runtime,
		AddedByEmail: v.AddedByEmail,
		VoteCount:    v.VoteCount,
		HasUserVoted: v.HasUserVoted,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
		WatchedAt:    v.WatchedAt,
	}
}

func toItemPageResponse(p *ports.ItemPage) itemPageResponse {
	content := make([]itemResponse, 0, len(p.Items))
	for i := range p.Items {
		content = append(content, toItemResponse(&p.Items[i]))
	}
	return itemPageResponse{
		Content: content,
		Metadata: metadataResponse{
			CurrentPage:  p.Metadata.CurrentPage,
			PageSize:     p.Metadata.PageSize,
			FirstPage:    p.Metadata.FirstPage,
			LastPage:     p.Metadata.LastPage,
			TotalRecords: p.Metadata.TotalRecords,
		},
	}
}
