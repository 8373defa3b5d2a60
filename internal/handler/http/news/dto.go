// Package news provides HTTP handlers for news aggregation endpoints.
// It includes handlers for listing, trending, breaking and featured news,
// single article retrieval, bookmarking, comments, and search.
package news

import (
	"news-portal/internal/domain/entity"
	newsUC "news-portal/internal/usecase/news"
)

// ListResponse represents the JSON structure for a paginated article listing.
type ListResponse struct {
	Articles []entity.Article `json:"articles"`
	Total    int              `json:"total"`
	Source   string           `json:"source"`
	Page     int              `json:"page"`
	PerPage  int              `json:"per_page"`
	HasNext  bool             `json:"has_next"`
	HasPrev  bool             `json:"has_prev"`
}

// CategoryDTO represents one entry of the category listing.
type CategoryDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func toListResponse(result *newsUC.Result) ListResponse {
	return ListResponse{
		Articles: result.Articles,
		Total:    result.Total,
		Source:   result.Source,
		Page:     result.Page,
		PerPage:  result.PerPage,
		HasNext:  result.HasNext,
		HasPrev:  result.HasPrev,
	}
}
