// Package analytics provides the aggregate usage report served to the admin
// dashboard.
package analytics

import (
	"context"
	"fmt"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

const trendingLimit = 10

// Report is the assembled analytics snapshot.
type Report struct {
	TotalArticles    int64             `json:"total_articles"`
	TotalViews       int64             `json:"total_views"`
	TopCategories    map[string]int    `json:"top_categories"`
	TrendingArticles []*entity.Article `json:"trending_articles"`
	DailyViews       map[string]int64  `json:"daily_views"`
}

// Service assembles analytics reports from the article store and the daily
// view counters.
type Service struct {
	Articles  repository.ArticleRepository
	Analytics repository.AnalyticsRepository
}

// Report builds the current analytics snapshot: article and view totals,
// per-category counts, the ten most viewed articles, and daily view
// counters.
func (s *Service) Report(ctx context.Context) (*Report, error) {
	total, err := s.Articles.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	views, err := s.Articles.TotalViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum views: %w", err)
	}

	categories, err := s.Articles.CategoryCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	trending, err := s.Articles.TopViewed(ctx, trendingLimit)
	if err != nil {
		return nil, fmt.Errorf("top viewed: %w", err)
	}

	daily, err := s.Analytics.DailyViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("daily views: %w", err)
	}

	return &Report{
		TotalArticles:    total,
		TotalViews:       views,
		TopCategories:    categories,
		TrendingArticles: trending,
		DailyViews:       daily,
	}, nil
}
