// Package repository defines the persistence interfaces for the application.
// Implementations live under internal/infra; the process ships with in-memory
// stores only, so nothing here survives a restart.
package repository

import (
	"context"

	"news-portal/internal/domain/entity"
)

// ArticleRepository stores scraped articles keyed by their content-derived ID.
// Upsert is idempotent: re-scraping the same headline on the same day writes
// to the same key.
type ArticleRepository interface {
	// Upsert inserts or replaces the article. The view counter of an
	// existing record is preserved so repeated scrapes never reset it.
	Upsert(ctx context.Context, article *entity.Article) error
	// Get returns the article or nil when the ID is unknown.
	Get(ctx context.Context, id string) (*entity.Article, error)
	// List returns all stored articles in unspecified order.
	List(ctx context.Context) ([]*entity.Article, error)
	// Count returns the number of stored articles.
	Count(ctx context.Context) (int64, error)
	// IncrementViews bumps the view counter and returns the updated article,
	// or nil when the ID is unknown.
	IncrementViews(ctx context.Context, id string) (*entity.Article, error)
	// TopViewed returns up to n articles ordered by view count descending.
	TopViewed(ctx context.Context, n int) ([]*entity.Article, error)
	// CategoryCounts returns the number of stored articles per category.
	CategoryCounts(ctx context.Context) (map[string]int, error)
	// TotalViews returns the sum of all article view counters.
	TotalViews(ctx context.Context) (int64, error)
}
