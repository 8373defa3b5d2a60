package repository

import "context"

// AnalyticsRepository tracks daily view counters keyed by calendar day
// (YYYY-MM-DD).
type AnalyticsRepository interface {
	// IncrementDailyViews bumps the counter for the given day.
	IncrementDailyViews(ctx context.Context, day string) error
	// DailyViews returns a copy of all daily counters.
	DailyViews(ctx context.Context) (map[string]int64, error)
}
