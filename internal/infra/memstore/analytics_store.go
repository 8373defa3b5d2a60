package memstore

import (
	"context"
	"sync"
)

// AnalyticsStore is a thread-safe in-memory implementation of
// repository.AnalyticsRepository.
type AnalyticsStore struct {
	mu    sync.RWMutex
	daily map[string]int64 // YYYY-MM-DD -> view count
}

// NewAnalyticsStore creates an empty analytics store.
func NewAnalyticsStore() *AnalyticsStore {
	return &AnalyticsStore{daily: make(map[string]int64)}
}

// IncrementDailyViews bumps the counter for the given day.
func (s *AnalyticsStore) IncrementDailyViews(_ context.Context, day string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.daily[day]++
	return nil
}

// DailyViews returns a copy of all daily counters.
func (s *AnalyticsStore) DailyViews(_ context.Context) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int64, len(s.daily))
	for day, count := range s.daily {
		out[day] = count
	}
	return out, nil
}
