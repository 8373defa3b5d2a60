// Package memstore provides thread-safe in-memory implementations of the
// repository interfaces. State lives for the lifetime of the process and is
// shared by every handler; all mutation happens behind a sync.RWMutex so that
// concurrent requests keep last-writer-wins and monotonic-counter semantics.
package memstore

import (
	"context"
	"sort"
	"sync"

	"news-portal/internal/domain/entity"
)

// ArticleStore is a thread-safe in-memory implementation of
// repository.ArticleRepository, optimized for read-heavy workloads using
// sync.RWMutex.
type ArticleStore struct {
	mu       sync.RWMutex
	articles map[string]*entity.Article
}

// NewArticleStore creates an empty article store.
func NewArticleStore() *ArticleStore {
	return &ArticleStore{articles: make(map[string]*entity.Article)}
}

// Upsert inserts or replaces the article keyed by its ID. The view counter
// of an existing record is carried over so re-scraping never resets it.
func (s *ArticleStore) Upsert(_ context.Context, article *entity.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *article
	if prev, ok := s.articles[article.ID]; ok {
		stored.Views = prev.Views
	}
	s.articles[article.ID] = &stored
	return nil
}

// Get returns a copy of the article, or nil when the ID is unknown.
func (s *ArticleStore) Get(_ context.Context, id string) (*entity.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	article, ok := s.articles[id]
	if !ok {
		return nil, nil
	}
	out := *article
	return &out, nil
}

// List returns copies of all stored articles in unspecified order.
func (s *ArticleStore) List(_ context.Context) ([]*entity.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Article, 0, len(s.articles))
	for _, article := range s.articles {
		copied := *article
		out = append(out, &copied)
	}
	return out, nil
}

// Count returns the number of stored articles.
func (s *ArticleStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.articles)), nil
}

// IncrementViews bumps the article's view counter under the write lock and
// returns the updated record, or nil when the ID is unknown.
func (s *ArticleStore) IncrementViews(_ context.Context, id string) (*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	article, ok := s.articles[id]
	if !ok {
		return nil, nil
	}
	article.Views++
	out := *article
	return &out, nil
}

// TopViewed returns up to n articles ordered by view count descending.
func (s *ArticleStore) TopViewed(_ context.Context, n int) ([]*entity.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Article, 0, len(s.articles))
	for _, article := range s.articles {
		copied := *article
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// CategoryCounts returns the number of stored articles per non-empty category.
func (s *ArticleStore) CategoryCounts(_ context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, article := range s.articles {
		if article.Category != "" {
			counts[article.Category]++
		}
	}
	return counts, nil
}

// TotalViews returns the sum of all article view counters.
func (s *ArticleStore) TotalViews(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, article := range s.articles {
		total += article.Views
	}
	return total, nil
}
