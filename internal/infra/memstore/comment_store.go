package memstore

import (
	"context"
	"sync"

	"news-portal/internal/domain/entity"
)

// CommentStore is a thread-safe in-memory implementation of
// repository.CommentRepository. Comments are kept per article in submission
// order.
type CommentStore struct {
	mu       sync.RWMutex
	comments map[string][]*entity.Comment // article ID -> comments
}

// NewCommentStore creates an empty comment store.
func NewCommentStore() *CommentStore {
	return &CommentStore{comments: make(map[string][]*entity.Comment)}
}

// Add appends the comment to its article's list.
func (s *CommentStore) Add(_ context.Context, comment *entity.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *comment
	s.comments[comment.ArticleID] = append(s.comments[comment.ArticleID], &stored)
	return nil
}

// ListByArticle returns copies of the article's comments in submission order.
// Unknown article IDs yield an empty slice.
func (s *CommentStore) ListByArticle(_ context.Context, articleID string) ([]*entity.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.comments[articleID]
	out := make([]*entity.Comment, 0, len(stored))
	for _, comment := range stored {
		copied := *comment
		out = append(out, &copied)
	}
	return out, nil
}
