package repository

import (
	"context"

	"news-portal/internal/domain/entity"
)

// CommentRepository stores per-article comment lists in submission order.
// There is no update or delete operation.
type CommentRepository interface {
	// Add appends the comment to its article's list.
	Add(ctx context.Context, comment *entity.Comment) error
	// ListByArticle returns the article's comments in submission order.
	// Unknown article IDs yield an empty slice, not an error.
	ListByArticle(ctx context.Context, articleID string) ([]*entity.Comment, error)
}
