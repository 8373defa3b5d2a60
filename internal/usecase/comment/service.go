// Package comment provides use cases for article comments. Comments enter a
// moderation queue on submission and only approved comments are listed.
package comment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

// Service provides comment submission and listing.
type Service struct {
	Comments repository.CommentRepository
}

// AddInput represents the input parameters for submitting a comment.
type AddInput struct {
	ArticleID string
	UserID    string
	UserName  string
	Content   string
}

// Add queues a comment for moderation and returns its generated ID. The
// comment starts unapproved and will not appear in listings until a
// moderation pass approves it. The article is not required to exist yet;
// comments may arrive while a scrape is still in flight.
func (s *Service) Add(ctx context.Context, in AddInput) (string, error) {
	if strings.TrimSpace(in.Content) == "" {
		return "", &entity.ValidationError{Field: "content", Message: "content is required"}
	}
	if strings.TrimSpace(in.UserID) == "" {
		return "", &entity.ValidationError{Field: "user_id", Message: "user_id is required"}
	}

	c := &entity.Comment{
		ID:        uuid.NewString(),
		ArticleID: in.ArticleID,
		UserID:    in.UserID,
		UserName:  in.UserName,
		Content:   in.Content,
		CreatedAt: time.Now(),
		Approved:  false,
	}
	if err := s.Comments.Add(ctx, c); err != nil {
		return "", fmt.Errorf("add comment: %w", err)
	}
	return c.ID, nil
}

// ListApproved returns the approved comments for an article in submission
// order. Unknown articles yield an empty list.
func (s *Service) ListApproved(ctx context.Context, articleID string) ([]*entity.Comment, error) {
	comments, err := s.Comments.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	approved := make([]*entity.Comment, 0, len(comments))
	for _, c := range comments {
		if c.Approved {
			approved = append(approved, c)
		}
	}
	return approved, nil
}
