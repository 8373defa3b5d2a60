package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
	"news-portal/internal/usecase/news"
)

// FeedProvider builds personalized article feeds for a set of preferences.
// Implemented by news.Service.
type FeedProvider interface {
	PersonalizedFeed(ctx context.Context, prefs entity.Preferences, page, perPage int) (*news.Result, error)
}

// Service provides account management use cases. It handles registration,
// login, bookmarks, and preference updates, and delegates persistence to the
// user repository.
type Service struct {
	Users    repository.UserRepository
	Articles repository.ArticleRepository
	Feed     FeedProvider
}

// RegisterInput represents the input parameters for registering a user.
type RegisterInput struct {
	Email           string
	Name            string
	Password        string
	ConfirmPassword string
}

// Register creates a new user account. The password is confirmation-checked
// but not stored; login is email based.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, &entity.ValidationError{Field: "email", Message: "valid email is required"}
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "name is required"}
	}
	if in.ConfirmPassword != "" && in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	u := &entity.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      strings.TrimSpace(in.Name),
		Bookmarks: []string{},
		CreatedAt: time.Now(),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Login looks the user up by email and records the login time. There is no
// password verification; an unknown email fails with ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.Users.TouchLastLogin(ctx, u.ID, now); err != nil {
		return nil, fmt.Errorf("record login: %w", err)
	}
	u.LastLogin = &now
	return u, nil
}

// Get returns the user by ID or ErrUserNotFound.
func (s *Service) Get(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Users.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Bookmark adds the article to the user's bookmark set. Re-bookmarking is a
// no-op. The article is not required to exist; bookmarks on articles that
// later leave the store are simply dropped when listed.
func (s *Service) Bookmark(ctx context.Context, userID, articleID string) error {
	if _, err := s.Get(ctx, userID); err != nil {
		return err
	}
	if err := s.Users.AddBookmark(ctx, userID, articleID); err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}
	return nil
}

// RemoveBookmark removes the article from the user's bookmark set. Removing
// an absent bookmark is a no-op.
func (s *Service) RemoveBookmark(ctx context.Context, userID, articleID string) error {
	if _, err := s.Get(ctx, userID); err != nil {
		return err
	}
	if err := s.Users.RemoveBookmark(ctx, userID, articleID); err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	return nil
}

// Bookmarks resolves the user's bookmarked article IDs against the article
// store, silently skipping IDs the store no longer holds.
func (s *Service) Bookmarks(ctx context.Context, userID string) ([]entity.Article, error) {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	articles := make([]entity.Article, 0, len(u.Bookmarks))
	for _, id := range u.Bookmarks {
		a, err := s.Articles.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve bookmark %s: %w", id, err)
		}
		if a == nil {
			continue
		}
		articles = append(articles, *a)
	}
	return articles, nil
}

// SetPreferences replaces the user's preferences wholesale.
func (s *Service) SetPreferences(ctx context.Context, userID string, prefs entity.Preferences) error {
	if _, err := s.Get(ctx, userID); err != nil {
		return err
	}
	if err := s.Users.SetPreferences(ctx, userID, prefs); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// PersonalizedFeed builds the user's feed from their stored preferences.
// Users without preferences get the default aggregation.
func (s *Service) PersonalizedFeed(ctx context.Context, userID string, page, perPage int) (*news.Result, error) {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Feed.PersonalizedFeed(ctx, u.Preferences, page, perPage)
}
