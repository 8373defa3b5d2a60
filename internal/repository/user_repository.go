package repository

import (
	"context"
	"errors"
	"time"

	"news-portal/internal/domain/entity"
)

// ErrEmailTaken is returned by Create when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository stores registered users. Emails are unique across users.
type UserRepository interface {
	// Create stores a new user. Returns ErrEmailTaken when another user
	// already holds the same email address.
	Create(ctx context.Context, user *entity.User) error
	// Get returns the user or nil when the ID is unknown.
	Get(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail returns the user or nil when no user has that email.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// TouchLastLogin records a login timestamp for the user.
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	// AddBookmark adds the article ID to the user's bookmark set.
	// Adding an already-present ID is a no-op.
	AddBookmark(ctx context.Context, userID, articleID string) error
	// RemoveBookmark removes the article ID from the user's bookmark set.
	// Removing an absent ID is a no-op.
	RemoveBookmark(ctx context.Context, userID, articleID string) error
	// SetPreferences replaces the user's preferences wholesale.
	SetPreferences(ctx context.Context, userID string, prefs entity.Preferences) error
}
