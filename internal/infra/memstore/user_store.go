package memstore

import (
	"context"
	"strings"
	"sync"
	"time"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

// UserStore is a thread-safe in-memory implementation of
// repository.UserRepository. Email uniqueness is enforced under the write
// lock via a secondary index.
type UserStore struct {
	mu      sync.RWMutex
	users   map[string]*entity.User
	byEmail map[string]string // lowercase email -> user ID
}

// NewUserStore creates an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{
		users:   make(map[string]*entity.User),
		byEmail: make(map[string]string),
	}
}

// Create stores a new user. Returns repository.ErrEmailTaken when another
// user already holds the same email address (case-insensitive).
func (s *UserStore) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, ok := s.byEmail[key]; ok {
		return repository.ErrEmailTaken
	}

	stored := cloneUser(user)
	s.users[user.ID] = stored
	s.byEmail[key] = user.ID
	return nil
}

// Get returns a copy of the user, or nil when the ID is unknown.
func (s *UserStore) Get(_ context.Context, id string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(user), nil
}

// GetByEmail returns a copy of the user, or nil when no user has that email.
func (s *UserStore) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return cloneUser(s.users[id]), nil
}

// TouchLastLogin records a login timestamp for the user. Unknown IDs are a
// no-op.
func (s *UserStore) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.users[id]; ok {
		user.LastLogin = &at
	}
	return nil
}

// AddBookmark adds the article ID to the user's bookmark set. Adding an
// already-present ID is a no-op.
func (s *UserStore) AddBookmark(_ context.Context, userID, articleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil
	}
	if !user.HasBookmark(articleID) {
		user.Bookmarks = append(user.Bookmarks, articleID)
	}
	return nil
}

// RemoveBookmark removes the article ID from the user's bookmark set.
// Removing an absent ID is a no-op.
func (s *UserStore) RemoveBookmark(_ context.Context, userID, articleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil
	}
	for i, id := range user.Bookmarks {
		if id == articleID {
			user.Bookmarks = append(user.Bookmarks[:i], user.Bookmarks[i+1:]...)
			return nil
		}
	}
	return nil
}

// SetPreferences replaces the user's preferences wholesale. Unknown IDs are a
// no-op.
func (s *UserStore) SetPreferences(_ context.Context, userID string, prefs entity.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.users[userID]; ok {
		user.Preferences = prefs
	}
	return nil
}

// cloneUser deep-copies the slices so callers cannot mutate stored state.
func cloneUser(u *entity.User) *entity.User {
	out := *u
	out.Bookmarks = append([]string(nil), u.Bookmarks...)
	out.Preferences.Categories = append([]string(nil), u.Preferences.Categories...)
	out.Preferences.Sources = append([]string(nil), u.Preferences.Sources...)
	if u.LastLogin != nil {
		t := *u.LastLogin
		out.LastLogin = &t
	}
	return &out
}
