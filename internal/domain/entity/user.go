package entity

import "time"

// User represents a registered account.
// Bookmarks holds article IDs; insertion order is preserved for listing but
// carries no semantic meaning.
type User struct {
	ID                 string      `json:"id"`
	Email              string      `json:"email"`
	Name               string      `json:"name"`
	Preferences        Preferences `json:"preferences"`
	Bookmarks          []string    `json:"bookmarks"`
	SubscriptionActive bool        `json:"subscription_active"`
	CreatedAt          time.Time   `json:"created_at"`
	LastLogin          *time.Time  `json:"last_login,omitempty"`
}

// Preferences is the declared preference payload. Saving preferences replaces
// the whole struct; there is no merge step.
type Preferences struct {
	Categories    []string `json:"categories"`
	Sources       []string `json:"sources"`
	Location      string   `json:"location,omitempty"`
	DarkMode      bool     `json:"dark_mode"`
	Notifications bool     `json:"notifications"`
}

// IsZero reports whether the user has not expressed any feed preference.
func (p Preferences) IsZero() bool {
	return len(p.Categories) == 0 && len(p.Sources) == 0
}

// HasBookmark reports whether the article ID is already bookmarked.
func (u *User) HasBookmark(articleID string) bool {
	for _, id := range u.Bookmarks {
		if id == articleID {
			return true
		}
	}
	return false
}
