package entity

import "time"

// Comment represents a user comment on an article. UserName is denormalized
// at submission time. Approved defaults to false and no exposed operation
// flips it, so comment listings (which filter to approved) stay empty.
type Comment struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"article_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Approved  bool      `json:"approved"`
}
