// Package pathutil provides helpers for validating path parameters and
// normalizing request paths for metrics labels.
package pathutil

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when an ID path parameter is malformed.
var ErrInvalidID = errors.New("invalid id")

// ArticleID validates a path value as an article identifier: 32 lowercase
// hex characters (an MD5 digest).
//
// Example:
//
//	id, err := pathutil.ArticleID(r.PathValue("id"))
func ArticleID(v string) (string, error) {
	if len(v) != 32 {
		return "", ErrInvalidID
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", ErrInvalidID
		}
	}
	return v, nil
}

// UserID validates a path value as a user identifier (UUID).
func UserID(v string) (string, error) {
	if _, err := uuid.Parse(v); err != nil {
		return "", ErrInvalidID
	}
	return v, nil
}
