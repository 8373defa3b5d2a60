// Package user provides use cases for account management: registration,
// login, bookmarks, and preference updates.
package user

import "errors"

// Sentinel errors for user use case operations.
var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates that the email address is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates a login attempt with an unknown email.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordMismatch indicates that the password confirmation did not
	// match the password during registration.
	ErrPasswordMismatch = errors.New("passwords do not match")
)
