// Package user provides HTTP handlers for account endpoints: registration,
// login, bookmarks, preferences, and the personalized feed.
package user

// registerRequest is the JSON body for account registration.
type registerRequest struct {
	Email           string `json:"email"`
	Name            string `json:"name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// loginRequest is the JSON body for login. The password field is accepted
// for wire compatibility but not verified.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
