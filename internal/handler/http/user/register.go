package user

import (
	"log/slog"
	"net/http"

	"news-portal/internal/common/pagination"
	userUC "news-portal/internal/usecase/user"
)

// Register registers all user-related HTTP handlers with the given mux.
// It sets up routes for registration, login, bookmarks, preferences, and
// the personalized feed. limit wraps the account endpoints and may be nil.
func Register(mux *http.ServeMux, svc *userUC.Service, paginationCfg pagination.Config, logger *slog.Logger, limit func(http.Handler) http.Handler) {
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}

	mux.Handle("POST   /users/register", limit(RegisterHandler{
		Svc:    svc,
		Logger: logger,
	}))
	mux.Handle("POST   /users/login", limit(LoginHandler{svc}))

	mux.Handle("GET    /users/{id}/bookmarks", BookmarksHandler{svc})
	mux.Handle("POST   /users/{id}/preferences", PreferencesHandler{svc})
	mux.Handle("GET    /users/{id}/feed", FeedHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
	})
}
