package news

import (
	"log/slog"
	"net/http"

	"news-portal/internal/common/pagination"
	"news-portal/internal/config"
	commentUC "news-portal/internal/usecase/comment"
	newsUC "news-portal/internal/usecase/news"
	userUC "news-portal/internal/usecase/user"
)

// Register registers all news-related HTTP handlers with the given mux.
// It sets up routes for listing, trending, breaking, featured and category
// listings, single article retrieval, bookmarking, comments, and search.
func Register(mux *http.ServeMux, svc *newsUC.Service, users *userUC.Service, comments *commentUC.Service, registry *config.Registry, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /news", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /news/trending", TrendingHandler{svc})
	mux.Handle("GET    /news/breaking", BreakingHandler{svc})
	mux.Handle("GET    /news/featured", FeaturedHandler{svc})
	mux.Handle("GET    /news/categories", CategoriesHandler{registry})
	mux.Handle("GET    /news/article/{id}", GetHandler{svc})

	mux.Handle("POST   /news/article/{id}/bookmark", BookmarkHandler{users})
	mux.Handle("DELETE /news/article/{id}/bookmark", UnbookmarkHandler{users})

	mux.Handle("POST   /news/article/{id}/comments", AddCommentHandler{comments})
	mux.Handle("GET    /news/article/{id}/comments", ListCommentsHandler{comments})

	mux.Handle("GET    /search", SearchHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
	})
}
