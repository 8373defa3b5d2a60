package http

import (
	"net/http"

	"news-portal/internal/handler/http/respond"
)

// APIVersion is reported by the banner endpoint and health checks.
const APIVersion = "1.0.0"

// RootHandler serves the API banner at the root path.
type RootHandler struct{}

func (h RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{
		"message": "News Portal API is running",
		"version": APIVersion,
	})
}
