// Package http provides HTTP handlers and middleware for the web application.
// It includes the news and user endpoint handlers, health check endpoints,
// metrics collection, and various middleware components.
package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"news-portal/internal/config"
	"news-portal/internal/repository"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string                 `json:"status"`            // "healthy", "degraded" or "unhealthy"
	Message string                 `json:"message,omitempty"` // Optional status message
	Details map[string]interface{} `json:"details,omitempty"` // Optional additional details
}

// HealthHandler handles health check endpoint requests.
// It verifies that the source registry is configured and that the article
// store is reachable, and reports how many articles are currently held.
type HealthHandler struct {
	Registry *config.Registry
	Articles repository.ArticleRepository
	Version  string
}

// ServeHTTP performs health checks and returns the application health status.
// Returns 200 OK if healthy, or 503 Service Unavailable if any check fails.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	allHealthy := true

	// ソースレジストリチェック
	sourcesCheck := h.checkSources()
	checks["sources"] = sourcesCheck
	if sourcesCheck.Status == "unhealthy" {
		allHealthy = false
	}

	// 記事ストアチェック
	storeCheck := h.checkArticleStore(ctx)
	checks["article_store"] = storeCheck
	if storeCheck.Status == "unhealthy" {
		allHealthy = false
	}

	// 全体のステータス決定
	// "degraded" is a warning state, not a failure - system is still operational
	status := "healthy"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	// レスポンス作成
	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("health: failed to encode response: %v", err)
	}
}

// checkSources verifies that at least one news source is configured and
// reports the registered source identifiers.
func (h *HealthHandler) checkSources() CheckStatus {
	if h.Registry == nil || h.Registry.Len() == 0 {
		return CheckStatus{
			Status:  "unhealthy",
			Message: "no sources configured",
		}
	}

	ids := make([]string, 0, h.Registry.Len())
	for _, src := range h.Registry.All() {
		ids = append(ids, src.ID)
	}

	return CheckStatus{
		Status: "healthy",
		Details: map[string]interface{}{
			"count":   h.Registry.Len(),
			"sources": ids,
		},
	}
}

// checkArticleStore verifies that the article store is reachable and reports
// how many articles it currently holds. An empty store is reported as
// degraded rather than unhealthy: the first crawl may not have run yet.
func (h *HealthHandler) checkArticleStore(ctx context.Context) CheckStatus {
	if h.Articles == nil {
		return CheckStatus{
			Status:  "unhealthy",
			Message: "not configured",
		}
	}

	count, err := h.Articles.Count(ctx)
	if err != nil {
		return CheckStatus{
			Status:  "unhealthy",
			Message: err.Error(),
		}
	}

	details := map[string]interface{}{
		"articles": count,
	}

	if count == 0 {
		return CheckStatus{
			Status:  "degraded",
			Message: "no articles stored yet",
			Details: details,
		}
	}

	return CheckStatus{
		Status:  "healthy",
		Details: details,
	}
}

// ReadyHandler handles Kubernetes readiness probe requests.
// It checks that the article store is reachable and ready to serve traffic.
type ReadyHandler struct {
	Articles repository.ArticleRepository
}

// ServeHTTP performs readiness checks and returns 200 OK if ready,
// or 503 Service Unavailable if the article store is not ready.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.Articles == nil {
		http.Error(w, "article store not configured", http.StatusServiceUnavailable)
		return
	}

	if _, err := h.Articles.Count(ctx); err != nil {
		http.Error(w, "article store not ready: "+err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		log.Printf("ready: failed to write response: %v", err)
	}
}

// LiveHandler handles Kubernetes liveness probe requests.
// It performs a lightweight check to verify the application is responsive.
type LiveHandler struct{}

// ServeHTTP performs a simple liveness check and always returns 200 OK
// if the application is running and able to respond.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		log.Printf("alive: failed to write response: %v", err)
	}
}
