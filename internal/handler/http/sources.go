package http

import (
	"net/http"
	"sort"

	"news-portal/internal/config"
	"news-portal/internal/handler/http/respond"
)

// SourceDTO represents one entry of the source listing.
type SourceDTO struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

// SourcesHandler lists the configured news sources.
type SourcesHandler struct{ Registry *config.Registry }

// ServeHTTP ソース一覧取得
// @Summary      ソース一覧取得
// @Description  設定済みのニュースソースとそのカテゴリを返します。
// @Tags         sources
// @Produce      json
// @Success      200 {object} map[string][]SourceDTO
// @Router       /sources [get]
func (h SourcesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sources := make([]SourceDTO, 0, h.Registry.Len())
	for _, src := range h.Registry.All() {
		categories := make([]string, 0, len(src.Categories))
		for cat := range src.Categories {
			categories = append(categories, cat)
		}
		sort.Strings(categories)
		sources = append(sources, SourceDTO{
			ID:         src.ID,
			Name:       src.Name,
			Categories: categories,
		})
	}
	respond.JSON(w, http.StatusOK, map[string][]SourceDTO{"sources": sources})
}
