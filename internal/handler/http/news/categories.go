package news

import (
	"net/http"
	"strings"

	"news-portal/internal/config"
	"news-portal/internal/handler/http/respond"
)

type CategoriesHandler struct{ Registry *config.Registry }

// ServeHTTP カテゴリ一覧取得
// @Summary      カテゴリ一覧取得
// @Description  全ソースのカテゴリをマージしてソート順で返します。
// @Tags         news
// @Produce      json
// @Success      200 {object} map[string][]CategoryDTO
// @Router       /news/categories [get]
func (h CategoriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ids := h.Registry.Categories()
	categories := make([]CategoryDTO, 0, len(ids))
	for _, id := range ids {
		categories = append(categories, CategoryDTO{
			ID:    id,
			Name:  displayName(id),
			Count: 0,
		})
	}
	respond.JSON(w, http.StatusOK, map[string][]CategoryDTO{"categories": categories})
}

// displayName turns a category key like "real_estate" into "Real Estate".
func displayName(id string) string {
	words := strings.Split(strings.ReplaceAll(id, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
