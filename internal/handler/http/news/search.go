package news

import (
	"errors"
	"net/http"

	"news-portal/internal/common/pagination"
	"news-portal/internal/handler/http/respond"
	newsUC "news-portal/internal/usecase/news"
)

var errMissingQuery = errors.New("query parameter q is required")

type SearchHandler struct {
	Svc           *newsUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP ニュース検索
// @Summary      ニュース検索
// @Description  タイトル・要約・タグに対する部分一致検索です。q は必須です。
// @Tags         news
// @Produce      json
// @Param        q         query  string  true   "検索ワード"
// @Param        source    query  string  false  "ソースID"
// @Param        category  query  string  false  "カテゴリ"
// @Param        page      query  int     false  "ページ番号 (1-based)" default(1)
// @Param        per_page  query  int     false  "1ページあたりの件数" default(10)
// @Success      200 {object} ListResponse
// @Failure      400 {string} string "Missing search query"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /search [get]
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respond.SafeError(w, http.StatusBadRequest, errMissingQuery)
		return
	}

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.GetNews(r.Context(), newsUC.Query{
		Source:   r.URL.Query().Get("source"),
		Category: r.URL.Query().Get("category"),
		Search:   q,
		Page:     params.Page,
		PerPage:  params.PerPage,
	})
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toListResponse(result))
}
