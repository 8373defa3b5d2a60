package news

import (
	"log/slog"
	"net/http"

	"news-portal/internal/common/pagination"
	"news-portal/internal/handler/http/requestid"
	"news-portal/internal/handler/http/respond"
	"news-portal/internal/observability/logging"
	newsUC "news-portal/internal/usecase/news"
)

type ListHandler struct {
	Svc           *newsUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP ニュース一覧取得
// @Summary      ニュース一覧取得（ページネーション対応）
// @Description  登録ソースから記事を集約して返します。source / category / search で絞り込みできます。
// @Tags         news
// @Produce      json
// @Param        source    query  string  false  "ソースID"
// @Param        category  query  string  false  "カテゴリ"
// @Param        search    query  string  false  "検索ワード"
// @Param        page      query  int     false  "ページ番号 (1-based)" default(1) minimum(1)
// @Param        per_page  query  int     false  "1ページあたりの件数" default(10) minimum(1) maximum(100)
// @Success      200 {object} ListResponse "ページネーション付きニュース一覧"
// @Failure      400 {string} string "Invalid query parameters"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /news [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("Invalid pagination parameters",
			"error", err.Error(),
			"request_id", reqID)
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	query := newsUC.Query{
		Source:   r.URL.Query().Get("source"),
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
		Page:     params.Page,
		PerPage:  params.PerPage,
	}

	logger.Info("News list request",
		"source", query.Source,
		"category", query.Category,
		"page", query.Page,
		"per_page", query.PerPage,
		"request_id", reqID)

	result, err := h.Svc.GetNews(ctx, query)
	if err != nil {
		logger.Error("Failed to aggregate news",
			"error", err.Error(),
			"source", query.Source,
			"request_id", reqID)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toListResponse(result))
}
