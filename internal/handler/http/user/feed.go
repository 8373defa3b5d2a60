package user

import (
	"errors"
	"net/http"

	"news-portal/internal/common/pagination"
	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	userUC "news-portal/internal/usecase/user"
)

type FeedHandler struct {
	Svc           *userUC.Service
	PaginationCfg pagination.Config
}

// feedResponse mirrors the aggregation listing payload.
type feedResponse struct {
	Articles []entity.Article `json:"articles"`
	Total    int              `json:"total"`
	Source   string           `json:"source"`
	Page     int              `json:"page"`
	PerPage  int              `json:"per_page"`
	HasNext  bool             `json:"has_next"`
	HasPrev  bool             `json:"has_prev"`
}

// ServeHTTP パーソナライズドフィード取得
// @Summary      パーソナライズドフィード取得
// @Description  ユーザーの設定に基づいてソースとカテゴリを横断したフィードを返します。設定が空の場合はデフォルトの集約結果を返します。
// @Tags         users
// @Produce      json
// @Param        id        path   string  true   "ユーザーID"
// @Param        page      query  int     false  "ページ番号 (1-based)" default(1)
// @Param        per_page  query  int     false  "1ページあたりの件数" default(10)
// @Success      200 {object} feedResponse
// @Failure      400 {string} string "Bad request"
// @Failure      404 {string} string "User not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /users/{id}/feed [get]
func (h FeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, err := pathutil.UserID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.PersonalizedFeed(r.Context(), userID, params.Page, params.PerPage)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, userUC.ErrUserNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, feedResponse{
		Articles: result.Articles,
		Total:    result.Total,
		Source:   result.Source,
		Page:     result.Page,
		PerPage:  result.PerPage,
		HasNext:  result.HasNext,
		HasPrev:  result.HasPrev,
	})
}
