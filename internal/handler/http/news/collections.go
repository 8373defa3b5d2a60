package news

import (
	"net/http"

	"news-portal/internal/handler/http/respond"
	newsUC "news-portal/internal/usecase/news"
)

type TrendingHandler struct{ Svc *newsUC.Service }

// ServeHTTP トレンドニュース取得
// @Summary      トレンドニュース取得
// @Description  全ソースを集約した最新20件を返します。
// @Tags         news
// @Produce      json
// @Success      200 {object} ListResponse
// @Failure      500 {string} string "サーバーエラー"
// @Router       /news/trending [get]
func (h TrendingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	result, err := h.Svc.Trending(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toListResponse(result))
}

type BreakingHandler struct{ Svc *newsUC.Service }

// ServeHTTP 速報ニュース取得
// @Summary      速報ニュース取得
// @Description  速報と判定された見出しを最大10件返します。
// @Tags         news
// @Produce      json
// @Success      200 {object} ListResponse
// @Failure      500 {string} string "サーバーエラー"
// @Router       /news/breaking [get]
func (h BreakingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	result, err := h.Svc.Breaking(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toListResponse(result))
}

type FeaturedHandler struct{ Svc *newsUC.Service }

// ServeHTTP 注目ニュース取得
// @Summary      注目ニュース取得
// @Description  注目記事を最大8件返します。
// @Tags         news
// @Produce      json
// @Success      200 {object} ListResponse
// @Failure      500 {string} string "サーバーエラー"
// @Router       /news/featured [get]
func (h FeaturedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	result, err := h.Svc.Featured(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toListResponse(result))
}
