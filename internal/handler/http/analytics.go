package http

import (
	"net/http"

	"news-portal/internal/handler/http/respond"
	analyticsUC "news-portal/internal/usecase/analytics"
)

// AnalyticsHandler serves the aggregated usage report for the admin
// dashboard.
type AnalyticsHandler struct{ Svc *analyticsUC.Service }

// ServeHTTP アナリティクス取得
// @Summary      アナリティクス取得
// @Description  記事数・閲覧数・カテゴリ分布・人気記事・日別閲覧数を返します。
// @Tags         analytics
// @Produce      json
// @Success      200 {object} analytics.Report
// @Failure      500 {string} string "サーバーエラー"
// @Router       /analytics [get]
func (h AnalyticsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	report, err := h.Svc.Report(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, report)
}
