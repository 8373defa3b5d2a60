package news

import (
	"errors"
	"net/http"

	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	newsUC "news-portal/internal/usecase/news"
)

type GetHandler struct{ Svc *newsUC.Service }

// ServeHTTP 記事詳細取得
// @Summary      記事詳細取得
// @Description  指定されたIDの記事を返し、閲覧数をインクリメントします。
// @Tags         news
// @Produce      json
// @Param        id path string true "記事ID（32桁の16進ハッシュ）"
// @Success      200 {object} entity.Article "記事詳細"
// @Failure      400 {string} string "Bad request - invalid article ID"
// @Failure      404 {string} string "Not found - article not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /news/article/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ArticleID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	article, err := h.Svc.ReadArticle(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, newsUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, article)
}
