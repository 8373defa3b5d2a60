package user

import (
	"errors"
	"net/http"

	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	userUC "news-portal/internal/usecase/user"
)

type BookmarksHandler struct{ Svc *userUC.Service }

// ServeHTTP ブックマーク一覧取得
// @Summary      ブックマーク一覧取得
// @Description  ユーザーがブックマークした記事を返します。ストアに存在しない記事はスキップされます。
// @Tags         users
// @Produce      json
// @Param        id path string true "ユーザーID"
// @Success      200 {object} map[string][]entity.Article
// @Failure      400 {string} string "Bad request - invalid user ID"
// @Failure      404 {string} string "User not found"
// @Router       /users/{id}/bookmarks [get]
func (h BookmarksHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, err := pathutil.UserID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	articles, err := h.Svc.Bookmarks(r.Context(), userID)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, userUC.ErrUserNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string][]entity.Article{"bookmarks": articles})
}
