package news

import (
	"errors"
	"net/http"

	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	userUC "news-portal/internal/usecase/user"
)

var errMissingUserID = errors.New("query parameter user_id is required")

type BookmarkHandler struct{ Users *userUC.Service }

// ServeHTTP 記事ブックマーク追加
// @Summary      記事ブックマーク追加
// @Description  指定ユーザーのブックマークに記事を追加します。既に登録済みの場合は何もしません。
// @Tags         news
// @Produce      json
// @Param        id       path   string  true  "記事ID"
// @Param        user_id  query  string  true  "ユーザーID"
// @Success      200 {object} map[string]string
// @Failure      400 {string} string "Bad request"
// @Failure      404 {string} string "User not found"
// @Router       /news/article/{id}/bookmark [post]
func (h BookmarkHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, userID, ok := bookmarkParams(w, r)
	if !ok {
		return
	}

	if err := h.Users.Bookmark(r.Context(), userID, articleID); err != nil {
		respondBookmarkError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "Article bookmarked successfully"})
}

type UnbookmarkHandler struct{ Users *userUC.Service }

// ServeHTTP 記事ブックマーク削除
// @Summary      記事ブックマーク削除
// @Description  指定ユーザーのブックマークから記事を削除します。
// @Tags         news
// @Produce      json
// @Param        id       path   string  true  "記事ID"
// @Param        user_id  query  string  true  "ユーザーID"
// @Success      200 {object} map[string]string
// @Failure      400 {string} string "Bad request"
// @Failure      404 {string} string "User not found"
// @Router       /news/article/{id}/bookmark [delete]
func (h UnbookmarkHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, userID, ok := bookmarkParams(w, r)
	if !ok {
		return
	}

	if err := h.Users.RemoveBookmark(r.Context(), userID, articleID); err != nil {
		respondBookmarkError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "Bookmark removed successfully"})
}

func bookmarkParams(w http.ResponseWriter, r *http.Request) (articleID, userID string, ok bool) {
	articleID, err := pathutil.ArticleID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return "", "", false
	}
	userID = r.URL.Query().Get("user_id")
	if userID == "" {
		respond.SafeError(w, http.StatusBadRequest, errMissingUserID)
		return "", "", false
	}
	return articleID, userID, true
}

func respondBookmarkError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	if errors.Is(err, userUC.ErrUserNotFound) {
		code = http.StatusNotFound
	}
	respond.SafeError(w, code, err)
}
