package news

import (
	"encoding/json"
	"errors"
	"net/http"

	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	commentUC "news-portal/internal/usecase/comment"
)

// commentRequest is the JSON body for comment submission.
type commentRequest struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Content  string `json:"content"`
}

type AddCommentHandler struct{ Svc *commentUC.Service }

// ServeHTTP コメント投稿
// @Summary      コメント投稿
// @Description  記事にコメントを投稿します。コメントは承認待ちキューに入ります。
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "記事ID"
// @Param        body body commentRequest true "コメント内容"
// @Success      200 {object} map[string]string
// @Failure      400 {string} string "Bad request"
// @Router       /news/article/{id}/comments [post]
func (h AddCommentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.ArticleID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	commentID, err := h.Svc.Add(r.Context(), commentUC.AddInput{
		ArticleID: articleID,
		UserID:    req.UserID,
		UserName:  req.UserName,
		Content:   req.Content,
	})
	if err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{
		"message":    "Comment added successfully",
		"comment_id": commentID,
	})
}

type ListCommentsHandler struct{ Svc *commentUC.Service }

// ServeHTTP コメント一覧取得
// @Summary      コメント一覧取得
// @Description  記事の承認済みコメントを投稿順で返します。
// @Tags         comments
// @Produce      json
// @Param        id path string true "記事ID"
// @Success      200 {object} map[string][]entity.Comment
// @Failure      400 {string} string "Bad request"
// @Router       /news/article/{id}/comments [get]
func (h ListCommentsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.ArticleID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	comments, err := h.Svc.ListApproved(r.Context(), articleID)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string][]*entity.Comment{"comments": comments})
}
