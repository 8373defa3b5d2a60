package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	userUC "news-portal/internal/usecase/user"
)

type PreferencesHandler struct{ Svc *userUC.Service }

// ServeHTTP ユーザー設定保存
// @Summary      ユーザー設定保存
// @Description  フィード設定を丸ごと置き換えます。マージは行いません。
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "ユーザーID"
// @Param        body body entity.Preferences true "設定内容"
// @Success      200 {object} map[string]string
// @Failure      400 {string} string "Bad request"
// @Failure      404 {string} string "User not found"
// @Router       /users/{id}/preferences [post]
func (h PreferencesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, err := pathutil.UserID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var prefs entity.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	if err := h.Svc.SetPreferences(r.Context(), userID, prefs); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, userUC.ErrUserNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "Preferences saved successfully"})
}
