package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/respond"
	userUC "news-portal/internal/usecase/user"
)

type LoginHandler struct{ Svc *userUC.Service }

// loginResponse mirrors the login payload: the user object is embedded so
// clients can hydrate their session without a second request.
type loginResponse struct {
	Message string       `json:"message"`
	UserID  string       `json:"user_id"`
	User    *entity.User `json:"user"`
}

// ServeHTTP ログイン
// @Summary      ログイン
// @Description  メールアドレスでログインします。最終ログイン時刻を記録します。
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body body loginRequest true "ログイン情報"
// @Success      200 {object} loginResponse
// @Failure      400 {string} string "Bad request"
// @Failure      401 {string} string "Invalid credentials"
// @Router       /users/login [post]
func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	u, err := h.Svc.Login(r.Context(), req.Email)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, userUC.ErrInvalidCredentials) {
			code = http.StatusUnauthorized
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		UserID:  u.ID,
		User:    u,
	})
}
