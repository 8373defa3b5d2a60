package user

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/requestid"
	"news-portal/internal/handler/http/respond"
	"news-portal/internal/observability/logging"
	userUC "news-portal/internal/usecase/user"
)

type RegisterHandler struct {
	Svc    *userUC.Service
	Logger *slog.Logger
}

// ServeHTTP ユーザー登録
// @Summary      ユーザー登録
// @Description  新規アカウントを作成します。メールアドレスは一意です。
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body body registerRequest true "登録情報"
// @Success      200 {object} map[string]string
// @Failure      400 {string} string "Bad request - validation failure or email taken"
// @Router       /users/register [post]
func (h RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	u, err := h.Svc.Register(ctx, userUC.RegisterInput{
		Email:           req.Email,
		Name:            req.Name,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		var verr *entity.ValidationError
		switch {
		case errors.As(err, &verr),
			errors.Is(err, userUC.ErrEmailTaken),
			errors.Is(err, userUC.ErrPasswordMismatch):
			respond.SafeError(w, http.StatusBadRequest, err)
		default:
			logger.Error("Failed to register user",
				"error", err.Error(),
				"request_id", requestid.FromContext(ctx))
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	logger.Info("User registered", "user_id", u.ID)

	respond.JSON(w, http.StatusOK, map[string]string{
		"message": "User registered successfully",
		"user_id": u.ID,
	})
}
