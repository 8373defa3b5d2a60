package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"news-portal/internal/handler/http/respond"
	"news-portal/internal/observability/metrics"
)

var errInvalidEmail = errors.New("valid email is required")

// NewsletterHandler records newsletter signups. Delivery is out of scope;
// the signup is counted and acknowledged.
type NewsletterHandler struct{}

// ServeHTTP ニュースレター購読
// @Summary      ニュースレター購読
// @Description  メールアドレスをニュースレターに登録します。
// @Tags         newsletter
// @Produce      json
// @Param        email query string true "メールアドレス"
// @Success      200 {object} map[string]string
// @Failure      400 {string} string "Invalid email"
// @Router       /newsletter/subscribe [get]
func (h NewsletterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" || !strings.Contains(email, "@") {
		respond.SafeError(w, http.StatusBadRequest, errInvalidEmail)
		return
	}

	metrics.RecordNewsletterSignup()

	respond.JSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Successfully subscribed %s to newsletter", email),
	})
}
