package respond

import (
	"regexp"
)

var (
	// URL内の認証情報パターン（ペイウォール付きソースのURL等）
	urlCredentialsPattern = regexp.MustCompile(`://([^:/\s]+):([^@/\s]+)@`)

	// Bearerトークンパターン
	bearerTokenPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._\-]+`)
)

// SanitizeError は機密情報をマスクしたエラーメッセージを返す
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	// URL認証情報のマスク
	msg = urlCredentialsPattern.ReplaceAllString(msg, "://$1:****@")

	// トークンのマスク
	msg = bearerTokenPattern.ReplaceAllString(msg, "Bearer ****")

	return msg
}
