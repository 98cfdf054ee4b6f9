package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/D2D-MarketplaceService/internal/api/handlers"
)

// HeaderUserID заголовок с идентификатором пользователя
const HeaderUserID = "X-User-ID"

// maxUserIDLen ограничение длины идентификатора пользователя
const maxUserIDLen = 64

const msgMissingUserID = "отсутствует заголовок X-User-ID"

type contextKey string

const userIDKey contextKey = "user_id"

// Auth проверяет X-User-ID и кладёт его в контекст запроса
// Идентификатор непрозрачный: сервис не проверяет его в других системах
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if userID == "" || len(userID) > maxUserIDLen {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID возвращает контекст с идентификатором пользователя
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID достаёт идентификатор пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
