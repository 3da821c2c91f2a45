package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/auth"
)

type contextKey string

// AdminUsernameKey ключ контекста с именем администратора из токена
const AdminUsernameKey contextKey = "adminUsername"

const msgUnauthorized = "требуется авторизация администратора"

// TokenVerifier проверяет сессионный токен администратора
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AdminAuth проверяет Bearer-токен администратора и кладет имя в контекст
func AdminAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), AdminUsernameKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminUsername достает имя администратора из контекста запроса
func AdminUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(AdminUsernameKey).(string)
	return username, ok
}
