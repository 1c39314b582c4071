package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-recipe-catalog/internal/auth"
	"github.com/pribylovaa/go-recipe-catalog/internal/service"
	apierrors "github.com/pribylovaa/go-recipe-catalog/internal/transport/http/errors"
	logctx "github.com/pribylovaa/go-recipe-catalog/pkg/log"
)

// TokenVerifier проверяет bearer-токен и возвращает идентификатор пользователя.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// Authenticate требует валидный Bearer-токен в заголовке Authorization.
// Идентификатор пользователя кладётся в контекст (см. UserIDFrom);
// без токена или с невалидным токеном запрос завершается 401/unauthenticated.
func Authenticate(v TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := auth.BearerToken(r.Header.Get("Authorization"))
			if !ok {
				apierrors.WriteError(w, r, service.ErrUnauthenticated)
				return
			}

			uid, err := v.Verify(token)
			if err != nil {
				logctx.From(r.Context()).Warn("auth_token_rejected",
					slog.String("path", r.URL.Path),
					slog.String("err", err.Error()),
				)
				apierrors.WriteError(w, r, service.ErrUnauthenticated)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), uid)))
		})
	}
}
