// auth проверяет bearer-токены доступа (JWT HS256), выпущенные сервисом аутентификации.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-recipe-catalog/internal/config"
)

var (
	// ErrInvalidToken — токен не прошёл проверку подписи/клеймов.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired — срок действия токена истёк.
	ErrTokenExpired = errors.New("token expired")
)

// leeway — допустимое расхождение часов при проверке exp/nbf/iat.
const leeway = 5 * time.Second

type accessClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Verifier проверяет access-токены и извлекает из них идентификатор пользователя.
type Verifier struct {
	secret   []byte
	issuer   string
	audience []string
}

// NewVerifier создаёт Verifier из секции auth конфига.
func NewVerifier(cfg config.AuthConfig) *Verifier {
	return &Verifier{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
	}
}

// Verify валидирует токен и возвращает идентификатор пользователя.
// Идентификатор берётся из клейма uid, а при его отсутствии — из sub.
func (v *Verifier) Verify(tokenStr string) (uuid.UUID, error) {
	const op = "auth.Verify"

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(leeway),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if len(v.audience) > 0 {
		opts = append(opts, jwt.WithAudience(v.audience...))
	}

	token, err := jwt.ParseWithClaims(strings.TrimSpace(tokenStr), &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return v.secret, nil
		},
		opts...,
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	subject := claims.UserID
	if subject == "" {
		subject = claims.Subject
	}

	uid, err := uuid.Parse(subject)
	if err != nil || uid == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return uid, nil
}

// BearerToken извлекает токен из значения заголовка Authorization.
// Возвращает false, если схема не Bearer или токен пуст.
func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}
