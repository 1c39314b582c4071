package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-recipe-catalog/internal/config"
	"github.com/stretchr/testify/require"
)

func testAuthCfg() config.AuthConfig {
	return config.AuthConfig{
		Secret:   "unit-test-secret",
		Issuer:   "auth-service",
		Audience: []string{"recipe-service"},
	}
}

func sign(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func validClaims(uid uuid.UUID) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"uid": uid.String(),
		"sub": uid.String(),
		"iss": "auth-service",
		"aud": []string{"recipe-service"},
		"exp": now.Add(15 * time.Minute).Unix(),
		"iat": now.Unix(),
	}
}

func TestVerify_OK(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testAuthCfg())
	uid := uuid.New()

	got, err := v.Verify(sign(t, jwt.SigningMethodHS256, "unit-test-secret", validClaims(uid)))
	require.NoError(t, err)
	require.Equal(t, uid, got)
}

func TestVerify_SubjectFallback(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testAuthCfg())
	uid := uuid.New()
	claims := validClaims(uid)
	delete(claims, "uid")

	got, err := v.Verify(sign(t, jwt.SigningMethodHS256, "unit-test-secret", claims))
	require.NoError(t, err)
	require.Equal(t, uid, got)
}

func TestVerify_Rejects(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testAuthCfg())
	uid := uuid.New()

	mutate := func(f func(jwt.MapClaims)) jwt.MapClaims {
		c := validClaims(uid)
		f(c)
		return c
	}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"garbage", "not.a.token", ErrInvalidToken},
		{"empty", "", ErrInvalidToken},
		{"wrong secret", sign(t, jwt.SigningMethodHS256, "other", validClaims(uid)), ErrInvalidToken},
		{"wrong alg", sign(t, jwt.SigningMethodHS512, "unit-test-secret", validClaims(uid)), ErrInvalidToken},
		{"wrong issuer", sign(t, jwt.SigningMethodHS256, "unit-test-secret", mutate(func(c jwt.MapClaims) { c["iss"] = "evil" })), ErrInvalidToken},
		{"wrong audience", sign(t, jwt.SigningMethodHS256, "unit-test-secret", mutate(func(c jwt.MapClaims) { c["aud"] = []string{"other"} })), ErrInvalidToken},
		{"no exp", sign(t, jwt.SigningMethodHS256, "unit-test-secret", mutate(func(c jwt.MapClaims) { delete(c, "exp") })), ErrInvalidToken},
		{"expired", sign(t, jwt.SigningMethodHS256, "unit-test-secret", mutate(func(c jwt.MapClaims) { c["exp"] = time.Now().Add(-time.Hour).Unix() })), ErrTokenExpired},
		{"bad uid", sign(t, jwt.SigningMethodHS256, "unit-test-secret", mutate(func(c jwt.MapClaims) { c["uid"] = "nope" })), ErrInvalidToken},
		{"nil uid", sign(t, jwt.SigningMethodHS256, "unit-test-secret", mutate(func(c jwt.MapClaims) { c["uid"] = uuid.Nil.String() })), ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(tt.token)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVerify_NoIssuerAudienceConfigured(t *testing.T) {
	t.Parallel()

	v := NewVerifier(config.AuthConfig{Secret: "s"})
	uid := uuid.New()
	claims := validClaims(uid)
	claims["iss"] = "anyone"

	got, err := v.Verify(sign(t, jwt.SigningMethodHS256, "s", claims))
	require.NoError(t, err)
	require.Equal(t, uid, got)
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer   abc  ", "abc", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
		{"Bearer    ", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := BearerToken(tt.header)
		require.Equal(t, tt.ok, ok, tt.header)
		require.Equal(t, tt.want, got, tt.header)
	}
}
