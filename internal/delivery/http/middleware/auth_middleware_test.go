package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamehub/config"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/service"
	"gamehub/internal/errors"
	"gamehub/internal/infra/auth"
)

const testSecret = "middleware-test-secret"

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenSvc
}

// signToken builds a token directly so tests can control the expiry.
func signToken(t *testing.T, email string, ttl time.Duration) string {
	t.Helper()

	now := time.Now()
	claims := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return signed
}

func invoke(t *testing.T, m *AuthMiddleware, req *http.Request) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Authenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return c, handler(c)
}

func TestAuthenticatePublicRoutes(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(newTestTokenService(t))

	for _, path := range []string{"/", "/health", "/api/auth/login", "/api/auth/register", "/api/utils/test-db"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)

		_, err := invoke(t, m, req)
		assert.NoError(t, err, "path %s should be public", path)
	}
}

func TestAuthenticateDeniesByDefault(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(newTestTokenService(t))

	// An unknown route is protected even though no handler exists for it.
	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)

	_, err := invoke(t, m, req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingToken))
}

func TestAuthenticateMissingToken(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(newTestTokenService(t))
	req := httptest.NewRequest(http.MethodGet, "/api/games", nil)

	_, err := invoke(t, m, req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingToken))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestAuthenticateExpiredToken(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(newTestTokenService(t))

	req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, "user@example.com", -time.Minute))

	_, err := invoke(t, m, req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrExpiredToken))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestAuthenticateTamperedToken(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(newTestTokenService(t))

	token := signToken(t, "user@example.com", time.Hour)
	tampered := token[:len(token)-2] + "xx"

	req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tampered)

	_, err := invoke(t, m, req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
}

func TestAuthenticateValidTokenAttachesClaims(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(newTestTokenService(t))

	req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, "user@example.com", time.Hour))

	c, err := invoke(t, m, req)
	require.NoError(t, err)

	claims, ok := ClaimsFromContext(c)
	require.True(t, ok)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "user@example.com", c.Get(ContextKeyEmail))
}

func TestAuthenticateCookiePreferredOverHeader(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(newTestTokenService(t))

	req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: signToken(t, "cookie@example.com", time.Hour)})
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, "header@example.com", time.Hour))

	c, err := invoke(t, m, req)
	require.NoError(t, err)

	claims, ok := ClaimsFromContext(c)
	require.True(t, ok)
	assert.Equal(t, "cookie@example.com", claims.Email)
}

func TestOptionalAuthenticateNeverRejects(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(newTestTokenService(t))
	e := echo.New()

	handler := m.OptionalAuthenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// No token at all.
	req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	require.NoError(t, handler(c))
	_, ok := ClaimsFromContext(c)
	assert.False(t, ok)

	// Garbage token is ignored rather than rejected.
	req = httptest.NewRequest(http.MethodGet, "/api/games", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	c = e.NewContext(req, httptest.NewRecorder())
	require.NoError(t, handler(c))
	_, ok = ClaimsFromContext(c)
	assert.False(t, ok)

	// A valid token still attaches identity.
	req = httptest.NewRequest(http.MethodGet, "/api/games", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, "user@example.com", time.Hour))
	c = e.NewContext(req, httptest.NewRecorder())
	require.NoError(t, handler(c))
	claims, ok := ClaimsFromContext(c)
	require.True(t, ok)
	assert.Equal(t, "user@example.com", claims.Email)
}
