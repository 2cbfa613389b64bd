package middleware

import (
	"regexp"
	"strings"

	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AccessTokenCookie is the cookie the login handler issues and this
// middleware reads back.
const AccessTokenCookie = "access_token"

// Context keys set on authenticated requests.
const (
	ContextKeyClaims = "claims"
	ContextKeyEmail  = "email"
)

// routeRule classifies a request path. Exactly one of exact or pattern is
// set; rules are evaluated in order and the first match wins.
type routeRule struct {
	exact   string
	pattern *regexp.Regexp
	public  bool
}

func (r routeRule) matches(path string) bool {
	if r.pattern != nil {
		return r.pattern.MatchString(path)
	}

	return r.exact == path
}

// defaultRouteRules lists the routes reachable without a token. Anything
// not matched here requires authentication.
var defaultRouteRules = []routeRule{
	{exact: "/", public: true},
	{exact: "/health", public: true},
	{pattern: regexp.MustCompile(`^/api/auth/(login|register)$`), public: true},
	{exact: "/api/utils/test-db", public: true},
}

// AuthMiddleware validates access tokens and guards every non-public route.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	rules    []routeRule
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, rules: defaultRouteRules}
}

// isPublic reports whether the path may be served without credentials.
func (m *AuthMiddleware) isPublic(path string) bool {
	for _, rule := range m.rules {
		if rule.matches(path) {
			return rule.public
		}
	}

	return false
}

// Authenticate is the core middleware function that validates the access
// token on protected routes and attaches the verified claims to the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.isPublic(c.Request().URL.Path) {
			return next(c)
		}

		tokenString := extractToken(c)
		if tokenString == "" {
			return domainerrors.ErrMissingToken.WrapMessage("no access token in cookie or Authorization header")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return err
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyEmail, claims.Email)

		return next(c)
	}
}

// OptionalAuthenticate attaches identity when a valid token is present but
// never rejects the request. Useful for routes that personalise output.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if tokenString := extractToken(c); tokenString != "" {
			if claims, err := m.tokenSvc.Verify(tokenString); err == nil {
				c.Set(ContextKeyClaims, claims)
				c.Set(ContextKeyEmail, claims.Email)
			}
		}

		return next(c)
	}
}

// extractToken prefers the access_token cookie over the Authorization
// header so browser sessions win over stale client headers.
func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}

	return ""
}

// ClaimsFromContext returns the verified claims set by Authenticate.
func ClaimsFromContext(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(ContextKeyClaims).(*service.Claims)

	return claims, ok
}
