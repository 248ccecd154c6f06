// Package middleware contains the HTTP middlewares of the delivery layer.
package middleware

import (
	"strings"

	"skillhub/internal/delivery/http/response"
	"skillhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyPrincipalID is the echo context key the authenticated principal is
// stored under.
const KeyPrincipalID = "principalID"

// AuthMiddleware validates bearer tokens and exposes the authenticated
// principal to handlers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_MALFORMED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			// Let the error middleware map the token error kind.
			return err
		}

		c.Set(KeyPrincipalID, claims.Subject)

		return next(c)
	}
}

// PrincipalID returns the authenticated principal set by Authenticate, or
// an empty string on unauthenticated requests.
func PrincipalID(c echo.Context) string {
	if id, ok := c.Get(KeyPrincipalID).(string); ok {
		return id
	}

	return ""
}
