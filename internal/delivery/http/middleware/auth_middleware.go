// Package middleware contains Echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"cofoundr/internal/delivery/http/response"
	domainerrors "cofoundr/internal/domain/errors"
	"cofoundr/internal/domain/service"
)

// ContextKeyFounderID is the echo.Context key carrying the authenticated
// founder's id.
const ContextKeyFounderID = "founderID"

// AuthMiddleware validates bearer access tokens on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate verifies the Authorization header and stores the founder id on
// the context. Every failure mode returns the same 401 body, so a caller
// cannot tell a missing header from a malformed, tampered, or expired token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return unauthorized(c)
		}

		claims, err := m.tokenSvc.VerifyToken(tokenString)
		if err != nil {
			return unauthorized(c)
		}

		c.Set(ContextKeyFounderID, claims.FounderID)

		return next(c)
	}
}

// FounderIDFromEchoContext returns the founder id set by Authenticate.
func FounderIDFromEchoContext(c echo.Context) (int64, bool) {
	founderID, ok := c.Get(ContextKeyFounderID).(int64)

	return founderID, ok
}

func unauthorized(c echo.Context) error {
	appErr := domainerrors.ErrUnauthorized

	return response.Unauthorized(c, appErr.ErrorCode(), appErr.Message())
}
