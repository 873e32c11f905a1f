// Package middleware contains echo middleware specific to the HTTP delivery.
package middleware

import (
	"strings"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/delivery/http/response"
	"catalog/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Every authentication failure renders this exact response. Missing header,
// undecryptable token and expired token must be indistinguishable so probing
// the endpoint teaches an attacker nothing about a captured token.
const (
	unauthorizedCode    = "UNAUTHORIZED"
	unauthorizedMessage = "missing or invalid session token"
)

// AuthMiddleware validates session tokens and attaches the resulting session
// to the request.
type AuthMiddleware struct {
	tokenCodec service.TokenCodec
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenCodec service.TokenCodec) *AuthMiddleware {
	return &AuthMiddleware{tokenCodec: tokenCodec}
}

// Authenticate validates the Authorization header and stores the decrypted
// session in the request context. The header value may be the bare token or
// carry a "Bearer " prefix.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, unauthorizedCode, unauthorizedMessage)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		session, err := m.tokenCodec.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, unauthorizedCode, unauthorizedMessage)
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}
