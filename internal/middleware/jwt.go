package middleware // middleware provides shared request processing for handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/studyspaces/classroom-reservation/internal/utils"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	CtxSubject = "subject"
	CtxRole    = "role"
)

// JWTAuth returns an Echo middleware that validates a Bearer access
// token and injects the token's subject (account email) and role into
// the request context.  The provided secret must match the one used
// when issuing tokens.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")
			subject, role, err := utils.ParseSubject(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set(CtxSubject, subject)
			c.Set(CtxRole, role)
			return next(c)
		}
	}
}

// OptionalSubject extracts the token subject and role like JWTAuth
// does, but without failing the request when the header is absent or
// invalid.  Used on routes that serve both anonymous and signed-in
// clients, such as the navigation decision endpoint.
func OptionalSubject(c echo.Context, secret string) (subject, role string) {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", ""
	}
	subject, role, err := utils.ParseSubject(secret, strings.TrimPrefix(auth, "Bearer "))
	if err != nil {
		return "", ""
	}
	return subject, role
}
