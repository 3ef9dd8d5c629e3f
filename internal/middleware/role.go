package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studyspaces/classroom-reservation/internal/model"
)

// RequireRole enforces that the authenticated session carries one of
// the given roles.  It assumes JWTAuth already stored the role in the
// context.  Requests with a missing or disallowed role get 403.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[string(r)] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxRole).(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
