package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/miseboard/kitchen-api/internal/core/domain"
)

// RequireRole gates a route to identities holding the given role. It must
// run after Auth; an absent role means the chain was miswired and is
// rejected as forbidden, not unauthorized.
func RequireRole(required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role != required {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
