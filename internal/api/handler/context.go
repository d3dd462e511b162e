package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/miseboard/kitchen-api/internal/api/middleware"
	"github.com/miseboard/kitchen-api/internal/core/domain"
)

// identity is the authenticated caller as injected by the Auth middleware.
type identity struct {
	UserID   string
	Username string
	Role     string
	Station  string
}

// ctxIdentity extracts the caller's identity from the echo context. A
// missing user id or role means the Auth middleware did not run; that is a
// wiring fault and is rejected as forbidden.
func ctxIdentity(c echo.Context) (identity, error) {
	id := identity{}
	id.UserID, _ = c.Get(middleware.CtxUserID).(string)
	id.Username, _ = c.Get(middleware.CtxUsername).(string)
	id.Role, _ = c.Get(middleware.CtxRole).(string)
	id.Station, _ = c.Get(middleware.CtxStation).(string)
	if id.UserID == "" || id.Role == "" {
		return identity{}, domain.ErrForbidden
	}
	return id, nil
}
