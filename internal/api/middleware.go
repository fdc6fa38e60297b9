package api

import (
	"github.com/labstack/echo/v4"

	"shopmatic/internal/entity"
	"shopmatic/internal/service"
)

// AdminOnly guards a route by resolving the caller-supplied id from the
// query string and checking its role. There is no session: the scheme
// trusts the id the frontend sends.
func AdminOnly(users *service.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := users.GetByID(c.Request().Context(), c.QueryParam("id"))
			if err != nil {
				return err
			}
			if user.Role != entity.RoleAdmin {
				return entity.BadRequest("Not Authorised")
			}
			return next(c)
		}
	}
}
