package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/restaurant-platform/restaurant-api/internal/core/domain"
	"github.com/restaurant-platform/restaurant-api/internal/core/ports"
)

// RequireRole enforces role-based access control. The role is read from the
// user's stored row, not the token, so a role change takes effect on the next
// request; a subject whose row has vanished is treated as unauthorized.
//
// On success the resolved user is stored under the "current_user" context key.
func RequireRole(users ports.UserRepository, allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get("user_id").(uint)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Unauthorized"})
			}

			if _, ok := allowed[user.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]any{
					"error":   "Unauthorized",
					"details": map[string]string{"current_role": string(user.Role)},
				})
			}

			c.Set("current_user", user)
			return next(c)
		}
	}
}
