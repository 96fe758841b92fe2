package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fancyapps/users-service/internal/core/domain"
	"github.com/fancyapps/users-service/internal/core/ports"
)

// RequireFreshRole closes the stale-token gap: a JWT embeds the role held at
// issuance, so an admin demoting a user does not invalidate tokens already
// issued. Every privileged route runs this middleware, which re-checks the
// token's sub/role pair against the credential store and rejects the request
// when they no longer match.
//
// The validated user is stored under "current_user" for handlers that need it.
func RequireFreshRole(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sub, _ := c.Get("sub").(string)
			role, _ := c.Get("role").(string)
			if sub == "" || !domain.ValidRole(role) {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			user, err := auth.ValidateRoleClaim(c.Request().Context(), sub, role)
			if err != nil {
				return err
			}

			c.Set("current_user", user)
			return next(c)
		}
	}
}
