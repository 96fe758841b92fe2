package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fancyapps/users-service/internal/core/domain"
)

// ctxUser extracts the revalidated user injected by the RequireFreshRole
// middleware. Its presence proves both Auth and the role re-check ran; a
// missing value means the route was wired without them — fail closed.
func ctxUser(c echo.Context) (*domain.PublicUser, error) {
	user, _ := c.Get("current_user").(*domain.PublicUser)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
