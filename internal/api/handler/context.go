package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sharedwatchlist/watchlist-api/internal/api/middleware"
)

// ctxEmail returns the caller email injected by the Auth middleware. Its
// absence means the route was mounted without Auth, so fail with 401.
func ctxEmail(c echo.Context) (string, error) {
	email, _ := c.Get(middleware.ContextKeyEmail).(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, nil
}
