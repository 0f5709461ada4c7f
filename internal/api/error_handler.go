package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sharedwatchlist/watchlist-api/internal/api/metrics"
	"github.com/sharedwatchlist/watchlist-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// domainError binds a sentinel to its HTTP status, the message sent to the
// client and the reason label recorded in metrics.
type domainError struct {
	target error
	code   int
	msg    string
	reason string
}

// domainErrors is checked in order; the first errors.Is match wins.
var domainErrors = []domainError{
	{domain.ErrItemNotFound, http.StatusNotFound, "item not found", "item_not_found"},
	{domain.ErrNoUnwatchedItems, http.StatusNotFound, "no unwatched items", "no_unwatched_items"},
	{domain.ErrUserNotFound, http.StatusNotFound, "user not found", "user_not_found"},
	{domain.ErrForbidden, http.StatusForbidden, "access forbidden", "forbidden"},
	{domain.ErrInvalidInput, http.StatusBadRequest, "", "invalid_input"},
	{domain.ErrEditConflict, http.StatusConflict, "item was modified concurrently, retry the request", "edit_conflict"},
	{domain.ErrRequestInProgress, http.StatusConflict, "a request with this idempotency key is still in progress", "request_in_progress"},
	{domain.ErrUserExists, http.StatusConflict, "user already exists", "user_exists"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials", "invalid_credentials"},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	for _, de := range domainErrors {
		if errors.Is(err, de.target) {
			metrics.DomainErrorsTotal.WithLabelValues(de.reason).Inc()
			msg := de.msg
			if msg == "" {
				// validation errors carry the offending field
				msg = err.Error()
			}
			return de.code, msg
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
