package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sharedwatchlist/watchlist-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"item not found", domain.ErrItemNotFound, http.StatusNotFound, "item not found"},
		{"wrapped not found", fmt.Errorf("load: %w", domain.ErrItemNotFound), http.StatusNotFound, "item not found"},
		{"no unwatched", domain.ErrNoUnwatchedItems, http.StatusNotFound, "no unwatched items"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"invalid input", fmt.Errorf("%w: title is required", domain.ErrInvalidInput), http.StatusBadRequest, "invalid input: title is required"},
		{"edit conflict", domain.ErrEditConflict, http.StatusConflict, "item was modified concurrently, retry the request"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"idempotency key in flight", domain.ErrRequestInProgress, http.StatusConflict, "a request with this idempotency key is still in progress"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "invalid payload"},
		{"unexpected", errors.New("mongo: connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/watchlist", nil), rec)

			handler(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Error != tt.wantMsg {
				t.Fatalf("expected message %q, got %q", tt.wantMsg, resp.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.NoContent(http.StatusNoContent)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrItemNotFound, c)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected committed 204 to stand, got %d", rec.Code)
	}
}
