package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sharedwatchlist/watchlist-api/internal/api/metrics"
	"github.com/sharedwatchlist/watchlist-api/internal/core/ports"
)

// HeaderIdempotencyKey makes POST /watchlist replay-safe when set to a UUID.
const HeaderIdempotencyKey = "Idempotency-Key"

type WatchlistHandler struct {
	watchlistService ports.WatchlistService
}

func NewWatchlistHandler(watchlistService ports.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{watchlistService: watchlistService}
}

// GetWatchlist lists the caller's own items.
//
// @Summary      List my watchlist
// @Tags         watchlist
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number (1-based)"
// @Param        size  query     int  false  "Page size (max 100)"
// @Success      200   {object}  itemPageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /watchlist [get]
func (h *WatchlistHandler) GetWatchlist(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}
	page, err := bindPage(c)
	if err != nil {
		return err
	}

	result, err := h.watchlistService.GetWatchlist(c.Request().Context(), email, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemPageResponse(result))
}

// GetWatchedHistory lists the caller's items that have been watched.
//
// @Summary      List my watched items
// @Tags         watchlist
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number (1-based)"
// @Param        size  query     int  false  "Page size (max 100)"
// @Success      200   {object}  itemPageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /watchlist/watched [get]
func (h *WatchlistHandler) GetWatchedHistory(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}
	page, err := bindPage(c)
	if err != nil {
		return err
	}

	result, err := h.watchlistService.GetWatchedHistory(c.Request().Context(), email, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemPageResponse(result))
}

// AddItem creates a new item owned by the caller.
//
// @Summary      Add an item
// @Tags         watchlist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string       false  "UUID making the request replay-safe"
// @Param        body             body      itemRequest  true   "Item details"
// @Success      201              {object}  itemResponse
// @Failure      400              {object}  map[string]string
// @Failure      401              {object}  map[string]string
// @Failure      404              {object}  map[string]string
// @Failure      409              {object}  map[string]string
// @Router       /watchlist [post]
func (h *WatchlistHandler) AddItem(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	key := c.Request().Header.Get(HeaderIdempotencyKey)
	if key != "" {
		parsed, err := uuid.Parse(key)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Idempotency-Key must be a UUID")
		}
		key = parsed.String()
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.watchlistService.AddItem(c.Request().Context(), email, ports.AddItemInput{
		Draft:          toItemDraft(req),
		IdempotencyKey: key,
	})
	if err != nil {
		return err
	}

	metrics.ItemsAddedTotal.Inc()
	return c.JSON(http.StatusCreated, toItemResponse(view))
}

// UpdateItem replaces the editable fields of an item owned by the caller.
//
// @Summary      Update an item
// @Tags         watchlist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Item ID"
// @Param        body  body      itemRequest  true  "Item details"
// @Success      200   {object}  itemResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /watchlist/{id} [put]
func (h *WatchlistHandler) UpdateItem(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.watchlistService.UpdateItem(c.Request().Context(), email, c.Param("id"), toItemDraft(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemResponse(view))
}

// DeleteItem removes an item owned by the caller.
//
// @Summary      Delete an item
// @Tags         watchlist
// @Security     BearerAuth
// @Param        id   path  string  true  "Item ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /watchlist/{id} [delete]
func (h *WatchlistHandler) DeleteItem(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	if err := h.watchlistService.DeleteItem(c.Request().Context(), email, c.Param("id")); err != nil {
		return err
	}

	metrics.ItemsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// ToggleVote casts the caller's vote on an item, or retracts it if already cast.
//
// @Summary      Toggle vote
// @Tags         watchlist
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  itemResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /watchlist/{id}/vote [post]
func (h *WatchlistHandler) ToggleVote(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	view, err := h.watchlistService.ToggleVote(c.Request().Context(), email, c.Param("id"))
	if err != nil {
		return err
	}

	action := metrics.VoteRetracted
	if view.HasUserVoted {
		action = metrics.VoteCast
	}
	metrics.VotesTotal.WithLabelValues(action).Inc()

	return c.JSON(http.StatusOK, toItemResponse(view))
}

// MarkAsWatched records that an item owned by the caller has been watched.
//
// @Summary      Mark as watched
// @Tags         watchlist
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  itemResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /watchlist/{id}/watched [post]
func (h *WatchlistHandler) MarkAsWatched(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	view, err := h.watchlistService.MarkAsWatched(c.Request().Context(), email, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.ItemsWatchedTotal.Inc()
	return c.JSON(http.StatusOK, toItemResponse(view))
}

// GetRandomItem picks one unwatched item from the shared pool.
//
// @Summary      Random unwatched item
// @Tags         watchlist
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  itemResponse
// @Failure      404  {object}  map[string]string
// @Router       /watchlist/random [get]
func (h *WatchlistHandler) GetRandomItem(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	view, err := h.watchlistService.GetRandomItem(c.Request().Context(), email)
	if err != nil {
		return err
	}

	metrics.RandomPicksTotal.Inc()
	return c.JSON(http.StatusOK, toItemResponse(view))
}

// bindPage reads the optional page and size query parameters. Missing values
// fall back to the defaults; non-numeric or negative ones are rejected.
func bindPage(c echo.Context) (ports.Page, error) {
	var page ports.Page
	err := echo.QueryParamsBinder(c).
		Int("page", &page.Number).
		Int("size", &page.Size).
		BindError()
	if err != nil {
		return ports.Page{}, echo.NewHTTPError(http.StatusBadRequest, "page and size must be integers")
	}
	if page.Number < 0 || page.Size < 0 || page.Size > ports.MaxPageSize {
		return ports.Page{}, echo.NewHTTPError(http.StatusBadRequest, "page and size must not be negative, size at most 100")
	}
	return page.Normalize(), nil
}
