package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sharedwatchlist/watchlist-api/internal/api/middleware"
	"github.com/sharedwatchlist/watchlist-api/internal/core/domain"
	"github.com/sharedwatchlist/watchlist-api/internal/core/ports"
)

// stubWatchlistService only implements the calls a test sets; the rest panic
// through the nil function.
type stubWatchlistService struct {
	getWatchlistFn  func(ctx context.Context, email string, page ports.Page) (*ports.ItemPage, error)
	getWatchedFn    func(ctx context.Context, email string, page ports.Page) (*ports.ItemPage, error)
	addItemFn       func(ctx context.Context, email string, input ports.AddItemInput) (*domain.ItemView, error)
	updateItemFn    func(ctx context.Context, email, itemID string, draft ports.ItemDraft) (*domain.ItemView, error)
	deleteItemFn    func(ctx context.Context, email, itemID string) error
	toggleVoteFn    func(ctx context.Context, email, itemID string) (*domain.ItemView, error)
	markWatchedFn   func(ctx context.Context, email, itemID string) (*domain.ItemView, error)
	getRandomItemFn func(ctx context.Context, email string) (*domain.ItemView, error)
}

func (s *stubWatchlistService) GetWatchlist(ctx context.Context, email string, page ports.Page) (*ports.ItemPage, error) {
	return s.getWatchlistFn(ctx, email, page)
}

func (s *stubWatchlistService) GetWatchedHistory(ctx context.Context, email string, page ports.Page) (*ports.ItemPage, error) {
	return s.getWatchedFn(ctx, email, page)
}

func (s *stubWatchlistService) AddItem(ctx context.Context, email string, input ports.AddItemInput) (*domain.ItemView, error) {
	return s.addItemFn(ctx, email, input)
}

func (s *stubWatchlistService) UpdateItem(ctx context.Context, email, itemID string, draft ports.ItemDraft) (*domain.ItemView, error) {
	return s.updateItemFn(ctx, email, itemID, draft)
}

func (s *stubWatchlistService) DeleteItem(ctx context.Context, email, itemID string) error {
	return s.deleteItemFn(ctx, email, itemID)
}

func (s *stubWatchlistService) ToggleVote(ctx context.Context, email, itemID string) (*domain.ItemView, error) {
	return s.toggleVoteFn(ctx, email, itemID)
}

func (s *stubWatchlistService) MarkAsWatched(ctx context.Context, email, itemID string) (*domain.ItemView, error) {
	return s.markWatchedFn(ctx, email, itemID)
}

func (s *stubWatchlistService) GetRandomItem(ctx context.Context, email string) (*domain.ItemView, error) {
	return s.getRandomItemFn(ctx, email)
}

const callerEmail = "alice@example.com"

func authedContext(e *echo.Echo, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyEmail, callerEmail)
	return c, rec
}

func sampleView() *domain.ItemView {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.ItemView{
		ID:           "item-1",
		Title:        "Alien",
		Type:         "movie",
		Year:         1979,
		AddedByEmail: callerEmail,
		VoteCount:    1,
		HasUserVoted: true,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

func expectHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	if he.Code != code {
		t.Fatalf("expected %d, got %d", code, he.Code)
	}
}

func TestWatchlistHandler_GetWatchlist(t *testing.T) {
	e := newTestEcho()
	stub := &stubWatchlistService{
		getWatchlistFn: func(ctx context.Context, email string, page ports.Page) (*ports.ItemPage, error) {
			if email != callerEmail {
				t.Fatalf("unexpected email %q", email)
			}
			if page.Number != 2 || page.Size != 5 {
				t.Fatalf("unexpected page %+v", page)
			}
			return &ports.ItemPage{
				Items:    []domain.ItemView{*sampleView()},
				Metadata: ports.CalculateMetadata(6, page),
			}, nil
		},
	}
	h := NewWatchlistHandler(stub)

	c, rec := authedContext(e, httptest.NewRequest(http.MethodGet, "/api/v1/watchlist?page=2&size=5", nil))
	if err := h.GetWatchlist(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp itemPageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Content) != 1 || resp.Content[0].Title != "Alien" || !resp.Content[0].HasUserVoted {
		t.Fatalf("unexpected content: %+v", resp.Content)
	}
	if resp.Metadata.LastPage != 2 || resp.Metadata.TotalRecords != 6 {
		t.Fatalf("unexpected metadata: %+v", resp.Metadata)
	}
}

func TestWatchlistHandler_GetWatchlist_DefaultPage(t *testing.T) {
	e := newTestEcho()
	stub := &stubWatchlistService{
		getWatchlistFn: func(ctx context.Context, email string, page ports.Page) (*ports.ItemPage, error) {
			if page.Number != 1 || page.Size != ports.DefaultPageSize {
				t.Fatalf("expected default page, got %+v", page)
			}
			return &ports.ItemPage{}, nil
		},
	}
	h := NewWatchlistHandler(stub)

	c, rec := authedContext(e, httptest.NewRequest(http.MethodGet, "/api/v1/watchlist", nil))
	if err := h.GetWatchlist(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	content, ok := resp["content"].([]any)
	if !ok || len(content) != 0 {
		t.Fatalf("expected empty content array, got %v", resp["content"])
	}
}

func TestWatchlistHandler_GetWatchlist_InvalidPage(t *testing.T) {
	h := NewWatchlistHandler(&stubWatchlistService{})

	for _, query := range []string{"page=abc", "size=-1", "size=101", "page=-2"} {
		t.Run(query, func(t *testing.T) {
			c, _ := authedContext(newTestEcho(), httptest.NewRequest(http.MethodGet, "/api/v1/watchlist?"+query, nil))
			expectHTTPError(t, h.GetWatchlist(c), http.StatusBadRequest)
		})
	}
}

func TestWatchlistHandler_RequiresEmail(t *testing.T) {
	e := newTestEcho()
	h := NewWatchlistHandler(&stubWatchlistService{})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/watchlist/random", nil), httptest.NewRecorder())
	expectHTTPError(t, h.GetRandomItem(c), http.StatusUnauthorized)
}

func TestWatchlistHandler_AddItem(t *testing.T) {
	e := newTestEcho()
	const key = "0b7a6f0e-3c53-4b6e-9d2a-6f1f3a1f2c11"
	stub := &stubWatchlistService{
		addItemFn: func(ctx context.Context, email string, input ports.AddItemInput) (*domain.ItemView, error) {
			if input.IdempotencyKey != key {
				t.Fatalf("expected idempotency key to be forwarded, got %q", input.IdempotencyKey)
			}
			if input.Draft.Title != "Alien" || input.Draft.Year == nil || *input.Draft.Year != 1979 {
				t.Fatalf("unexpected draft %+v", input.Draft)
			}
			if input.Draft.Rating == nil || *input.Draft.Rating != 8.5 {
				t.Fatalf("expected rating 8.5, got %v", input.Draft.Rating)
			}
			return sampleView(), nil
		},
	}
	h := NewWatchlistHandler(stub)

	req := jsonRequest(http.MethodPost, "/api/v1/watchlist", `{"title":"Alien","type":"movie","year":1979,"rating":8.5}`)
	req.Header.Set(HeaderIdempotencyKey, key)
	c, rec := authedContext(e, req)

	if err := h.AddItem(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp itemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "item-1" || resp.AddedByEmail != callerEmail {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestWatchlistHandler_AddItem_InvalidIdempotencyKey(t *testing.T) {
	h := NewWatchlistHandler(&stubWatchlistService{})

	req := jsonRequest(http.MethodPost, "/api/v1/watchlist", `{"title":"Alien","type":"movie","year":1979}`)
	req.Header.Set(HeaderIdempotencyKey, "not-a-uuid")
	c, _ := authedContext(newTestEcho(), req)

	expectHTTPError(t, h.AddItem(c), http.StatusBadRequest)
}

func TestWatchlistHandler_AddItem_ValidationErrors(t *testing.T) {
	h := NewWatchlistHandler(&stubWatchlistService{})

	bodies := map[string]string{
		"missing title": `{"type":"movie","year":1979}`,
		"missing year":  `{"title":"Alien","type":"movie"}`,
		"blank title":   `{"title":"","type":"movie","year":1979}`,
		"long type":     `{"title":"Alien","type":"` + strings.Repeat("x", 65) + `","year":1979}`,
		"malformed":     `{"title":`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			c, _ := authedContext(newTestEcho(), jsonRequest(http.MethodPost, "/api/v1/watchlist", body))
			expectHTTPError(t, h.AddItem(c), http.StatusBadRequest)
		})
	}
}

func TestWatchlistHandler_AddItem_AcceptsFreeFormOptionalFields(t *testing.T) {
	bodies := map[string]string{
		"relative poster":  `{"title":"Alien","type":"movie","year":1979,"posterUrl":"/posters/alien.jpg"}`,
		"rating over ten":  `{"title":"Alien","type":"movie","year":1979,"rating":85}`,
		"negative runtime": `{"title":"Alien","type":"movie","year":1979,"runtime":-1}`,
		"ancient year":     `{"title":"Metropolis","type":"movie","year":1}`,
		"long description": `{"title":"Alien","type":"movie","year":1979,"description":"` + strings.Repeat("d", 5000) + `"}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			called := false
			h := NewWatchlistHandler(&stubWatchlistService{
				addItemFn: func(ctx context.Context, email string, input ports.AddItemInput) (*domain.ItemView, error) {
					called = true
					return sampleView(), nil
				},
			})

			c, rec := authedContext(newTestEcho(), jsonRequest(http.MethodPost, "/api/v1/watchlist", body))
			if err := h.AddItem(c); err != nil {
				t.Fatalf("expected acceptance, got %v", err)
			}
			if !called || rec.Code != http.StatusCreated {
				t.Fatalf("expected 201 from the service, got %d (called=%v)", rec.Code, called)
			}
		})
	}
}

func TestWatchlistHandler_UpdateItem_PassesDomainError(t *testing.T) {
	e := newTestEcho()
	stub := &stubWatchlistService{
		updateItemFn: func(ctx context.Context, email, itemID string, draft ports.ItemDraft) (*domain.ItemView, error) {
			if itemID != "item-9" {
				t.Fatalf("unexpected id %q", itemID)
			}
			return nil, domain.ErrForbidden
		},
	}
	h := NewWatchlistHandler(stub)

	c, _ := authedContext(e, jsonRequest(http.MethodPut, "/", `{"title":"Alien","type":"movie","year":1979}`))
	c.SetParamNames("id")
	c.SetParamValues("item-9")

	if err := h.UpdateItem(c); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestWatchlistHandler_DeleteItem(t *testing.T) {
	e := newTestEcho()
	var deleted string
	stub := &stubWatchlistService{
		deleteItemFn: func(ctx context.Context, email, itemID string) error {
			deleted = itemID
			return nil
		},
	}
	h := NewWatchlistHandler(stub)

	c, rec := authedContext(e, httptest.NewRequest(http.MethodDelete, "/", nil))
	c.SetParamNames("id")
	c.SetParamValues("item-1")

	if err := h.DeleteItem(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "item-1" {
		t.Fatalf("expected item-1 deleted, got %q", deleted)
	}
}

func TestWatchlistHandler_ToggleVote(t *testing.T) {
	e := newTestEcho()
	stub := &stubWatchlistService{
		toggleVoteFn: func(ctx context.Context, email, itemID string) (*domain.ItemView, error) {
			v := sampleView()
			v.VoteCount = 0
			v.HasUserVoted = false
			return v, nil
		},
	}
	h := NewWatchlistHandler(stub)

	c, rec := authedContext(e, httptest.NewRequest(http.MethodPost, "/", nil))
	c.SetParamNames("id")
	c.SetParamValues("item-1")

	if err := h.ToggleVote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["voteCount"] != float64(0) || resp["hasUserVoted"] != false {
		t.Fatalf("unexpected vote state: %+v", resp)
	}
}

func TestWatchlistHandler_MarkAsWatched(t *testing.T) {
	e := newTestEcho()
	watched := time.Date(2024, 3, 2, 20, 0, 0, 0, time.UTC)
	stub := &stubWatchlistService{
		markWatchedFn: func(ctx context.Context, email, itemID string) (*domain.ItemView, error) {
			v := sampleView()
			v.WatchedAt = &watched
			return v, nil
		},
	}
	h := NewWatchlistHandler(stub)

	c, rec := authedContext(e, httptest.NewRequest(http.MethodPost, "/", nil))
	c.SetParamNames("id")
	c.SetParamValues("item-1")

	if err := h.MarkAsWatched(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp itemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.WatchedAt == nil || !resp.WatchedAt.Equal(watched) {
		t.Fatalf("expected watchedAt %v, got %v", watched, resp.WatchedAt)
	}
}

func TestWatchlistHandler_GetRandomItem_NoneLeft(t *testing.T) {
	e := newTestEcho()
	stub := &stubWatchlistService{
		getRandomItemFn: func(ctx context.Context, email string) (*domain.ItemView, error) {
			return nil, domain.ErrNoUnwatchedItems
		},
	}
	h := NewWatchlistHandler(stub)

	c, _ := authedContext(e, httptest.NewRequest(http.MethodGet, "/", nil))
	if err := h.GetRandomItem(c); err != domain.ErrNoUnwatchedItems {
		t.Fatalf("expected ErrNoUnwatchedItems, got %v", err)
	}
}
