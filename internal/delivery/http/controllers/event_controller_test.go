package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventbook/internal/delivery/http/helpers"
	"eventbook/internal/domain"
)

type mockEventService struct {
	event   *domain.Event
	events  []*domain.Event
	similar []*domain.Event
	err     error
}

func (m *mockEventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	return m.err
}

func (m *mockEventService) UpdateEvent(ctx context.Context, slug string, update *domain.EventUpdate) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.event, nil
}

func (m *mockEventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.event, nil
}

func (m *mockEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

func (m *mockEventService) ListSimilarEvents(ctx context.Context, slug string) []*domain.Event {
	return m.similar
}

func TestEventController_GetEventBySlug(t *testing.T) {
	svc := &mockEventService{event: &domain.Event{Title: "Go Conf", Slug: "go-conf"}}
	ctrl := NewEventController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/events/go-conf", nil)
	req.SetPathValue("slug", "go-conf")
	w := httptest.NewRecorder()

	ctrl.GetEventBySlug(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp struct {
		Data  *domain.Event     `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data == nil || resp.Data.Slug != "go-conf" {
		t.Fatalf("unexpected event payload: %+v", resp.Data)
	}
}

func TestEventController_GetEventBySlug_NotFound(t *testing.T) {
	svc := &mockEventService{err: domain.ErrNotFound}
	ctrl := NewEventController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/events/missing", nil)
	req.SetPathValue("slug", "missing")
	w := httptest.NewRecorder()

	ctrl.GetEventBySlug(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestEventController_ListSimilarEvents_AlwaysOK(t *testing.T) {
	svc := &mockEventService{similar: []*domain.Event{}}
	ctrl := NewEventController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/events/unknown/similar", nil)
	req.SetPathValue("slug", "unknown")
	w := httptest.NewRecorder()

	ctrl.ListSimilarEvents(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp struct {
		Data  []*domain.Event   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Fatalf("expected empty list, got %+v", resp.Data)
	}
}

func TestEventController_CreateEvent_ValidationError(t *testing.T) {
	svc := &mockEventService{err: domain.NewValidationError("tags")}
	ctrl := NewEventController(discardLogger(), svc)

	body := `{"title":"Go Conf"}`
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.CreateEvent(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestEventController_CreateEvent_DuplicateSlug(t *testing.T) {
	svc := &mockEventService{err: domain.ErrDuplicateSlug}
	ctrl := NewEventController(discardLogger(), svc)

	body := `{"title":"Go Conf"}`
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.CreateEvent(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
}

func TestEventController_CreateEvent_MissingTitle(t *testing.T) {
	svc := &mockEventService{}
	ctrl := NewEventController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	ctrl.CreateEvent(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
