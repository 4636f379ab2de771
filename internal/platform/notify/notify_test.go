package notify

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestFeed_PushAndRecent(t *testing.T) {
	f := NewFeed(10)
	f.Success("Claim CLM-003 approved successfully")
	f.Error("Please fill in all required fields")

	events := f.Recent(0)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Kind != KindError {
		t.Errorf("expected newest event first, got %s", events[0].Kind)
	}
	if events[1].Message != "Claim CLM-003 approved successfully" {
		t.Errorf("unexpected message: %s", events[1].Message)
	}
}

func TestFeed_EvictsOldest(t *testing.T) {
	f := NewFeed(3)
	for i := 0; i < 5; i++ {
		f.Info(fmt.Sprintf("event %d", i))
	}
	if f.Len() != 3 {
		t.Fatalf("expected capacity 3, got %d", f.Len())
	}
	events := f.Recent(0)
	if events[len(events)-1].Message != "event 2" {
		t.Errorf("expected oldest retained to be event 2, got %s", events[len(events)-1].Message)
	}
}

func TestFeed_RecentWindow(t *testing.T) {
	f := NewFeed(10)
	for i := 0; i < 6; i++ {
		f.Info(fmt.Sprintf("event %d", i))
	}
	events := f.Recent(2)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Message != "event 5" {
		t.Errorf("expected newest event, got %s", events[0].Message)
	}
}

func TestHandler_ListNotifications(t *testing.T) {
	f := NewFeed(10)
	f.Success("Auto-sync enabled for lab-results")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHandler(f)
	if err := h.ListNotifications(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data  []Event `json:"data"`
		Total int     `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Total != 1 || len(body.Data) != 1 {
		t.Fatalf("expected one event, got %+v", body)
	}
	if body.Data[0].Kind != KindSuccess {
		t.Errorf("expected success kind, got %s", body.Data[0].Kind)
	}
}

// Absurd, negative and non-numeric limits all degrade to a sane window
// instead of erroring or wrapping around.
func TestHandler_ListNotificationsLimitBounds(t *testing.T) {
	f := NewFeed(10)
	for i := 0; i < 5; i++ {
		f.Info(fmt.Sprintf("event %d", i))
	}
	h := NewHandler(f)
	e := echo.New()

	for _, limit := range []string{"99999999999999999999", "-3", "0", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/notifications?limit="+limit, nil)
		rec := httptest.NewRecorder()
		if err := h.ListNotifications(e.NewContext(req, rec)); err != nil {
			t.Fatalf("limit %q: unexpected error: %v", limit, err)
		}

		var body struct {
			Data []Event `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("limit %q: decode response: %v", limit, err)
		}
		if len(body.Data) != 5 {
			t.Errorf("limit %q: expected the full feed of 5, got %d", limit, len(body.Data))
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/notifications?limit=2", nil)
	rec := httptest.NewRecorder()
	if err := h.ListNotifications(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body struct {
		Data []Event `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data) != 2 {
		t.Errorf("expected window of 2, got %d", len(body.Data))
	}
}
