// Package notify provides the portal's toast sink: a bounded in-memory
// feed of one-line notification events that actions write fire-and-forget
// and clients poll for display.
package notify

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Kind classifies a toast event.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Event is a single toast notification.
type Event struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Sink is the write side of the toast feed. Pushes never block and never
// fail: a full feed drops its oldest event.
type Sink interface {
	Push(kind Kind, message string)
}

// Feed is a bounded, newest-last toast buffer.
type Feed struct {
	mu       sync.Mutex
	events   []Event
	capacity int
}

// NewFeed creates a Feed retaining at most capacity events.
func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = 64
	}
	return &Feed{capacity: capacity}
}

// Push appends an event, evicting the oldest when full.
func (f *Feed) Push(kind Kind, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, Event{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
	if len(f.events) > f.capacity {
		f.events = f.events[len(f.events)-f.capacity:]
	}
}

// Success pushes a success toast.
func (f *Feed) Success(message string) { f.Push(KindSuccess, message) }

// Error pushes an error toast.
func (f *Feed) Error(message string) { f.Push(KindError, message) }

// Info pushes an info toast.
func (f *Feed) Info(message string) { f.Push(KindInfo, message) }

// Recent returns up to n events, newest first. n <= 0 returns all.
func (f *Feed) Recent(n int) []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n <= 0 || n > len(f.events) {
		n = len(f.events)
	}
	out := make([]Event, n)
	for i := 0; i < n; i++ {
		out[i] = f.events[len(f.events)-1-i]
	}
	return out
}

// Len returns the number of buffered events.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

// Handler exposes the feed over HTTP.
type Handler struct {
	feed *Feed
}

func NewHandler(feed *Feed) *Handler {
	return &Handler{feed: feed}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/notifications", h.ListNotifications)
}

// defaultWindow and maxWindow bound the polling window. Bad or oversized
// limits fall back rather than erroring so a stale client keeps polling.
const (
	defaultWindow = 50
	maxWindow     = 500
)

func (h *Handler) ListNotifications(c echo.Context) error {
	n, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || n <= 0 {
		n = defaultWindow
	}
	if n > maxWindow {
		n = maxWindow
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  h.feed.Recent(n),
		"total": h.feed.Len(),
	})
}
