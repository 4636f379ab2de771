// Package dispatch runs the portal's simulated record actions: a
// fixed-latency stand-in for a network round-trip that reports its outcome
// to the toast sink and never mutates the screen's record store.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/swasthyasetu/portal/internal/platform/notify"
)

// OutcomeKind classifies how an action finished.
type OutcomeKind string

const (
	OutcomeSuccess OutcomeKind = "success"
	OutcomeError   OutcomeKind = "error"
)

// Outcome is the result of a dispatched action.
type Outcome struct {
	Kind    OutcomeKind `json:"kind"`
	Message string      `json:"message"`
}

// ErrInFlight is returned when the same action key is already pending.
// Repeat invocation while in flight is rejected rather than queued.
var ErrInFlight = errors.New("action already in flight")

// Request describes one user-triggered action against a single record.
type Request struct {
	// Key identifies the action instance for the in-flight guard,
	// e.g. "claims/approve/CLM-003" or "sync/run/lab-results".
	Key string
	// Message is the toast text emitted when the simulated round-trip
	// completes successfully.
	Message string
	// Latency overrides the dispatcher default when positive.
	Latency time.Duration
}

// Dispatcher executes simulated actions. Actions triggered by distinct
// gestures run independently and unordered; only identical keys are
// serialized by the in-flight guard.
type Dispatcher struct {
	latency time.Duration
	sink    notify.Sink
	logger  zerolog.Logger

	mu      sync.Mutex
	pending map[string]struct{}
}

// New creates a Dispatcher with the given default simulated latency.
func New(latency time.Duration, sink notify.Sink, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		latency: latency,
		sink:    sink,
		logger:  logger,
		pending: make(map[string]struct{}),
	}
}

// Do runs the simulated round-trip for req, blocking the calling goroutine
// for the configured latency. It returns ErrInFlight when the key is
// already pending and ctx.Err() when the caller goes away mid-flight; a
// cancelled action emits no toast, so there is no orphaned completion.
func (d *Dispatcher) Do(ctx context.Context, req Request) (Outcome, error) {
	if req.Key == "" {
		return Outcome{}, fmt.Errorf("dispatch: empty action key")
	}
	if err := d.acquire(req.Key); err != nil {
		return Outcome{}, err
	}
	defer d.release(req.Key)

	latency := d.latency
	if req.Latency > 0 {
		latency = req.Latency
	}

	timer := time.NewTimer(latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		d.logger.Debug().Str("action", req.Key).Msg("action cancelled mid-flight")
		return Outcome{}, ctx.Err()
	case <-timer.C:
	}

	out := Outcome{Kind: OutcomeSuccess, Message: req.Message}
	d.sink.Push(notify.KindSuccess, out.Message)
	d.logger.Info().Str("action", req.Key).Msg("action completed")
	return out, nil
}

// InFlight reports whether the key is currently pending.
func (d *Dispatcher) InFlight(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[key]
	return ok
}

func (d *Dispatcher) acquire(key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.pending[key]; ok {
		return ErrInFlight
	}
	d.pending[key] = struct{}{}
	return nil
}

func (d *Dispatcher) release(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.pending, key)
}
