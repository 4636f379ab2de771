package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/swasthyasetu/portal/internal/platform/notify"
)

func newDispatcher(latency time.Duration) (*Dispatcher, *notify.Feed) {
	feed := notify.NewFeed(16)
	return New(latency, feed, zerolog.Nop()), feed
}

func TestDo_SuccessEmitsToast(t *testing.T) {
	d, feed := newDispatcher(time.Millisecond)

	out, err := d.Do(context.Background(), Request{
		Key:     "claims/approve/CLM-003",
		Message: "Claim CLM-003 approved successfully",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != OutcomeSuccess {
		t.Errorf("expected success outcome, got %s", out.Kind)
	}

	events := feed.Recent(0)
	if len(events) != 1 {
		t.Fatalf("expected one toast, got %d", len(events))
	}
	if events[0].Message != "Claim CLM-003 approved successfully" {
		t.Errorf("unexpected toast: %s", events[0].Message)
	}
}

func TestDo_RejectsRepeatWhileInFlight(t *testing.T) {
	d, _ := newDispatcher(50 * time.Millisecond)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		d.Do(context.Background(), Request{Key: "sync/run/lab-results", Message: "done"})
	}()

	// Wait for the first call to acquire the key.
	deadline := time.Now().Add(time.Second)
	for !d.InFlight("sync/run/lab-results") {
		if time.Now().After(deadline) {
			t.Fatal("first action never became pending")
		}
		time.Sleep(time.Millisecond)
	}

	_, err := d.Do(context.Background(), Request{Key: "sync/run/lab-results", Message: "done"})
	if !errors.Is(err, ErrInFlight) {
		t.Fatalf("expected ErrInFlight, got %v", err)
	}
	wg.Wait()

	if d.InFlight("sync/run/lab-results") {
		t.Error("expected key released after completion")
	}
}

func TestDo_DistinctKeysRunIndependently(t *testing.T) {
	d, feed := newDispatcher(5 * time.Millisecond)

	var wg sync.WaitGroup
	for _, key := range []string{"users/suspend/1", "users/suspend/2"} {
		wg.Add(1)
		go func(k string) {
			defer wg.Done()
			if _, err := d.Do(context.Background(), Request{Key: k, Message: k}); err != nil {
				t.Errorf("unexpected error for %s: %v", k, err)
			}
		}(key)
	}
	wg.Wait()

	if feed.Len() != 2 {
		t.Fatalf("expected 2 toasts, got %d", feed.Len())
	}
}

func TestDo_CancelledContextEmitsNothing(t *testing.T) {
	d, feed := newDispatcher(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	_, err := d.Do(ctx, Request{Key: "mappings/approve/MAP001", Message: "approved"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if feed.Len() != 0 {
		t.Error("cancelled action must not emit a toast")
	}
	if d.InFlight("mappings/approve/MAP001") {
		t.Error("expected key released after cancellation")
	}
}

func TestDo_EmptyKey(t *testing.T) {
	d, _ := newDispatcher(time.Millisecond)
	if _, err := d.Do(context.Background(), Request{Message: "x"}); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestDo_PerRequestLatencyOverride(t *testing.T) {
	d, _ := newDispatcher(time.Hour)

	start := time.Now()
	_, err := d.Do(context.Background(), Request{
		Key:     "quick",
		Message: "ok",
		Latency: time.Millisecond,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("request latency override not applied")
	}
}
