package clock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pomo/internal/platform/clock"
)

func TestSystemSleeperReturnsAfterDuration(t *testing.T) {
	t.Parallel()
	if err := (clock.SystemSleeper{}).Sleep(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("sleep: %v", err)
	}
}

func TestSystemSleeperStopsOnCancel(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	started := time.Now()
	err := (clock.SystemSleeper{}).Sleep(ctx, time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if time.Since(started) > 5*time.Second {
		t.Fatalf("sleep should return promptly after cancel")
	}
}

func TestSystemClockIsUTC(t *testing.T) {
	t.Parallel()
	if loc := (clock.SystemClock{}).Now().Location(); loc != time.UTC {
		t.Fatalf("expected UTC, got %s", loc)
	}
}
