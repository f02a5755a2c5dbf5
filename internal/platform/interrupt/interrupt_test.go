package interrupt_test

import (
	"context"
	"testing"

	"pomo/internal/platform/interrupt"
)

func TestNonePassesThrough(t *testing.T) {
	t.Parallel()
	parent := context.Background()
	ctx, cancel := interrupt.None(parent)
	defer cancel()
	if ctx != parent {
		t.Fatalf("None should return the parent context")
	}
}

func TestOnSignalFollowsParent(t *testing.T) {
	t.Parallel()
	parent, cancelParent := context.WithCancel(context.Background())
	ctx, stop := interrupt.OnSignal()(parent)
	defer stop()
	cancelParent()
	<-ctx.Done()
	if ctx.Err() == nil {
		t.Fatalf("derived context should be cancelled with its parent")
	}
}
