package interrupt

import (
	"context"
	"os"
	"os/signal"
)

// Scope derives a context that is cancelled when the user interrupts the
// operation running under it. Signal handling ends when cancel is called.
type Scope func(ctx context.Context) (context.Context, context.CancelFunc)

// OnSignal cancels the derived context on any of sigs (os.Interrupt if none).
func OnSignal(sigs ...os.Signal) Scope {
	if len(sigs) == 0 {
		sigs = []os.Signal{os.Interrupt}
	}
	return func(ctx context.Context) (context.Context, context.CancelFunc) {
		return signal.NotifyContext(ctx, sigs...)
	}
}

// None passes the parent context through unchanged.
func None(ctx context.Context) (context.Context, context.CancelFunc) {
	return ctx, func() {}
}
