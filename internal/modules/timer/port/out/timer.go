package out

import "time"

// Display renders a running countdown. Start is only called for countdowns
// that actually run; Finish is called exactly once after Start.
type Display interface {
	Start(label string, total time.Duration, quote, author string)
	Tick(label string, remaining time.Duration, progress float64)
	Finish(label string, completed bool)
}
