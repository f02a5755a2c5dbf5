package domain

import "time"

// Tick is the display and sleep granularity of a countdown.
const Tick = time.Second

// Countdown tracks elapsed time against a fixed total. It holds no clock;
// callers advance it after each blocking sleep.
type Countdown struct {
	total   time.Duration
	elapsed time.Duration
}

func NewCountdown(minutes int) Countdown {
	if minutes < 0 {
		minutes = 0
	}
	return Countdown{total: time.Duration(minutes) * time.Minute}
}

func (c Countdown) Total() time.Duration { return c.total }

func (c Countdown) Remaining() time.Duration {
	if c.elapsed >= c.total {
		return 0
	}
	return c.total - c.elapsed
}

// Progress is elapsed/total in [0,1]. An empty countdown reports 1.
func (c Countdown) Progress() float64 {
	if c.total <= 0 {
		return 1
	}
	p := float64(c.elapsed) / float64(c.total)
	if p > 1 {
		return 1
	}
	return p
}

func (c Countdown) Done() bool {
	return c.elapsed >= c.total
}

func (c *Countdown) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.elapsed += d
	if c.elapsed > c.total {
		c.elapsed = c.total
	}
}

// Clock splits the remaining time into whole minutes and seconds.
func (c Countdown) Clock() (int, int) {
	secs := int(c.Remaining() / time.Second)
	return secs / 60, secs % 60
}
