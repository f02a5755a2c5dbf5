package service

import (
	"context"

	"pomo/internal/modules/timer/domain"
	timerout "pomo/internal/modules/timer/port/out"
	"pomo/internal/platform/clock"
	"pomo/internal/platform/interrupt"
)

type TimerService struct {
	sleeper clock.Sleeper
	display timerout.Display
	scope   interrupt.Scope
}

// NewTimerService builds a timer. scope bounds each countdown so that an
// interrupt stops the countdown only; nil means no interrupt handling.
func NewTimerService(sleeper clock.Sleeper, display timerout.Display, scope interrupt.Scope) *TimerService {
	if scope == nil {
		scope = interrupt.None
	}
	return &TimerService{sleeper: sleeper, display: display, scope: scope}
}

// Run counts down one tick at a time and reports whether zero was reached.
// A non-positive duration returns false without starting the display.
func (s *TimerService) Run(ctx context.Context, minutes int, label, quote, author string) (bool, int) {
	if minutes <= 0 {
		return false, 0
	}
	ctx, stop := s.scope(ctx)
	defer stop()

	cd := domain.NewCountdown(minutes)
	s.display.Start(label, cd.Total(), quote, author)

	ticks := 0
	for !cd.Done() {
		s.display.Tick(label, cd.Remaining(), cd.Progress())
		if err := s.sleeper.Sleep(ctx, domain.Tick); err != nil {
			s.display.Finish(label, false)
			return false, ticks
		}
		cd.Advance(domain.Tick)
		ticks++
	}
	s.display.Tick(label, cd.Remaining(), cd.Progress())
	s.display.Finish(label, true)
	return true, ticks
}
