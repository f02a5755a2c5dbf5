package usecase

import (
	"context"
	"fmt"
	"strings"

	"pomo/internal/modules/timer/dto"
	timerin "pomo/internal/modules/timer/port/in"
	"pomo/internal/modules/timer/service"
)

type Interactor struct {
	svc *service.TimerService
}

func NewInteractor(svc *service.TimerService) timerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Countdown(ctx context.Context, input dto.CountdownInput) (dto.CountdownOutput, error) {
	if i.svc == nil {
		return dto.CountdownOutput{}, fmt.Errorf("timer service is not configured")
	}
	label := strings.TrimSpace(input.Label)
	completed, ticks := i.svc.Run(ctx, input.Minutes, label, input.Quote, input.Author)
	return dto.CountdownOutput{
		Label:     label,
		Minutes:   input.Minutes,
		Completed: completed,
		Ticks:     ticks,
	}, nil
}
