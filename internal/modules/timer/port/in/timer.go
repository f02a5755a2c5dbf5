package in

import (
	"context"

	"pomo/internal/modules/timer/dto"
)

type Usecase interface {
	Countdown(ctx context.Context, input dto.CountdownInput) (dto.CountdownOutput, error)
}
