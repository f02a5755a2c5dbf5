package in

import (
	"context"

	"pomo/internal/modules/quote/dto"
)

type Usecase interface {
	Next(ctx context.Context) (dto.QuoteOutput, error)
	Status(ctx context.Context) (dto.SourceStatusOutput, error)
}
