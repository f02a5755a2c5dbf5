package in

import (
	"context"

	"pomo/internal/modules/quote/dto"
	quotein "pomo/internal/modules/quote/port/in"
)

type CLIHandler struct {
	usecase quotein.Usecase
}

func NewCLIHandler(usecase quotein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Next(ctx context.Context) (dto.QuoteOutput, error) {
	return h.usecase.Next(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (dto.SourceStatusOutput, error) {
	return h.usecase.Status(ctx)
}
