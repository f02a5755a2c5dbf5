package in

import (
	"context"

	sessiondto "pomo/internal/modules/session/dto"
	sessionin "pomo/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Run(ctx context.Context, sessionType string, minutes int) (sessiondto.RunOutput, error) {
	return h.usecase.Run(ctx, sessiondto.RunInput{Type: sessionType, Minutes: minutes})
}

func (h CLIHandler) Begin(ctx context.Context, sessionType string, minutes int) (sessiondto.BeginOutput, error) {
	return h.usecase.Begin(ctx, sessiondto.BeginInput{Type: sessionType, Minutes: minutes})
}

func (h CLIHandler) Finish(ctx context.Context, begun sessiondto.BeginOutput, completed bool) (sessiondto.FinishOutput, error) {
	return h.usecase.Finish(ctx, sessiondto.FinishInput{
		Type:          begun.Type,
		Minutes:       begun.Minutes,
		SessionNumber: begun.SessionNumber,
		Completed:     completed,
	})
}

func (h CLIHandler) Stats(ctx context.Context) (sessiondto.StatsOutput, error) {
	return h.usecase.Stats(ctx)
}

func (h CLIHandler) History(ctx context.Context, sessionType string, completedOnly bool, limit int) ([]sessiondto.RecordOutput, error) {
	return h.usecase.History(ctx, sessiondto.HistoryInput{Type: sessionType, CompletedOnly: completedOnly, Limit: limit})
}

func (h CLIHandler) Reindex(ctx context.Context) (sessiondto.ReindexOutput, error) {
	return h.usecase.Reindex(ctx)
}
