package in

import (
	"context"

	"pomo/internal/modules/session/dto"
)

type Usecase interface {
	Begin(ctx context.Context, input dto.BeginInput) (dto.BeginOutput, error)
	Finish(ctx context.Context, input dto.FinishInput) (dto.FinishOutput, error)
	Run(ctx context.Context, input dto.RunInput) (dto.RunOutput, error)
	Stats(ctx context.Context) (dto.StatsOutput, error)
	History(ctx context.Context, input dto.HistoryInput) ([]dto.RecordOutput, error)
	Reindex(ctx context.Context) (dto.ReindexOutput, error)
}
