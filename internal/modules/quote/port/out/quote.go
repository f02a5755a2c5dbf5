package out

import (
	"context"

	"pomo/internal/modules/quote/domain"
)

type QuoteSource interface {
	Load(ctx context.Context) ([]domain.Quote, error)
}
