package usecase

import (
	"context"

	"pomo/internal/modules/quote/dto"
	quotein "pomo/internal/modules/quote/port/in"
	"pomo/internal/modules/quote/service"
)

type Interactor struct {
	provider *service.Provider
}

func NewInteractor(provider *service.Provider) quotein.Usecase {
	return &Interactor{provider: provider}
}

func (i *Interactor) Next(_ context.Context) (dto.QuoteOutput, error) {
	q := i.provider.Next()
	return dto.QuoteOutput{Text: q.Text, Author: q.Author, Fallback: i.provider.Fallback()}, nil
}

func (i *Interactor) Status(_ context.Context) (dto.SourceStatusOutput, error) {
	return dto.SourceStatusOutput{Count: i.provider.Count(), Fallback: i.provider.Fallback()}, nil
}
