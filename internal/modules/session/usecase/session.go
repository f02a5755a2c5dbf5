package usecase

import (
	"context"
	"fmt"
	"strings"

	quotein "pomo/internal/modules/quote/port/in"
	"pomo/internal/modules/session/domain"
	sessiondto "pomo/internal/modules/session/dto"
	sessionin "pomo/internal/modules/session/port/in"
	sessionout "pomo/internal/modules/session/port/out"
	"pomo/internal/modules/session/service"
	timerdto "pomo/internal/modules/timer/dto"
	timerin "pomo/internal/modules/timer/port/in"
	apperrors "pomo/internal/platform/errors"
)

// Interactor owns the session counter for the lifetime of the process.
type Interactor struct {
	svc      *service.SessionService
	timer    timerin.Usecase
	quotes   quotein.Usecase
	prompter sessionout.Prompter

	count int
}

func NewInteractor(svc *service.SessionService, timer timerin.Usecase, quotes quotein.Usecase, prompter sessionout.Prompter) sessionin.Usecase {
	return &Interactor{svc: svc, timer: timer, quotes: quotes, prompter: prompter}
}

func (i *Interactor) Begin(_ context.Context, input sessiondto.BeginInput) (sessiondto.BeginOutput, error) {
	typ := domain.Type(strings.TrimSpace(input.Type))
	if typ == "" {
		return sessiondto.BeginOutput{}, fmt.Errorf("%w: session type is required", apperrors.ErrInvalidInput)
	}
	minutes := input.Minutes
	switch {
	case minutes < 0:
		return sessiondto.BeginOutput{}, fmt.Errorf("%w: %d minutes", apperrors.ErrInvalidDuration, minutes)
	case minutes == 0:
		def, ok := domain.DefaultMinutes(typ)
		if !ok {
			return sessiondto.BeginOutput{}, fmt.Errorf("%w: %q has no default, minutes are required", apperrors.ErrInvalidDuration, typ)
		}
		minutes = def
	}
	i.count++
	return sessiondto.BeginOutput{Type: string(typ), Minutes: minutes, SessionNumber: i.count}, nil
}

// Finish persists the outcome. A failed write is reported in SaveError and
// the session is lost; it is not an error for the caller.
func (i *Interactor) Finish(ctx context.Context, input sessiondto.FinishInput) (sessiondto.FinishOutput, error) {
	typ := domain.Type(strings.TrimSpace(input.Type))
	if typ == "" {
		return sessiondto.FinishOutput{}, fmt.Errorf("%w: session type is required", apperrors.ErrInvalidInput)
	}
	indexed, err := i.svc.Record(ctx, typ, input.Minutes, input.Completed, input.SessionNumber)
	out := sessiondto.FinishOutput{Record: toRecordOutput(indexed), Saved: err == nil}
	if err != nil {
		out.SaveError = err.Error()
	}
	if next, ok := domain.FollowUp(typ, input.Completed, input.SessionNumber); ok {
		out.FollowUp = string(next)
	}
	return out, nil
}

// Run performs a session and any breaks the user accepts afterwards.
func (i *Interactor) Run(ctx context.Context, input sessiondto.RunInput) (sessiondto.RunOutput, error) {
	if i.timer == nil {
		return sessiondto.RunOutput{}, fmt.Errorf("timer usecase is not configured")
	}
	out := sessiondto.RunOutput{}
	next := input
	for {
		begun, err := i.Begin(ctx, sessiondto.BeginInput{Type: next.Type, Minutes: next.Minutes})
		if err != nil {
			return out, err
		}
		quote, author := i.quote(ctx)
		counted, err := i.timer.Countdown(ctx, timerdto.CountdownInput{
			Minutes: begun.Minutes,
			Label:   begun.Type,
			Quote:   quote,
			Author:  author,
		})
		if err != nil {
			return out, err
		}
		finished, err := i.Finish(ctx, sessiondto.FinishInput{
			Type:          begun.Type,
			Minutes:       begun.Minutes,
			SessionNumber: begun.SessionNumber,
			Completed:     counted.Completed,
		})
		if err != nil {
			return out, err
		}
		out.Runs = append(out.Runs, finished)
		if finished.SaveError != "" {
			i.notify("Couldn't save session: " + finished.SaveError)
		}
		if finished.FollowUp == "" || i.prompter == nil {
			return out, nil
		}

		question := "Start short break?"
		if finished.FollowUp == string(domain.TypeLongBreak) {
			i.notify("Great work! Time for a longer break!")
			question = "Start long break?"
		} else {
			i.notify("Nice job! Quick break?")
		}
		accepted, err := i.prompter.Confirm(ctx, question, true)
		if err != nil || !accepted {
			return out, nil
		}
		next = sessiondto.RunInput{Type: finished.FollowUp}
	}
}

func (i *Interactor) Stats(ctx context.Context) (sessiondto.StatsOutput, error) {
	stats, loaded := i.svc.Stats(ctx)
	out := sessiondto.StatsOutput{
		TotalSessions:     stats.TotalSessions,
		CompletedSessions: stats.CompletedSessions,
		TotalMinutes:      stats.TotalMinutes,
		WorkSessions:      stats.WorkSessions,
		BreakSessions:     stats.BreakSessions,
		LogStatus:         string(loaded.Status),
	}
	if loaded.Err != nil {
		out.LogError = loaded.Err.Error()
	}
	return out, nil
}

func (i *Interactor) History(ctx context.Context, input sessiondto.HistoryInput) ([]sessiondto.RecordOutput, error) {
	if input.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must be non-negative", apperrors.ErrInvalidInput)
	}
	items, err := i.svc.History(ctx, sessionout.IndexQuery{
		Type:          domain.Type(strings.TrimSpace(input.Type)),
		CompletedOnly: input.CompletedOnly,
		Limit:         input.Limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]sessiondto.RecordOutput, 0, len(items))
	for _, item := range items {
		out = append(out, toRecordOutput(item))
	}
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context) (sessiondto.ReindexOutput, error) {
	n, status, err := i.svc.Reindex(ctx)
	if err != nil {
		return sessiondto.ReindexOutput{}, err
	}
	return sessiondto.ReindexOutput{Indexed: n, LogStatus: string(status)}, nil
}

func (i *Interactor) quote(ctx context.Context) (string, string) {
	if i.quotes == nil {
		return "", ""
	}
	q, err := i.quotes.Next(ctx)
	if err != nil {
		return "", ""
	}
	return q.Text, q.Author
}

func (i *Interactor) notify(message string) {
	if i.prompter != nil {
		i.prompter.Notify(message)
	}
}

func toRecordOutput(item domain.IndexedRecord) sessiondto.RecordOutput {
	return sessiondto.RecordOutput{
		Position:      item.Position,
		Timestamp:     item.Record.Timestamp,
		TimestampText: item.Record.TimestampText(),
		Type:          string(item.Record.Type),
		Duration:      item.Record.Duration,
		Completed:     item.Record.Completed,
		SessionNumber: item.Record.SessionNumber,
	}
}
