package out

import (
	"context"

	"pomo/internal/modules/session/domain"
)

// LogStore is the append-only session log. Reads never fail; the result
// says whether the log was present and readable.
type LogStore interface {
	Append(ctx context.Context, record domain.Record) (int, error)
	ReadAll(ctx context.Context) domain.LoadResult
}

type IndexQuery struct {
	Type          domain.Type
	CompletedOnly bool
	Limit         int
}

// SessionIndexProjector is a rebuildable query view over the log.
type SessionIndexProjector interface {
	Reset(ctx context.Context) error
	UpsertRecord(ctx context.Context, record domain.IndexedRecord) error
	Recent(ctx context.Context, query IndexQuery) ([]domain.IndexedRecord, error)
}

// Prompter asks the user yes/no questions between chained sessions.
type Prompter interface {
	Confirm(ctx context.Context, question string, defaultYes bool) (bool, error)
	Notify(message string)
}
