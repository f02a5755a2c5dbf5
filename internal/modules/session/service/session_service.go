package service

import (
	"context"

	hclog "github.com/hashicorp/go-hclog"

	"pomo/internal/modules/session/domain"
	sessionout "pomo/internal/modules/session/port/out"
	"pomo/internal/platform/clock"
)

type SessionService struct {
	clock  clock.Clock
	store  sessionout.LogStore
	index  sessionout.SessionIndexProjector
	logger hclog.Logger
}

func NewSessionService(clock clock.Clock, store sessionout.LogStore, index sessionout.SessionIndexProjector, logger hclog.Logger) *SessionService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &SessionService{clock: clock, store: store, index: index, logger: logger}
}

// Record appends one session to the log and projects it into the index.
// Only a failed log write is returned; the index is best effort.
func (s *SessionService) Record(ctx context.Context, typ domain.Type, minutes int, completed bool, sessionNumber int) (domain.IndexedRecord, error) {
	record := domain.Record{
		Timestamp:     s.clock.Now(),
		Type:          typ,
		Duration:      minutes,
		Completed:     completed,
		SessionNumber: sessionNumber,
	}
	if prev := s.store.ReadAll(ctx); prev.Status == domain.LoadCorrupt {
		s.logger.Warn("session log is corrupt, starting a new one", "error", prev.Err)
	}
	position, err := s.store.Append(ctx, record)
	if err != nil {
		s.logger.Error("session not saved", "type", typ, "error", err)
		return domain.IndexedRecord{Position: -1, Record: record}, err
	}
	indexed := domain.IndexedRecord{Position: position, Record: record}
	if s.index != nil {
		// A record at position 0 starts a new log; rows from the old one are stale.
		if position == 0 {
			if err := s.index.Reset(ctx); err != nil {
				s.logger.Warn("session index reset failed", "error", err)
			}
		}
		if err := s.index.UpsertRecord(ctx, indexed); err != nil {
			s.logger.Warn("session index update failed", "position", position, "error", err)
		}
	}
	s.logger.Debug("session recorded", "type", typ, "minutes", minutes, "completed", completed, "position", position)
	return indexed, nil
}

func (s *SessionService) Stats(ctx context.Context) (domain.Stats, domain.LoadResult) {
	loaded := s.store.ReadAll(ctx)
	if loaded.Status == domain.LoadCorrupt {
		s.logger.Warn("session log is corrupt, reporting empty stats", "error", loaded.Err)
	}
	return domain.Aggregate(loaded.Records), loaded
}

func (s *SessionService) History(ctx context.Context, query sessionout.IndexQuery) ([]domain.IndexedRecord, error) {
	if s.index == nil {
		return nil, nil
	}
	return s.index.Recent(ctx, query)
}

// Reindex rebuilds the index from the log, which stays the source of truth.
func (s *SessionService) Reindex(ctx context.Context) (int, domain.LoadStatus, error) {
	if s.index == nil {
		return 0, "", nil
	}
	loaded := s.store.ReadAll(ctx)
	if loaded.Status == domain.LoadCorrupt {
		s.logger.Warn("session log is corrupt, index will be empty", "error", loaded.Err)
	}
	if err := s.index.Reset(ctx); err != nil {
		return 0, loaded.Status, err
	}
	for i, record := range loaded.Records {
		if err := s.index.UpsertRecord(ctx, domain.IndexedRecord{Position: i, Record: record}); err != nil {
			return i, loaded.Status, err
		}
	}
	return len(loaded.Records), loaded.Status, nil
}
