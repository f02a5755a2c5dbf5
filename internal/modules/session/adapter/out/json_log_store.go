package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pomo/internal/modules/session/domain"
	sessionout "pomo/internal/modules/session/port/out"
)

// logEntry is the on-disk shape of a record. The timestamp stays a string so
// entries written by other tools are never rejected for their time format.
type logEntry struct {
	Timestamp     string      `json:"timestamp"`
	Type          domain.Type `json:"type"`
	Duration      int         `json:"duration"`
	Completed     bool        `json:"completed"`
	SessionNumber int         `json:"session_number"`
}

func toLogEntry(r domain.Record) logEntry {
	return logEntry{
		Timestamp:     r.TimestampText(),
		Type:          r.Type,
		Duration:      r.Duration,
		Completed:     r.Completed,
		SessionNumber: r.SessionNumber,
	}
}

func (e logEntry) record() domain.Record {
	ts, _ := domain.ParseTimestamp(e.Timestamp)
	return domain.Record{
		Timestamp:     ts,
		RawTimestamp:  e.Timestamp,
		Type:          e.Type,
		Duration:      e.Duration,
		Completed:     e.Completed,
		SessionNumber: e.SessionNumber,
	}
}

// JSONLogStore keeps every record in one JSON array and rewrites the whole
// file on each append. There is no locking; the last writer wins.
type JSONLogStore struct {
	path string
}

func NewJSONLogStore(path string) sessionout.LogStore {
	return &JSONLogStore{path: path}
}

func (s *JSONLogStore) Append(ctx context.Context, record domain.Record) (int, error) {
	records := s.ReadAll(ctx).Records
	records = append(records, record)

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create session log dir: %w", err)
		}
	}
	entries := make([]logEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, toLogEntry(r))
	}
	payload, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshal session log: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return 0, fmt.Errorf("write session log: %w", err)
	}
	return len(records) - 1, nil
}

func (s *JSONLogStore) ReadAll(_ context.Context) domain.LoadResult {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.LoadResult{Records: []domain.Record{}, Status: domain.LoadMissing}
		}
		return domain.LoadResult{Records: []domain.Record{}, Status: domain.LoadCorrupt, Err: fmt.Errorf("read session log: %w", err)}
	}
	entries := []logEntry{}
	if err := json.Unmarshal(payload, &entries); err != nil {
		return domain.LoadResult{Records: []domain.Record{}, Status: domain.LoadCorrupt, Err: fmt.Errorf("decode session log: %w", err)}
	}
	records := make([]domain.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, e.record())
	}
	return domain.LoadResult{Records: records, Status: domain.LoadOK}
}
