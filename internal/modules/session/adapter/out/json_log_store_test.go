package out_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	sessionout "pomo/internal/modules/session/adapter/out"
	"pomo/internal/modules/session/domain"
)

func TestAppendRoundTripPreservesOrderAndFields(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "logfile.json")
	store := sessionout.NewJSONLogStore(path)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	want := []domain.Record{
		{Timestamp: base, Type: domain.TypeWork, Duration: 25, Completed: true, SessionNumber: 1},
		{Timestamp: base.Add(25 * time.Minute), Type: domain.TypeShortBreak, Duration: 5, Completed: true, SessionNumber: 2},
		{Timestamp: base.Add(31 * time.Minute), Type: "reading", Duration: 40, Completed: false, SessionNumber: 3},
	}
	for i, r := range want {
		pos, err := store.Append(context.Background(), r)
		if err != nil {
			t.Fatalf("append #%d: %v", i, err)
		}
		if pos != i {
			t.Fatalf("append #%d returned position %d", i, pos)
		}
	}

	loaded := store.ReadAll(context.Background())
	if loaded.Status != domain.LoadOK || loaded.Err != nil {
		t.Fatalf("expected ok load, got %s %v", loaded.Status, loaded.Err)
	}
	if len(loaded.Records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(loaded.Records))
	}
	for i := range want {
		got := loaded.Records[i]
		if !got.Timestamp.Equal(want[i].Timestamp) || got.Type != want[i].Type || got.Duration != want[i].Duration ||
			got.Completed != want[i].Completed || got.SessionNumber != want[i].SessionNumber {
			t.Fatalf("record %d mismatch: got %+v want %+v", i, got, want[i])
		}
	}
}

func TestLogFileFormat(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logfile.json")
	store := sessionout.NewJSONLogStore(path)
	ts := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	if _, err := store.Append(context.Background(), domain.Record{Timestamp: ts, Type: "work", Duration: 25, Completed: true, SessionNumber: 1}); err != nil {
		t.Fatalf("append: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	decoded := []map[string]any{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("log must be a JSON array: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected one entry, got %d", len(decoded))
	}
	entry := decoded[0]
	for _, key := range []string{"timestamp", "type", "duration", "completed", "session_number"} {
		if _, ok := entry[key]; !ok {
			t.Fatalf("entry missing %q: %v", key, entry)
		}
	}
	if entry["timestamp"] != "2026-03-01T09:00:00Z" {
		t.Fatalf("unexpected timestamp %v", entry["timestamp"])
	}
}

func TestReadAllMissingAndCorrupt(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	missing := sessionout.NewJSONLogStore(filepath.Join(dir, "nope.json")).ReadAll(context.Background())
	if missing.Status != domain.LoadMissing || len(missing.Records) != 0 || missing.Err != nil {
		t.Fatalf("unexpected missing result %+v", missing)
	}

	corruptPath := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corruptPath, []byte(`[{"type": "work",`), 0o644); err != nil {
		t.Fatalf("write corrupt log: %v", err)
	}
	corrupt := sessionout.NewJSONLogStore(corruptPath).ReadAll(context.Background())
	if corrupt.Status != domain.LoadCorrupt || len(corrupt.Records) != 0 || corrupt.Err == nil {
		t.Fatalf("unexpected corrupt result %+v", corrupt)
	}
}

func TestAppendOverCorruptLogStartsFresh(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logfile.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write corrupt log: %v", err)
	}
	store := sessionout.NewJSONLogStore(path)
	pos, err := store.Append(context.Background(), domain.Record{Type: "work", Duration: 25, Completed: true})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if pos != 0 {
		t.Fatalf("expected position 0, got %d", pos)
	}
	if got := store.ReadAll(context.Background()); got.Status != domain.LoadOK || len(got.Records) != 1 {
		t.Fatalf("expected one readable record, got %+v", got)
	}
}

func TestAppendWriteFailure(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := sessionout.NewJSONLogStore(dir)
	if _, err := store.Append(context.Background(), domain.Record{Type: "work", Duration: 25}); err == nil {
		t.Fatalf("writing over a directory should fail")
	}
}

func TestReadAllAcceptsTimestampsWithoutOffset(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logfile.json")
	legacy := `[
  {"timestamp": "2025-01-12T10:00:00.123456", "type": "work", "duration": 25, "completed": true, "session_number": 1},
  {"timestamp": "2025-01-12T10:25:00", "type": "short_break", "duration": 5, "completed": true, "session_number": 2},
  {"timestamp": "yesterday-ish", "type": "work", "duration": 25, "completed": false, "session_number": 3}
]`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	store := sessionout.NewJSONLogStore(path)

	loaded := store.ReadAll(context.Background())
	if loaded.Status != domain.LoadOK || len(loaded.Records) != 3 {
		t.Fatalf("log without offsets should load, got %s %d %v", loaded.Status, len(loaded.Records), loaded.Err)
	}
	want := time.Date(2025, 1, 12, 10, 0, 0, 123456000, time.UTC)
	if !loaded.Records[0].Timestamp.Equal(want) {
		t.Fatalf("unexpected timestamp %v", loaded.Records[0].Timestamp)
	}
	if !loaded.Records[2].Timestamp.IsZero() || loaded.Records[2].RawTimestamp != "yesterday-ish" {
		t.Fatalf("unparseable timestamp should be kept raw, got %+v", loaded.Records[2])
	}

	pos, err := store.Append(context.Background(), domain.Record{Timestamp: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), Type: "work", Duration: 25, Completed: true, SessionNumber: 1})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if pos != 3 {
		t.Fatalf("append should extend the existing history, got position %d", pos)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	decoded := []map[string]any{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode log: %v", err)
	}
	if len(decoded) != 4 {
		t.Fatalf("expected 4 entries after append, got %d", len(decoded))
	}
	for i, ts := range []string{"2025-01-12T10:00:00.123456", "2025-01-12T10:25:00", "yesterday-ish", "2026-03-01T09:00:00Z"} {
		if decoded[i]["timestamp"] != ts {
			t.Fatalf("entry %d timestamp rewritten to %v, want %s", i, decoded[i]["timestamp"], ts)
		}
	}
}
