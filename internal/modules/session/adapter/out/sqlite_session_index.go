package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pomo/internal/modules/session/domain"
	sessionout "pomo/internal/modules/session/port/out"

	_ "modernc.org/sqlite"
)

const defaultHistoryLimit = 20

type SQLiteSessionIndex struct {
	db *sql.DB
}

func NewSQLiteSessionIndex(dbPath string) (sessionout.SessionIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	index := &SQLiteSessionIndex{db: db}
	if err := index.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return index, nil
}

func (s *SQLiteSessionIndex) Close() error {
	return s.db.Close()
}

func (s *SQLiteSessionIndex) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  position INTEGER PRIMARY KEY,
  recorded_at TEXT NOT NULL,
  type TEXT NOT NULL,
  duration INTEGER NOT NULL,
  completed INTEGER NOT NULL,
  session_number INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_type ON sessions(type);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (s *SQLiteSessionIndex) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("reset sessions: %w", err)
	}
	return nil
}

func (s *SQLiteSessionIndex) UpsertRecord(ctx context.Context, indexed domain.IndexedRecord) error {
	const stmt = `
INSERT INTO sessions (position, recorded_at, type, duration, completed, session_number)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(position) DO UPDATE SET
  recorded_at=excluded.recorded_at,
  type=excluded.type,
  duration=excluded.duration,
  completed=excluded.completed,
  session_number=excluded.session_number;
`
	r := indexed.Record
	completed := 0
	if r.Completed {
		completed = 1
	}
	_, err := s.db.ExecContext(ctx, stmt,
		indexed.Position,
		r.TimestampText(),
		string(r.Type),
		r.Duration,
		completed,
		r.SessionNumber,
	)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

func (s *SQLiteSessionIndex) Recent(ctx context.Context, query sessionout.IndexQuery) ([]domain.IndexedRecord, error) {
	where := []string{}
	args := []any{}
	if strings.TrimSpace(string(query.Type)) != "" {
		where = append(where, "type = ?")
		args = append(args, string(query.Type))
	}
	if query.CompletedOnly {
		where = append(where, "completed = 1")
	}
	limit := query.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	stmt := `SELECT position, recorded_at, type, duration, completed, session_number FROM sessions`
	if len(where) > 0 {
		stmt += " WHERE " + strings.Join(where, " AND ")
	}
	stmt += " ORDER BY position DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	out := []domain.IndexedRecord{}
	for rows.Next() {
		var (
			item       domain.IndexedRecord
			recordedAt string
			typ        string
			completed  int
		)
		if err := rows.Scan(&item.Position, &recordedAt, &typ, &item.Record.Duration, &completed, &item.Record.SessionNumber); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		item.Record.Timestamp, _ = domain.ParseTimestamp(recordedAt)
		item.Record.RawTimestamp = recordedAt
		item.Record.Type = domain.Type(typ)
		item.Record.Completed = completed == 1
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}
