package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/bnema/careerhub/internal/ports"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	last_used_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS session_cursors (
	session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
	pool TEXT NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (session_id, pool)
);
`

// SessionRepository stores rotation cursors in a local SQLite file.
type SessionRepository struct {
	db *sql.DB
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

func Open(ctx context.Context, path string) (*SessionRepository, error) {
	if path == "" {
		return nil, errors.New("sqlite path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open sessions database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize sessions schema: %w", err)
	}

	return &SessionRepository{db: db}, nil
}

func (r *SessionRepository) Close() error {
	return r.db.Close()
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (domain.Session, error) {
	var startedAt, lastUsedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT started_at, last_used_at FROM sessions WHERE id = ?`, id,
	).Scan(&startedAt, &lastUsedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("query session: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT pool, position FROM session_cursors WHERE session_id = ?`, id)
	if err != nil {
		return domain.Session{}, fmt.Errorf("query session cursors: %w", err)
	}
	defer rows.Close()

	session := domain.Session{
		ID:         id,
		Cursors:    map[domain.PoolName]uint64{},
		StartedAt:  parseTime(startedAt),
		LastUsedAt: parseTime(lastUsedAt),
	}
	for rows.Next() {
		var pool string
		var cursor int64
		if err := rows.Scan(&pool, &cursor); err != nil {
			return domain.Session{}, fmt.Errorf("scan session cursor: %w", err)
		}
		// Stored as the int64 bit pattern of the uint64 cursor.
		session.Cursors[domain.PoolName(pool)] = uint64(cursor)
	}
	if err := rows.Err(); err != nil {
		return domain.Session{}, fmt.Errorf("iterate session cursors: %w", err)
	}

	return session, nil
}

func (r *SessionRepository) Save(ctx context.Context, session domain.Session) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sessions (id, started_at, last_used_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET last_used_at = excluded.last_used_at`,
		session.ID, formatTime(session.StartedAt), formatTime(session.LastUsedAt),
	)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}

	for pool, cursor := range session.Cursors {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO session_cursors (session_id, pool, position) VALUES (?, ?, ?)
			ON CONFLICT(session_id, pool) DO UPDATE SET position = excluded.position`,
			session.ID, string(pool), int64(cursor),
		)
		if err != nil {
			return fmt.Errorf("upsert cursor %s: %w", pool, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}

	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM session_cursors WHERE session_id = ?`, id); err != nil {
		return fmt.Errorf("delete session cursors: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session delete: %w", err)
	}

	return nil
}

func parseTime(raw string) time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func formatTime(value time.Time) string {
	return value.UTC().Format(time.RFC3339Nano)
}
