package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a single-row lookup finds nothing.
var ErrNotFound = errors.New("not found")

// DefaultInquiryLimit caps Inquiries when no limit is given.
const DefaultInquiryLimit = 100

// Store persists company content, analytics and inquiries in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the database at path. ":memory:" is accepted.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// a single connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)
	s := &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
	if err := s.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS company_info (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		mission TEXT NOT NULL,
		description TEXT NOT NULL,
		urgency TEXT NOT NULL,
		email TEXT NOT NULL,
		demo TEXT NOT NULL,
		pitch TEXT NOT NULL,
		version TEXT NOT NULL,
		status TEXT NOT NULL,
		welcome_message TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
	CREATE TABLE IF NOT EXISTS roadmap_milestones (
		id TEXT PRIMARY KEY,
		target TEXT NOT NULL,
		product TEXT NOT NULL,
		function TEXT NOT NULL,
		status TEXT NOT NULL,
		priority INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
	CREATE TABLE IF NOT EXISTS team_members (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		focus TEXT NOT NULL,
		bio TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		linkedin TEXT NOT NULL DEFAULT '',
		is_founder INTEGER NOT NULL DEFAULT 1,
		display_order INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
	CREATE TABLE IF NOT EXISTS terminal_analytics (
		id TEXT PRIMARY KEY,
		command TEXT NOT NULL,
		ts_unix_ns INTEGER NOT NULL,
		session_id TEXT NOT NULL,
		user_agent TEXT NOT NULL DEFAULT '',
		response_time INTEGER
	);
	CREATE INDEX IF NOT EXISTS idx_analytics_command ON terminal_analytics(command);
	CREATE TABLE IF NOT EXISTS investor_inquiries (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL,
		inquiry_type TEXT NOT NULL,
		status TEXT NOT NULL,
		source TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_inquiries_created ON investor_inquiries(created_at);
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func newID() string { return uuid.NewString() }
