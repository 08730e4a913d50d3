package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/unowned-ai/reflections/pkg/db"
	"github.com/unowned-ai/reflections/pkg/journal"
	"github.com/unowned-ai/reflections/pkg/logging"
)

const (
	selectEntriesSQL = `SELECT id, date, mood, mood_label, past, future, reflection FROM entries ORDER BY position;`
	deleteEntriesSQL = `DELETE FROM entries;`
	insertEntrySQL   = `INSERT INTO entries (position, id, date, mood, mood_label, past, future, reflection) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`
)

// SQLite stores one row per entry, ordered by position.
type SQLite struct {
	conn *sql.DB
}

// OpenSQLite connects to path and upgrades the schema.
func OpenSQLite(ctx context.Context, path string, enableWAL bool, syncPragma string, logger *logging.Logger) (*SQLite, error) {
	conn, err := db.Open(ctx, path, enableWAL, syncPragma)
	if err != nil {
		return nil, err
	}
	if err := db.UpgradeDB(ctx, conn, path, db.TargetSchemaVersion, logger); err != nil {
		conn.Close()
		return nil, err
	}
	return &SQLite{conn: conn}, nil
}

// NewSQLite wraps an already migrated connection.
func NewSQLite(conn *sql.DB) *SQLite {
	return &SQLite{conn: conn}
}

// Load returns every row in position order. An empty table is an empty,
// present collection.
func (s *SQLite) Load(ctx context.Context) ([]journal.Entry, error) {
	rows, err := s.conn.QueryContext(ctx, selectEntriesSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []journal.Entry{}
	for rows.Next() {
		var e journal.Entry
		if err := rows.Scan(&e.ID, &e.Date, &e.Mood, &e.MoodLabel, &e.Past, &e.Future, &e.Reflection); err != nil {
			return nil, fmt.Errorf("%w: failed to scan entry: %w", ErrCorrupt, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}
	return entries, nil
}

// Save replaces the whole table in one transaction.
func (s *SQLite) Save(ctx context.Context, entries []journal.Entry) (err error) {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteEntriesSQL); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertEntrySQL)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err = stmt.ExecContext(ctx, i, e.ID, e.Date, e.Mood, e.MoodLabel, e.Past, e.Future, e.Reflection); err != nil {
			return fmt.Errorf("failed to insert entry %d: %w", e.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit entries: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (s *SQLite) Close() error {
	return s.conn.Close()
}
