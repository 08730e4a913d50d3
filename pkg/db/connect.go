package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// validSyncModes lists the allowed values for the synchronous pragma.
var validSyncModes = map[string]bool{
	"OFF":    true,
	"NORMAL": true,
	"FULL":   true,
	"EXTRA":  true,
}

// ValidSyncMode reports whether mode is accepted by Open (case-insensitive).
// The empty string leaves the driver default in place.
func ValidSyncMode(mode string) bool {
	return mode == "" || validSyncModes[strings.ToUpper(mode)]
}

// DSN appends the journal_mode and synchronous pragmas to path.
func DSN(path string, enableWAL bool, syncPragma string) (string, error) {
	params := url.Values{}
	if enableWAL {
		params.Add("_journal_mode", "WAL")
	}
	if syncPragma != "" {
		mode := strings.ToUpper(syncPragma)
		if !validSyncModes[mode] {
			return "", fmt.Errorf("invalid sync pragma value: %s. Must be one of OFF, NORMAL, FULL, EXTRA", syncPragma)
		}
		params.Add("_synchronous", mode)
	}

	if len(params) == 0 {
		return path, nil
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + params.Encode(), nil
}

// Open connects to the SQLite database at path and pings it.
func Open(ctx context.Context, path string, enableWAL bool, syncPragma string) (*sql.DB, error) {
	dsn, err := DSN(path, enableWAL, syncPragma)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database with DSN '%s': %w", dsn, err)
	}
	// A single connection keeps ":memory:" databases coherent and serializes
	// writers; the journal is small and single-user.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database with DSN '%s': %w", dsn, err)
	}
	return conn, nil
}
