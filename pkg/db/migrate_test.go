package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// checkTableExists is a test helper to verify if a table exists in the database.
func checkTableExists(t *testing.T, conn *sql.DB, tableName string) {
	t.Helper()
	var name string
	err := conn.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?;", tableName).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			t.Errorf("Table '%s' does not exist, but it should.", tableName)
			return
		}
		t.Fatalf("Error checking if table '%s' exists: %v", tableName, err)
	}
}

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := Open(context.Background(), ":memory:", false, "NORMAL")
	if err != nil {
		t.Fatalf("Open failed for in-memory DB: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestDSN(t *testing.T) {
	tests := []struct {
		path string
		wal  bool
		sync string
		want string
	}{
		{path: "j.db", want: "j.db"},
		{path: "j.db", wal: true, want: "j.db?_journal_mode=WAL"},
		{path: "j.db", sync: "normal", want: "j.db?_synchronous=NORMAL"},
		{path: "file:j.db?cache=shared", wal: true, sync: "FULL", want: "file:j.db?cache=shared&_journal_mode=WAL&_synchronous=FULL"},
	}
	for _, tt := range tests {
		got, err := DSN(tt.path, tt.wal, tt.sync)
		if err != nil {
			t.Fatalf("DSN(%q, %v, %q) returned error: %v", tt.path, tt.wal, tt.sync, err)
		}
		if got != tt.want {
			t.Errorf("DSN(%q, %v, %q) = %q, want %q", tt.path, tt.wal, tt.sync, got, tt.want)
		}
	}

	if _, err := DSN("j.db", false, "sometimes"); err == nil {
		t.Errorf("DSN accepted an invalid sync pragma")
	}
	if !ValidSyncMode("") || !ValidSyncMode("extra") || ValidSyncMode("fast") {
		t.Errorf("ValidSyncMode gave unexpected results")
	}
}

func TestUpgradeDB_NewDatabase(t *testing.T) {
	ctx := context.Background()
	conn := openMemory(t)

	if err := UpgradeDB(ctx, conn, ":memory:", TargetSchemaVersion, nil); err != nil {
		t.Fatalf("UpgradeDB failed on a new in-memory database: %v", err)
	}

	for _, tableName := range []string{"reflections_versions", "entries"} {
		checkTableExists(t, conn, tableName)
	}

	version, err := GetComponentSchemaVersion(ctx, conn, JournalDBComponent)
	if err != nil {
		t.Fatalf("GetComponentSchemaVersion failed after UpgradeDB: %v", err)
	}
	if version != TargetSchemaVersion {
		t.Errorf("Expected component '%s' to be at version %d, but got %d", JournalDBComponent, TargetSchemaVersion, version)
	}
}

func TestUpgradeDB_AlreadyUpToDate(t *testing.T) {
	ctx := context.Background()
	conn := openMemory(t)

	if err := InitializeSchema(ctx, conn, TargetSchemaVersion); err != nil {
		t.Fatalf("InitializeSchema failed: %v", err)
	}
	if err := UpgradeDB(ctx, conn, ":memory:", TargetSchemaVersion, nil); err != nil {
		t.Fatalf("UpgradeDB failed on an up-to-date database: %v", err)
	}

	version, err := GetComponentSchemaVersion(ctx, conn, JournalDBComponent)
	if err != nil {
		t.Fatalf("GetComponentSchemaVersion failed: %v", err)
	}
	if version != TargetSchemaVersion {
		t.Errorf("Expected component '%s' to be at version %d, but got %d", JournalDBComponent, TargetSchemaVersion, version)
	}
}

func TestUpgradeDB_VersionMismatch(t *testing.T) {
	tests := []struct {
		name   string
		stored int64
		target int64
		want   string
	}{
		{name: "older", stored: 1, target: 2, want: "which is older than application's target schema version 2"},
		{name: "newer", stored: 2, target: 1, want: "which is newer than application's target schema version 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			conn := openMemory(t)

			if err := InitializeSchema(ctx, conn, tt.stored); err != nil {
				t.Fatalf("InitializeSchema to version %d failed: %v", tt.stored, err)
			}

			err := UpgradeDB(ctx, conn, ":memory:", tt.target, nil)
			if err == nil {
				t.Fatalf("UpgradeDB should have failed, but it did not")
			}
			if !errors.Is(err, ErrSchemaMismatch) {
				t.Errorf("expected ErrSchemaMismatch, got %v", err)
			}
			prefix := fmt.Sprintf("has schema version %d, ", tt.stored)
			if !strings.Contains(err.Error(), prefix+tt.want) {
				t.Errorf("UpgradeDB error message mismatch.\nExpected to contain: %s\nGot: %s", prefix+tt.want, err.Error())
			}

			current, err := GetComponentSchemaVersion(ctx, conn, JournalDBComponent)
			if err != nil {
				t.Fatalf("GetComponentSchemaVersion failed after attempted upgrade: %v", err)
			}
			if current != tt.stored {
				t.Errorf("Database schema version changed from %d to %d after a failed upgrade", tt.stored, current)
			}
		})
	}
}

func TestGetComponentSchemaVersion_NoTable(t *testing.T) {
	version, err := GetComponentSchemaVersion(context.Background(), openMemory(t), JournalDBComponent)
	if err != nil {
		t.Fatalf("GetComponentSchemaVersion failed on an empty database: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0 on an empty database, got %d", version)
	}
}
