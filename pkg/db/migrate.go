package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/unowned-ai/reflections/pkg/logging"
)

const (
	// TargetSchemaVersion is the highest schema version this build supports.
	TargetSchemaVersion int64 = 1
	// JournalDBComponent names the journal schema in reflections_versions.
	JournalDBComponent = "journaldb"
)

// ErrSchemaMismatch is returned by UpgradeDB when the stored version cannot
// be brought to the target version automatically.
var ErrSchemaMismatch = errors.New("unsupported schema version")

// GetComponentSchemaVersion returns the stored version of component, or 0 when
// the component or the versions table does not exist yet.
func GetComponentSchemaVersion(ctx context.Context, conn *sql.DB, component string) (int64, error) {
	row := conn.QueryRowContext(ctx, `SELECT version FROM reflections_versions WHERE component = ?;`, component)

	var version int64
	if err := row.Scan(&version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		if strings.Contains(err.Error(), "no such table") {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to scan version for component '%s': %w", component, err)
	}
	return version, nil
}

// InitializeSchema creates all tables and records version for the journal component.
func InitializeSchema(ctx context.Context, conn *sql.DB, version int64) error {
	if _, err := conn.ExecContext(ctx, SchemaV1); err != nil {
		return fmt.Errorf("failed to execute schema v1 SQL: %w", err)
	}

	const upsert = `
INSERT INTO reflections_versions (component, version) VALUES (?, ?)
ON CONFLICT(component) DO UPDATE SET version = excluded.version, created_at = unixepoch();`
	if _, err := conn.ExecContext(ctx, upsert, JournalDBComponent, version); err != nil {
		return fmt.Errorf("failed to insert/update version for component %s to %d: %w", JournalDBComponent, version, err)
	}
	return nil
}

// UpgradeDB brings the journal schema to target. New databases are
// initialized; older or newer stored versions fail with ErrSchemaMismatch.
// name identifies the database in log output only.
func UpgradeDB(ctx context.Context, conn *sql.DB, name string, target int64, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.NewNop()
	}
	fields := []zap.Field{
		zap.String("database", name),
		zap.String("component", JournalDBComponent),
	}

	current, err := GetComponentSchemaVersion(ctx, conn, JournalDBComponent)
	if err != nil {
		return err
	}

	switch {
	case current == 0:
		logger.Info(ctx, "initializing schema", append(fields, zap.Int64("version", target))...)
		if err := InitializeSchema(ctx, conn, target); err != nil {
			return fmt.Errorf("failed to initialize component %s in database '%s': %w", JournalDBComponent, name, err)
		}
		return nil
	case current == target:
		logger.Debug(ctx, "schema up to date", append(fields, zap.Int64("version", current))...)
		return nil
	case current < target:
		return fmt.Errorf("%w: component %s in database '%s' has schema version %d, which is older than application's target schema version %d",
			ErrSchemaMismatch, JournalDBComponent, name, current, target)
	default:
		return fmt.Errorf("%w: component %s in database '%s' has schema version %d, which is newer than application's target schema version %d. Please upgrade the application",
			ErrSchemaMismatch, JournalDBComponent, name, current, target)
	}
}
