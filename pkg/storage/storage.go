// Package storage persists the journal collection. Two backends satisfy
// journal.Persister: a JSON file holding the entry array, and SQLite.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/unowned-ai/reflections/pkg/db"
	"github.com/unowned-ai/reflections/pkg/journal"
	"github.com/unowned-ai/reflections/pkg/logging"
	"github.com/unowned-ai/reflections/pkg/utils"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// ErrCorrupt wraps data that exists but cannot be decoded into entries.
var ErrCorrupt = errors.New("stored journal is corrupt")

// Config selects and tunes a backend.
type Config struct {
	Backend string `koanf:"backend"`
	// Path of the data file. Empty means the per-OS default for Backend.
	Path string `koanf:"path"`
	// WAL and Sync only apply to the sqlite backend.
	WAL  bool   `koanf:"wal"`
	Sync string `koanf:"sync"`
}

// NewDefaultConfig returns the JSON backend at its default location.
func NewDefaultConfig() Config {
	return Config{Backend: BackendJSON, Sync: "FULL"}
}

// Validate checks the backend name and the sqlite sync pragma.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q: must be %s or %s", c.Backend, BackendJSON, BackendSQLite)
	}
	if !db.ValidSyncMode(c.Sync) {
		return fmt.Errorf("invalid storage sync mode %q: must be one of OFF, NORMAL, FULL, EXTRA", c.Sync)
	}
	return nil
}

// ResolvedPath is Path, or the backend default when Path is blank.
func (c Config) ResolvedPath() string {
	if strings.TrimSpace(c.Path) == "" {
		return utils.DefaultDataPath(c.Backend)
	}
	return c.Path
}

// Backend is a Persister that holds resources until closed.
type Backend interface {
	journal.Persister
	io.Closer
}

// Open builds the backend named by cfg, creating parent directories and, for
// sqlite, bringing the schema up to date.
func Open(ctx context.Context, cfg Config, logger *logging.Logger) (Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	path, err := utils.ResolveAndEnsurePath(cfg.ResolvedPath())
	if err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case BackendSQLite:
		return OpenSQLite(ctx, path, cfg.WAL, cfg.Sync, logger)
	default:
		return NewJSONFile(path), nil
	}
}
