package db

const (
	// SchemaV1 is version 1 of the journal database. Rows in entries are the
	// collection in insertion order, keyed by position.
	SchemaV1 = `
CREATE TABLE IF NOT EXISTS reflections_versions (
    component TEXT PRIMARY KEY,
    version INTEGER NOT NULL,
    created_at REAL DEFAULT (unixepoch())
);

CREATE TABLE IF NOT EXISTS entries (
    position INTEGER PRIMARY KEY,
    id INTEGER NOT NULL,
    date TEXT NOT NULL DEFAULT '',
    mood INTEGER NOT NULL,
    mood_label TEXT NOT NULL DEFAULT '',
    past TEXT NOT NULL DEFAULT '',
    future TEXT NOT NULL DEFAULT '',
    reflection TEXT NOT NULL DEFAULT ''
);
`
)
