package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/unowned-ai/reflections/pkg/journal"
)

// JSONFile stores the collection as one JSON array in a file. Calls are not
// synchronized; journal.Store serializes them.
type JSONFile struct {
	path string
	// corrupt is set when Load rejected the file. The next Save moves it
	// aside before writing.
	corrupt bool
	now     func() time.Time
}

// NewJSONFile returns a backend for path. The file is created on first Save.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path, now: time.Now}
}

// Path returns the backing file.
func (f *JSONFile) Path() string {
	return f.path
}

// Load reads the array. A missing or blank file is journal.ErrNotFound.
func (f *JSONFile) Load(ctx context.Context) ([]journal.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", journal.ErrNotFound, f.path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", journal.ErrNotFound, f.path)
	}

	var entries []journal.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		f.corrupt = true
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, f.path, err)
	}
	f.corrupt = false
	if entries == nil {
		entries = []journal.Entry{}
	}
	return entries, nil
}

// Save replaces the file atomically: the array is written to a temporary
// file in the same directory which is then renamed over the target.
func (f *JSONFile) Save(ctx context.Context, entries []journal.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if entries == nil {
		entries = []journal.Entry{}
	}

	data, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	if f.corrupt {
		if err := f.moveAside(); err != nil {
			return err
		}
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}
	return nil
}

// moveAside renames the rejected file to <path>.corrupt-<timestamp> so the
// first save does not destroy it.
func (f *JSONFile) moveAside() error {
	backup := fmt.Sprintf("%s.corrupt-%s", f.path, f.now().Format("20060102T150405"))
	if err := os.Rename(f.path, backup); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to keep corrupt journal as %s: %w", backup, err)
	}
	f.corrupt = false
	return nil
}

// encodeEntries writes the compact array with <, > and & left as is, so the
// file reads the same as one saved by the browser app.
func encodeEntries(entries []journal.Entry) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		return nil, fmt.Errorf("failed to encode entries: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Close is a no-op; JSONFile holds no open handles.
func (f *JSONFile) Close() error {
	return nil
}
