package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unowned-ai/reflections/pkg/insights"
	"github.com/unowned-ai/reflections/pkg/journal"
	"github.com/unowned-ai/reflections/pkg/share"
)

type (
	savedMsg    struct{ entry journal.Entry }
	clearedMsg  struct{}
	sharedMsg   struct{}
	exportedMsg struct{ path string }
	// actionErrMsg reports a failed action on the status line.
	actionErrMsg struct{ err error }
)

// Validate and append the draft to the store
func saveEntry(store *journal.Store, draft journal.Draft) tea.Cmd {
	return func() tea.Msg {
		entry, err := store.Append(context.Background(), draft)
		if err != nil {
			return actionErrMsg{err: err}
		}
		return savedMsg{entry: entry}
	}
}

// Remove every entry from the store
func clearEntries(store *journal.Store) tea.Cmd {
	return func() tea.Msg {
		if err := store.ClearAll(context.Background()); err != nil {
			return actionErrMsg{err: err}
		}
		return clearedMsg{}
	}
}

// Hand the composed reflection text to the sharer
func shareDraft(sharer share.Sharer, draft journal.Draft) tea.Cmd {
	return func() tea.Msg {
		if err := sharer.Share(context.Background(), insights.ShareText(draft)); err != nil {
			return actionErrMsg{err: err}
		}
		return sharedMsg{}
	}
}

// Write the export document into dir under the dated default name
func exportEntries(store *journal.Store, dir string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		data, err := insights.MarshalExport(store.All())
		if err != nil {
			return actionErrMsg{err: err}
		}
		path := filepath.Join(dir, insights.ExportFilename(now))
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return actionErrMsg{err: fmt.Errorf("failed to write export: %w", err)}
		}
		return exportedMsg{path: path}
	}
}
