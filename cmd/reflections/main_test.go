package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/unowned-ai/reflections/pkg/config"
	"github.com/unowned-ai/reflections/pkg/journal"
	"github.com/unowned-ai/reflections/pkg/logging"
	"github.com/unowned-ai/reflections/pkg/themes"
)

func TestMain(m *testing.M) {
	initCmd()
	os.Exit(m.Run())
}

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the CLI against an isolated home and journal file.
func execute(t *testing.T, dbFile string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--db", dbFile, "--log-level", "error"}, args...))
	err := rootCmd.Execute()
	resetFlags(rootCmd)
	return out.String(), err
}

func isolatedJournal(t *testing.T, name string) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	return filepath.Join(home, "data", name)
}

func TestAddListAndThemes(t *testing.T) {
	dbFile := isolatedJournal(t, "journal.json")

	out, err := execute(t, dbFile, "entries", "add", "--date", "2024-03-01", "--mood", "7",
		"--label", "Grateful", "--past", "I am grateful for sunshine and coffee", "--future", "I hope for peace")
	require.NoError(t, err)
	assert.Contains(t, out, "Journal Entry Saved.")

	_, err = execute(t, dbFile, "entries", "add", "--date", "2024-03-02", "--reflection", "fine", "--past", "More sunshine please")
	require.NoError(t, err)

	out, err = execute(t, dbFile, "entries", "list", "--json")
	require.NoError(t, err)
	var entries []journal.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, 7, entries[0].Mood)
	assert.Equal(t, journal.DefaultMood, entries[1].Mood)
	assert.Empty(t, entries[1].MoodLabel, "flags do not leak between runs")

	out, err = execute(t, dbFile, "themes", "--json")
	require.NoError(t, err)
	var stats []themes.WordStat
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, []themes.WordStat{
		{Text: "sunshine", Value: 2},
		{Text: "grateful", Value: 1},
		{Text: "coffee", Value: 1},
		{Text: "hope", Value: 1},
		{Text: "peace", Value: 1},
		{Text: "please", Value: 1},
	}, stats)

	out, err = execute(t, dbFile, "trend")
	require.NoError(t, err)
	assert.Contains(t, out, "03-01  7")
	assert.Contains(t, out, "03-02  5")

	out, err = execute(t, dbFile, "recent", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Untitled")
	assert.NotContains(t, out, "Grateful")
}

func TestAddRejectsEmptyEntry(t *testing.T) {
	dbFile := isolatedJournal(t, "journal.json")

	_, err := execute(t, dbFile, "entries", "add", "--past", "only this")
	require.Error(t, err)
	assert.Equal(t, "Please enter at least a mood or a reflection.", err.Error())

	_, err = execute(t, dbFile, "entries", "add", "--mood", "11", "--label", "x")
	assert.ErrorIs(t, err, journal.ErrMoodOutOfRange)
}

func TestAddFailsWhenJournalCannotBeWritten(t *testing.T) {
	dbFile := isolatedJournal(t, "journal.json")
	// A directory at the journal path cannot be replaced by the saved file.
	require.NoError(t, os.MkdirAll(dbFile, 0o700))

	out, err := execute(t, dbFile, "entries", "add", "--label", "Calm")
	require.Error(t, err)
	assert.ErrorIs(t, err, journal.ErrPersistFailed)
	assert.NotContains(t, out, "Journal Entry Saved.")

	out, err = execute(t, dbFile, "entries", "clear", "--yes")
	require.Error(t, err)
	assert.ErrorIs(t, err, journal.ErrPersistFailed)
	assert.NotContains(t, out, "Deleted")
}

func TestOpenStoreWithLoggerRoutesSaveErrors(t *testing.T) {
	dbFile := isolatedJournal(t, "journal.json")
	require.NoError(t, os.MkdirAll(dbFile, 0o700))

	saved := cfg
	t.Cleanup(func() { cfg = saved })
	cfg = config.Default()
	cfg.Storage.Path = dbFile

	tl := logging.NewTestLogger()
	store, b, err := openStoreWithLogger(context.Background(), tl.Logger)
	require.NoError(t, err)
	defer b.Close()

	_, err = store.Append(context.Background(), journal.Draft{Mood: 5, MoodLabel: "Calm"})
	require.ErrorIs(t, err, journal.ErrPersistFailed)
	tl.AssertLogged(t, zapcore.ErrorLevel, "failed to save entries")
}

func TestClearRequiresConfirmation(t *testing.T) {
	dbFile := isolatedJournal(t, "journal.db")

	_, err := execute(t, dbFile, "--backend", "sqlite", "entries", "add", "--label", "Calm")
	require.NoError(t, err)

	_, err = execute(t, dbFile, "--backend", "sqlite", "entries", "clear")
	require.Error(t, err)

	out, err := execute(t, dbFile, "--backend", "sqlite", "entries", "list", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, "Calm")

	out, err = execute(t, dbFile, "--backend", "sqlite", "entries", "clear", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1 entries.")

	out, err = execute(t, dbFile, "--backend", "sqlite", "entries", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Your journey begins with a single entry.")
}

func TestExportToFile(t *testing.T) {
	dbFile := isolatedJournal(t, "journal.json")
	_, err := execute(t, dbFile, "entries", "add", "--label", "Bright", "--date", "2024-05-05")
	require.NoError(t, err)

	target := filepath.Join(t.TempDir(), "backup.json")
	out, err := execute(t, dbFile, "entries", "export", "-o", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 entries")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	var entries []journal.Entry
	require.NoError(t, json.Unmarshal(data, &entries))
	assert.Equal(t, "Bright", entries[0].MoodLabel)

	out, err = execute(t, dbFile, "entries", "export", "-o", "-")
	require.NoError(t, err)
	assert.Contains(t, out, `"moodLabel": "Bright"`)
}

func TestShareAndDefine(t *testing.T) {
	dbFile := isolatedJournal(t, "journal.json")

	out, err := execute(t, dbFile, "share", "--print-only", "--date", "2024-03-09", "--mood", "8",
		"--label", "Hopeful", "--past", "tea", "--future", "rest")
	require.NoError(t, err)
	assert.Equal(t, "My Reflection for 2024-03-09:\n\nPast: tea\nFuture: rest\nMood: Hopeful (8/10)\n", out)

	out, err = execute(t, dbFile, "define", "serene")
	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com/search?q=define+serene\n", out)
}

func TestInvalidBackendFlag(t *testing.T) {
	dbFile := isolatedJournal(t, "journal.json")
	_, err := execute(t, dbFile, "--backend", "postgres", "entries", "list")
	assert.Error(t, err)
}

func TestDBUpgrade(t *testing.T) {
	dbFile := isolatedJournal(t, "journal.db")

	_, err := execute(t, dbFile, "db", "upgrade")
	assert.Error(t, err, "json backend has no schema")

	out, err := execute(t, dbFile, "--backend", "sqlite", "db", "upgrade")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema is at version 1.")
	_, err = os.Stat(dbFile)
	assert.NoError(t, err)
}
