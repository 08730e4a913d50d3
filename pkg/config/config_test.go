package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unowned-ai/reflections/pkg/journal"
	"github.com/unowned-ai/reflections/pkg/themes"
)

// isolate points the default config location at an empty home.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	return home
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "json", cfg.Storage.Backend)
	assert.Equal(t, "FULL", cfg.Storage.Sync)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 40, cfg.Themes.Limit)
	assert.Equal(t, 3, cfg.Themes.MinLength)
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
storage:
  backend: sqlite
  path: /var/tmp/j.db
  wal: true
log:
  format: json
themes:
  limit: 10
  extra_stop_words: [work, today]
  exclude_prompt_words: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/var/tmp/j.db", cfg.Storage.Path)
	assert.True(t, cfg.Storage.WAL)
	assert.Equal(t, "FULL", cfg.Storage.Sync, "unset keys keep defaults")
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Themes.Limit)
	assert.Equal(t, []string{"work", "today"}, cfg.Themes.ExtraStopWords)
	assert.True(t, cfg.Themes.ExcludePromptWords)
}

func TestLoadDefaultLocation(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "reflections")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	writeConfig(t, dir, "log:\n  level: debug\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "storage:\n  backend: sqlite\nthemes:\n  min_length: 4\n")

	t.Setenv("REFLECTIONS_STORAGE_BACKEND", "json")
	t.Setenv("REFLECTIONS_THEMES_MIN_LENGTH", "5")
	t.Setenv("REFLECTIONS_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Storage.Backend)
	assert.Equal(t, 5, cfg.Themes.MinLength)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "explicit path must exist")

	tests := map[string]string{
		"bad yaml":      "storage: [",
		"bad backend":   "storage:\n  backend: postgres\n",
		"bad level":     "log:\n  level: loud\n",
		"bad format":    "log:\n  format: xml\n",
		"bad limit":     "themes:\n  limit: 0\n",
		"bad sync mode": "storage:\n  sync: sometimes\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), content))
			assert.Error(t, err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "storage.backend", envKey("REFLECTIONS_STORAGE_BACKEND"))
	assert.Equal(t, "themes.extra_stop_words", envKey("REFLECTIONS_THEMES_EXTRA_STOP_WORDS"))
	assert.Equal(t, "debug", envKey("REFLECTIONS_DEBUG"))
}

func TestThemesExtractor(t *testing.T) {
	entries := []journal.Entry{{Past: "things at work went well", Future: "hope work calms"}}

	cfg := Default().Themes
	got := cfg.Extractor().Extract(entries)
	assert.Equal(t, themes.Extract(entries), got)

	cfg.ExtraStopWords = []string{"Work"}
	cfg.ExcludePromptWords = true
	got = cfg.Extractor().Extract(entries)
	assert.Equal(t, []themes.WordStat{{Text: "went", Value: 1}, {Text: "well", Value: 1}, {Text: "calms", Value: 1}}, got)
}
