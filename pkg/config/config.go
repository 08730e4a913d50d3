// Package config loads reflections settings.
//
// Precedence, lowest to highest: built-in defaults, the YAML file, then
// REFLECTIONS_* environment variables. Command-line flags are applied by the
// caller on top of the result.
//
// Environment variables split on the first underscore after the prefix:
//
//	REFLECTIONS_STORAGE_BACKEND      -> storage.backend
//	REFLECTIONS_THEMES_MIN_LENGTH    -> themes.min_length
//	REFLECTIONS_THEMES_EXTRA_STOP_WORDS=work,today
//
// A config file looks like:
//
//	storage:
//	  backend: sqlite
//	  path: ~/journal/reflections.db
//	  wal: true
//	log:
//	  level: debug
//	themes:
//	  limit: 25
//	  exclude_prompt_words: true
package config

import (
	"errors"
	"fmt"

	"github.com/unowned-ai/reflections/pkg/logging"
	"github.com/unowned-ai/reflections/pkg/storage"
	"github.com/unowned-ai/reflections/pkg/themes"
)

// Config holds the complete configuration.
type Config struct {
	Storage storage.Config `koanf:"storage"`
	Log     logging.Config `koanf:"log"`
	Themes  ThemesConfig   `koanf:"themes"`
}

// ThemesConfig tunes the theme extractor.
type ThemesConfig struct {
	Limit     int `koanf:"limit"`
	MinLength int `koanf:"min_length"`
	// ExtraStopWords are filtered in addition to the built-in list.
	ExtraStopWords []string `koanf:"extra_stop_words"`
	// ExcludePromptWords also filters the words the entry form itself
	// prompts with ("things", "hope").
	ExcludePromptWords bool `koanf:"exclude_prompt_words"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Storage: storage.NewDefaultConfig(),
		Log:     logging.NewDefaultConfig(),
		Themes: ThemesConfig{
			Limit:     themes.DefaultLimit,
			MinLength: themes.DefaultMinLength,
		},
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Storage.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Themes.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Validate rejects non-positive limits.
func (t ThemesConfig) Validate() error {
	if t.Limit <= 0 {
		return fmt.Errorf("themes.limit must be positive, got %d", t.Limit)
	}
	if t.MinLength <= 0 {
		return fmt.Errorf("themes.min_length must be positive, got %d", t.MinLength)
	}
	return nil
}

// Extractor builds a theme extractor from the settings.
func (t ThemesConfig) Extractor() *themes.Extractor {
	stop := themes.DefaultStopWords()
	stop.Add(t.ExtraStopWords...)
	if t.ExcludePromptWords {
		stop.Add(themes.PromptWords...)
	}
	return themes.New(
		themes.WithLimit(t.Limit),
		themes.WithMinLength(t.MinLength),
		themes.WithStopWords(stop),
	)
}
