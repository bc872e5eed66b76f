// Package config handles configuration loading and validation for quoffice.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"unicode/utf8"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/csheth/quoffice/internal/transcript"
)

// Radius bounds for the context window.
const (
	MinRadius     = 1
	MaxRadius     = 10
	DefaultRadius = 3
)

// Theme names understood by the TUI.
const (
	ThemeOffice     = "office"
	ThemeTokyoNight = "tokyo-night"
	ThemeGruvbox    = "gruvbox"
)

// Themes lists every selectable theme.
var Themes = []string{ThemeOffice, ThemeTokyoNight, ThemeGruvbox}

// Config holds the application configuration.
type Config struct {
	DataPath      string `yaml:"data_path"`      // file or glob of transcript tables
	ContextRadius int    `yaml:"context_radius"` // lines shown either side of a selection
	Delimiter     string `yaml:"delimiter"`      // empty = pick by file extension
	Theme         string `yaml:"theme"`
	LogLevel      string `yaml:"log_level"`
}

// Overrides are flag or environment values that win over the config file.
// Zero values leave the file value in place.
type Overrides struct {
	DataPath string
	Radius   int
	Theme    string
	LogLevel string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DataPath:      filepath.Join("data", "schrute.csv"),
		ContextRadius: DefaultRadius,
		Theme:         ThemeOffice,
		LogLevel:      "info",
	}
}

// Load reads configuration from configPath, applies overrides and validates
// the result. A missing file yields the defaults.
func Load(configPath string, overrides Overrides) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	cfg.Apply(overrides)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills fields a config file left blank.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.DataPath == "" {
		c.DataPath = defaults.DataPath
	}
	if c.ContextRadius == 0 {
		c.ContextRadius = defaults.ContextRadius
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}

// Apply copies every non-zero override onto c.
func (c *Config) Apply(o Overrides) {
	if o.DataPath != "" {
		c.DataPath = o.DataPath
	}
	if o.Radius != 0 {
		c.ContextRadius = o.Radius
	}
	if o.Theme != "" {
		c.Theme = o.Theme
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("data_path", c.DataPath, notEmpty),
		criterio.Run("context_radius", c.ContextRadius, radiusInRange),
		criterio.Run("delimiter", c.Delimiter, singleRune),
		criterio.Run("theme", c.Theme, knownTheme),
		criterio.Run("log_level", c.LogLevel, parseableLevel),
	)
}

// LoadOptions converts the table settings for the transcript loader.
func (c *Config) LoadOptions() transcript.LoadOptions {
	var opts transcript.LoadOptions
	if c.Delimiter != "" {
		opts.Delimiter, _ = utf8.DecodeRuneInString(c.Delimiter)
	}
	return opts
}

func notEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("is required")
	}
	return nil
}

func radiusInRange(r int) error {
	if r < MinRadius || r > MaxRadius {
		return fmt.Errorf("must be between %d and %d, got %d", MinRadius, MaxRadius, r)
	}
	return nil
}

func singleRune(s string) error {
	if s == "" {
		return nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return fmt.Errorf("must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return fmt.Errorf("%q cannot be used as a delimiter", s)
	}
	return nil
}

func knownTheme(name string) error {
	if !slices.Contains(Themes, name) {
		return fmt.Errorf("unknown theme %q (want one of %v)", name, Themes)
	}
	return nil
}

func parseableLevel(level string) error {
	if _, err := zerolog.ParseLevel(level); err != nil {
		return err
	}
	return nil
}
