// Package config loads the calrange TOML configuration file and applies
// CALRANGE_* environment overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/xolan/calrange/internal/osutil"
	"github.com/xolan/calrange/internal/timeutil"
)

const (
	// AppName is the application name used for the config directory
	AppName = "calrange"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Output formats accepted by default_output_format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatGrid = "grid"
)

// Log levels accepted by log_level.
var logLevels = []string{"debug", "info", "warn", "error"}

// Config represents the application configuration
type Config struct {
	// WeekStartDay is the weekday ranges are aligned to (monday..sunday)
	WeekStartDay string `toml:"week_start_day"`
	// Timezone is an IANA timezone name (e.g. "Europe/Berlin") or "Local"
	Timezone string `toml:"timezone"`
	// DefaultOutputFormat is used when --output is not given. Empty means text.
	DefaultOutputFormat string `toml:"default_output_format"`
	// LogLevel is the minimum level written to stderr
	LogLevel string `toml:"log_level"`
	// Theme is the bubbletint theme id used by the browser
	Theme string `toml:"theme"`
}

// DefaultConfig returns the configuration used when no file exists.
// - week_start_day: "monday" (ISO 8601)
// - timezone: "Local"
// - default_output_format: "" (text)
// - log_level: "warn"
// - theme: "" (browser default)
func DefaultConfig() Config {
	return Config{
		WeekStartDay:        "monday",
		Timezone:            "Local",
		DefaultOutputFormat: "",
		LogLevel:            "warn",
		Theme:               "",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and validates the config file at path. Keys missing from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault is Load that returns DefaultConfig when path does not exist.
// Any other failure, including an unreadable file, is returned.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Normalize lowercases enumerated values and fills empty required fields
// with their defaults.
func (c *Config) Normalize() {
	defaults := DefaultConfig()

	c.WeekStartDay = strings.ToLower(strings.TrimSpace(c.WeekStartDay))
	if c.WeekStartDay == "" {
		c.WeekStartDay = defaults.WeekStartDay
	}

	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.Timezone == "" {
		c.Timezone = defaults.Timezone
	}

	c.DefaultOutputFormat = strings.ToLower(strings.TrimSpace(c.DefaultOutputFormat))

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}

	c.Theme = strings.TrimSpace(c.Theme)
}

// Validate checks every field. Call Normalize first.
func (c Config) Validate() error {
	if _, err := timeutil.ParseWeekday(c.WeekStartDay); err != nil {
		return fmt.Errorf("week_start_day %q is not a weekday name", c.WeekStartDay)
	}

	if _, err := loadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}

	if !ValidOutputFormat(c.DefaultOutputFormat) {
		return fmt.Errorf("default_output_format %q must be one of %s", c.DefaultOutputFormat, strings.Join(OutputFormats(), ", "))
	}

	if !validLogLevel(c.LogLevel) {
		return fmt.Errorf("log_level %q must be one of %s", c.LogLevel, strings.Join(logLevels, ", "))
	}

	return nil
}

// Location resolves Timezone. Invalid values fall back to time.Local, which
// only happens for configs that skipped Validate.
func (c Config) Location() *time.Location {
	loc, err := loadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// WeekStart resolves WeekStartDay, falling back to Monday.
func (c Config) WeekStart() timeutil.Weekday {
	wd, err := timeutil.ParseWeekday(c.WeekStartDay)
	if err != nil {
		return timeutil.Monday
	}
	return wd
}

// OutputFormat returns the configured output format, text when unset.
func (c Config) OutputFormat() string {
	if c.DefaultOutputFormat == "" {
		return FormatText
	}
	return c.DefaultOutputFormat
}

// OutputFormats lists the accepted output formats.
func OutputFormats() []string {
	return []string{FormatText, FormatJSON, FormatYAML, FormatGrid}
}

// ValidOutputFormat reports whether format is empty or one of OutputFormats.
func ValidOutputFormat(format string) bool {
	if format == "" {
		return true
	}
	for _, f := range OutputFormats() {
		if f == format {
			return true
		}
	}
	return false
}

func validLogLevel(level string) bool {
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// GenerateSampleConfig returns a commented config file with every key set
// to its default.
func GenerateSampleConfig() string {
	return `# calrange configuration file

# Weekday that weeks and month grids start on: monday .. sunday
week_start_day = "monday"

# Timezone used to resolve "today": IANA name (e.g. "Europe/Berlin") or "Local"
timezone = "Local"

# Output format when --output is not given: text, json, yaml or grid
default_output_format = "text"

# Minimum log level written to stderr: debug, info, warn or error
log_level = "warn"

# Browser color theme (any bubbletint id, e.g. "dracula")
# theme = "dracula"
`
}
