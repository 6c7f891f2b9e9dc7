package config

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CALRANGE"

// EnvConfig holds environment overrides. Empty fields leave the file value
// in place.
type EnvConfig struct {
	// Env: CALRANGE_WEEK_START_DAY
	WeekStartDay string `envconfig:"WEEK_START_DAY"`

	// Env: CALRANGE_TIMEZONE
	Timezone string `envconfig:"TIMEZONE"`

	// Env: CALRANGE_OUTPUT_FORMAT
	OutputFormat string `envconfig:"OUTPUT_FORMAT"`

	// Env: CALRANGE_LOG_LEVEL
	LogLevel string `envconfig:"LOG_LEVEL"`

	// Env: CALRANGE_THEME
	Theme string `envconfig:"THEME"`
}

// LoadFromEnv reads the CALRANGE_* variables.
func LoadFromEnv() (EnvConfig, error) {
	var env EnvConfig
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return EnvConfig{}, err
	}
	return env, nil
}

// Apply returns cfg with every non-empty override set, normalized.
func (e EnvConfig) Apply(cfg Config) Config {
	if e.WeekStartDay != "" {
		cfg.WeekStartDay = e.WeekStartDay
	}
	if e.Timezone != "" {
		cfg.Timezone = e.Timezone
	}
	if e.OutputFormat != "" {
		cfg.DefaultOutputFormat = e.OutputFormat
	}
	if e.LogLevel != "" {
		cfg.LogLevel = e.LogLevel
	}
	if e.Theme != "" {
		cfg.Theme = e.Theme
	}
	cfg.Normalize()
	return cfg
}

// LoadWithEnv is LoadOrDefault followed by the environment overrides. The
// merged result is validated again so a bad variable is reported.
func LoadWithEnv(path string) (Config, error) {
	cfg, err := LoadOrDefault(path)
	if err != nil {
		return Config{}, err
	}

	env, err := LoadFromEnv()
	if err != nil {
		return Config{}, err
	}

	cfg = env.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
