// Package config loads payroll tracker settings from defaults, an optional
// YAML file and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config defines tracker configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
	Report ReportConfig `yaml:"report"`
}

type StoreConfig struct {
	// Driver selects the session store backend: "memory" or "sqlite".
	Driver string `yaml:"driver"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type ReportConfig struct {
	// Summary prints a grand total line before the report footer.
	Summary bool `yaml:"summary"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Store: StoreConfig{
			Driver: DriverMemory,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("PAYROLL_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if driver := os.Getenv("PAYROLL_STORE_DRIVER"); driver != "" {
		cfg.Store.Driver = driver
	}
	if level := os.Getenv("PAYROLL_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if summary := os.Getenv("PAYROLL_REPORT_SUMMARY"); summary != "" {
		v, err := strconv.ParseBool(summary)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PAYROLL_REPORT_SUMMARY: %w", err)
		}
		cfg.Report.Summary = v
	}

	return cfg, nil
}

// Validate checks driver and log level names.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverSQLite:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level into a zerolog level.
func (c Config) LogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
