package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"roomkey/internal/store"
)

// DefaultTarget is the token searched for when none is given.
const DefaultTarget = "north"

// Environment variables consulted by applyEnvOverrides.
const (
	EnvInput    = "ROOMKEY_INPUT"
	EnvTarget   = "ROOMKEY_TARGET"
	EnvLogLevel = "ROOMKEY_LOG_LEVEL"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Input   string        `yaml:"input"`  // input path, "-" for stdin
	Target  string        `yaml:"target"` // substring searched by find
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	File   string `yaml:"file"`   // log file; stderr when empty
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input:  store.StdinPath,
		Target: DefaultTarget,
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// LoadConfig reads a YAML config from path on top of the defaults and then
// applies environment overrides. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("config file not found: %s", path)
			}
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets ROOMKEY_* variables replace file settings.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvInput); v != "" {
		c.Input = v
	}
	if v := os.Getenv(EnvTarget); v != "" {
		c.Target = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Target == "" {
		return errors.New("config: target must not be empty")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("config: unknown logging format %q", c.Logging.Format)
	}
	return nil
}
