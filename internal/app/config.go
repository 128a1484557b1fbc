package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"bluechips/internal/logging"
)

// Config holds runtime options, loaded from YAML and the environment.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Split   SplitConfig   `yaml:"split"`
}

// ServerConfig configures the HTTP daemon.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	Metrics         bool          `yaml:"metrics"`
}

// LoggingConfig selects the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// SplitConfig tunes how results are rendered.
type SplitConfig struct {
	// IndeterminateMarker replaces NaN/Infinity output when non-empty.
	IndeterminateMarker string `yaml:"indeterminate_marker"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			Metrics:         true,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver is Load with caller-supplied defaults in base, which is modified
// and returned. The file and environment still take precedence over base.
func LoadOver(path string, base *Config) (*Config, error) {
	cfg := base
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, cfg.Validate()
}

// applyEnvOverrides applies BLUECHIPS_* environment variables.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("BLUECHIPS_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("BLUECHIPS_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v, ok := os.LookupEnv("BLUECHIPS_MARKER"); ok {
		c.Split.IndeterminateMarker = v
	}
}

// Validate reports configuration that cannot be used.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	if c.Server.ShutdownTimeout < 0 {
		return errors.New("server.shutdown_timeout must not be negative")
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}
