// Package logging builds the zap loggers used by the CLI and the daemon.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the logger flavour.
type Options struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string
	// Development switches to the human-readable console encoder.
	Development bool
}

// ParseLevel validates a level name. An empty name is info.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log level %q: %w", name, err)
	}
	return lvl, nil
}

// New returns a logger for opts.
func New(opts Options) (*zap.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	if opts.Development {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.DisableStacktrace = !opts.Development
	return config.Build()
}
