package logging_test

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"bluechips/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	log, err := logging.New(logging.Options{Level: "warn"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info should be disabled at warn")
	}
	if !log.Core().Enabled(zapcore.WarnLevel) {
		t.Fatal("warn should be enabled")
	}

	dev, err := logging.New(logging.Options{Level: "debug", Development: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !dev.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug should be enabled")
	}
}

func TestParseLevel(t *testing.T) {
	if lvl, err := logging.ParseLevel(""); err != nil || lvl != zapcore.InfoLevel {
		t.Fatalf("empty level: got %v, %v", lvl, err)
	}
	if _, err := logging.ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
