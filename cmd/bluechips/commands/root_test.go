package commands

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func runRoot(t *testing.T, args ...string) {
	t.Helper()
	root := NewRoot()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
}

func TestLogLevel_DefaultsToWarn(t *testing.T) {
	runRoot(t, "eval", "1")
	if got := appCtx.Config.Logging.Level; got != "warn" {
		t.Fatalf("want warn, got %q", got)
	}
}

func TestLogLevel_ConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bluechips.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	runRoot(t, "--config", path, "eval", "1")
	if got := appCtx.Config.Logging.Level; got != "debug" {
		t.Fatalf("config file: want debug, got %q", got)
	}

	t.Setenv("BLUECHIPS_LOG_LEVEL", "error")
	runRoot(t, "--config", path, "eval", "1")
	if got := appCtx.Config.Logging.Level; got != "error" {
		t.Fatalf("env: want error, got %q", got)
	}

	runRoot(t, "--config", path, "--log-level", "info", "eval", "1")
	if got := appCtx.Config.Logging.Level; got != "info" {
		t.Fatalf("flag: want info, got %q", got)
	}
}
