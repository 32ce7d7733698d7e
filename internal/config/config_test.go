package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"checkers/internal/checkers"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestSetupDefaults(t *testing.T) {
	cfg, err := Setup("")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if cfg.StartingColor() != checkers.Red {
		t.Fatalf("starting = %s, want Red", cfg.StartingColor())
	}
	if cfg.LogLevel != "warn" || cfg.LogOutput != "stderr" || cfg.SelfplayMaxPlies != 200 {
		t.Fatalf("defaults = %+v", cfg)
	}
	b, err := cfg.InitialBoard()
	if err != nil {
		t.Fatalf("initial board: %v", err)
	}
	if b.CountPieces(checkers.Red) != 12 || b.CountPieces(checkers.Black) != 12 {
		t.Fatal("default board should be the standard setup")
	}
}

func TestSetupFromDotEnvFile(t *testing.T) {
	path := writeFile(t, ".env", "STARTING_PLAYER=black\nPOSITION=8/8/8/8/8/4r3/8/b7\nSELFPLAY_MAX_PLIES=50\n")

	cfg, err := Setup(path)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if cfg.StartingColor() != checkers.Black {
		t.Fatalf("starting = %s, want Black", cfg.StartingColor())
	}
	if cfg.SelfplayMaxPlies != 50 {
		t.Fatalf("max plies = %d", cfg.SelfplayMaxPlies)
	}
	b, err := cfg.InitialBoard()
	if err != nil {
		t.Fatalf("initial board: %v", err)
	}
	if b.CountPieces(checkers.Red) != 1 || b.CountPieces(checkers.Black) != 1 {
		t.Fatalf("board = %s", checkers.EncodeBoard(b))
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeFile(t, "checkers.yaml", "STARTING_PLAYER: black\nLOG_LEVEL: info\n")
	t.Setenv("CHECKERS_STARTING_PLAYER", "red")

	cfg, err := Setup(path)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if cfg.StartingColor() != checkers.Red {
		t.Fatalf("starting = %s, want Red from env", cfg.StartingColor())
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level = %s, want info from file", cfg.LogLevel)
	}
}

func TestSetupRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{"player", "CHECKERS_STARTING_PLAYER", "green"},
		{"position", "CHECKERS_POSITION", "8/8/8"},
		{"level", "CHECKERS_LOG_LEVEL", "loud"},
		{"plies", "CHECKERS_SELFPLAY_MAX_PLIES", "0"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.val)
			if _, err := Setup(""); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestSetupMissingFile(t *testing.T) {
	if _, err := Setup(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{LogLevel: "debug", LogOutput: filepath.Join(t.TempDir(), "checkers.log")}
	log, err := NewLogger(cfg)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	log.Infow("hello", "k", "v")
	_ = log.Sync()

	data, err := os.ReadFile(cfg.LogOutput)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("log file is empty")
	}
}
