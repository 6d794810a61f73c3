package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var configKeys = []string{
	"SERVER_HOST", "SERVER_PORT", "SESSION_ID",
	"MONGO_ADDRESS", "MONGO_DATABASE", "MONGO_COLLECTION",
	"STOCKFISH_PATH", "STOCKFISH_ARGS", "STOCKFISH_DEPTH",
	"LOG_LEVEL", "LOG_PRETTY",
}

// clearEnv unsets every configuration variable for the duration of the test.
// An empty but set variable would override the default tag.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatal(err)
		}
	}
}

func TestInitConfig_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := InitConfig()
	if err != nil {
		t.Fatalf("InitConfig() error: %v", err)
	}
	if got := cfg.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8080", got)
	}
	if cfg.Database.Address != "" {
		t.Errorf("Database.Address = %q, want empty", cfg.Database.Address)
	}
	if cfg.Database.Collection != "moves" {
		t.Errorf("Database.Collection = %q, want moves", cfg.Database.Collection)
	}
	if cfg.Stockfish.Depth != 12 {
		t.Errorf("Stockfish.Depth = %d, want 12", cfg.Stockfish.Depth)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestInitConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MONGO_ADDRESS", "mongodb://localhost:27017")
	t.Setenv("STOCKFISH_PATH", "/usr/bin/stockfish")
	t.Setenv("STOCKFISH_ARGS", "-a,-b")
	t.Setenv("SESSION_ID", "club")

	cfg, err := InitConfig()
	if err != nil {
		t.Fatalf("InitConfig() error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Address != "mongodb://localhost:27017" {
		t.Errorf("Database.Address = %q", cfg.Database.Address)
	}
	if cfg.Session.ID != "club" {
		t.Errorf("Session.ID = %q, want club", cfg.Session.ID)
	}
	if diff := cmp.Diff([]string{"-a", "-b"}, cfg.Stockfish.Args); diff != "" {
		t.Errorf("Stockfish.Args mismatch (-want +got):\n%s", diff)
	}
}

func TestInitConfig_RejectsDepth(t *testing.T) {
	clearEnv(t)
	t.Setenv("STOCKFISH_DEPTH", "0")
	if _, err := InitConfig(); err == nil {
		t.Error("InitConfig() succeeded with STOCKFISH_DEPTH=0")
	}
}

func TestInitReplayConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	cfg, err := InitReplayConfig()
	if err != nil {
		t.Fatalf("InitReplayConfig() error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}
