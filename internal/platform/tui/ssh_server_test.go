package tui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/console-shooter/internal/config"
	"github.com/vovakirdan/console-shooter/internal/games/shooter"
)

func newTestServer(t *testing.T, cfg SSHServerConfig) *SSHServer {
	t.Helper()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, func() Game {
		return shooter.New(config.DefaultShooterConfig())
	})
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}
	return srv
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.LogLevel = log.DebugLevel
	srv := newTestServer(t, cfg)

	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if srv.logger.GetLevel() != log.DebugLevel {
		t.Errorf("log level = %v, expected debug", srv.logger.GetLevel())
	}
	if srv.newGame().Title() != "Console Shooter" {
		t.Error("newGame should build the shooter")
	}
}

func TestSessionConfig(t *testing.T) {
	tests := []struct {
		name  string
		seed  int64
		fixed bool
	}{
		{"fixed seed shared by sessions", 42, true},
		{"zero seed from the clock", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSSHServerConfig()
			cfg.Seed = tt.seed
			cfg.FrameDelay = 50 * time.Millisecond
			srv := newTestServer(t, cfg)

			got := srv.sessionConfig()
			if got.FrameDelay != cfg.FrameDelay {
				t.Errorf("FrameDelay = %v, expected %v", got.FrameDelay, cfg.FrameDelay)
			}
			if got.Seed == 0 {
				t.Fatal("session seed must never be zero")
			}
			if tt.fixed && got.Seed != tt.seed {
				t.Errorf("Seed = %d, expected %d", got.Seed, tt.seed)
			}
		})
	}
}
