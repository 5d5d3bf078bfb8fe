package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees files the test creates.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	isolate(t)

	cfg, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter() error = %v", err)
	}
	if cfg != DefaultShooterConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultShooterConfig() %+v", cfg, DefaultShooterConfig())
	}
}

func TestLoadShooterCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
pools:
  bullets: 3
timing:
  frame_delay: 50ms
`)

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() error = %v", err)
	}
	if cfg.Pools.Bullets != 3 {
		t.Errorf("Pools.Bullets = %d, expected 3", cfg.Pools.Bullets)
	}
	if cfg.Timing.FrameDelay != 50*time.Millisecond {
		t.Errorf("Timing.FrameDelay = %s, expected 50ms", cfg.Timing.FrameDelay)
	}
	// Keys absent from the file keep their defaults
	if cfg.Pools.Enemies != 20 {
		t.Errorf("Pools.Enemies = %d, expected default 20", cfg.Pools.Enemies)
	}
	if cfg.Spawn.InitialRate != 12 {
		t.Errorf("Spawn.InitialRate = %d, expected default 12", cfg.Spawn.InitialRate)
	}
}

func TestLoadShooterCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadShooter(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "pools: [not, a, map]\n")
	if _, err := LoadShooter(bad); err == nil {
		t.Error("unparsable custom file should be an error")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	writeFile(t, invalid, "player:\n  lives: 0\n")
	_, err := LoadShooter(invalid)
	if err == nil {
		t.Fatal("invalid custom file should fail validation")
	}
	if !strings.Contains(err.Error(), "player.lives") {
		t.Errorf("error %q should name player.lives", err)
	}
}

func TestLoadShooterSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "shooter.yaml"), "player:\n  lives: 4\n")
	cfg, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter() error = %v", err)
	}
	if cfg.Player.Lives != 4 {
		t.Errorf("local config: Player.Lives = %d, expected 4", cfg.Player.Lives)
	}

	// User config wins over the local directory
	writeFile(t, filepath.Join(home, ".shooter", "configs", "shooter.yaml"), "player:\n  lives: 5\n")
	cfg, err = LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter() error = %v", err)
	}
	if cfg.Player.Lives != 5 {
		t.Errorf("user config: Player.Lives = %d, expected 5", cfg.Player.Lives)
	}
}

func TestLoadShooterSkipsBrokenUserConfig(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(home, ".shooter", "configs", "shooter.yaml"), "player: [\n")
	writeFile(t, filepath.Join(work, "configs", "shooter.yaml"), "player:\n  lives: 7\n")

	cfg, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter() error = %v", err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("Player.Lives = %d, expected 7 from local config", cfg.Player.Lives)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	isolate(t)
	data, err := Marshal(DefaultShooterConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "frame_delay: 80ms") {
		t.Errorf("marshaled config should spell the delay as a duration:\n%s", data)
	}

	path := filepath.Join(t.TempDir(), "dump.yaml")
	writeFile(t, path, string(data))
	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() error = %v", err)
	}
	if cfg != DefaultShooterConfig() {
		t.Errorf("reloaded config %+v differs from defaults", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
		field  string
	}{
		{"zero lives", func(c *ShooterConfig) { c.Player.Lives = 0 }, "player.lives"},
		{"no bullets", func(c *ShooterConfig) { c.Pools.Bullets = 0 }, "pools.bullets"},
		{"no enemies", func(c *ShooterConfig) { c.Pools.Enemies = -1 }, "pools.enemies"},
		{"zero floor", func(c *ShooterConfig) { c.Spawn.MinRate = 0 }, "spawn.min_rate"},
		{"floor above start", func(c *ShooterConfig) { c.Spawn.MinRate = 20 }, "spawn.initial_rate"},
		{"zero ramp", func(c *ShooterConfig) { c.Spawn.RampEvery = 0 }, "spawn.ramp_every"},
		{"zero cadence", func(c *ShooterConfig) { c.Enemies.MoveEvery = 0 }, "enemies.move_every"},
		{"negative reward", func(c *ShooterConfig) { c.Scoring.KillReward = -10 }, "scoring.kill_reward"},
		{"chance above one", func(c *ShooterConfig) { c.Scoring.BonusLifeChance = 1.5 }, "scoring.bonus_life_chance"},
		{"zero delay", func(c *ShooterConfig) { c.Timing.FrameDelay = 0 }, "timing.frame_delay"},
	}

	if err := DefaultShooterConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %s", err, tc.field)
			}
		})
	}
}
