package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player: ShooterPlayer{
			Lives: 3,
		},
		Pools: ShooterPools{
			Bullets: 8,
			Enemies: 20,
		},
		Spawn: SpawnRamp{
			InitialRate: 12,
			MinRate:     4,
			RampEvery:   200,
		},
		Enemies: ShooterEnemies{
			MoveEvery: 2,
		},
		Scoring: ShooterScoring{
			KillReward:      10,
			BonusLifeChance: 0.01,
		},
		Timing: ShooterTiming{
			FrameDelay: 80 * time.Millisecond,
		},
	}
}

// DefaultShooterYAML returns the embedded default YAML.
func DefaultShooterYAML() []byte {
	return defaultShooterYAML
}
