// Package config provides YAML-based game configuration loading and
// the spawn-rate difficulty ramp for the shooter.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ShooterConfig contains all tunable constants of the shooter.
// The defaults reproduce the classic game. The playfield size is fixed.
type ShooterConfig struct {
	Player  ShooterPlayer  `yaml:"player"`
	Pools   ShooterPools   `yaml:"pools"`
	Spawn   SpawnRamp      `yaml:"spawn"`
	Enemies ShooterEnemies `yaml:"enemies"`
	Scoring ShooterScoring `yaml:"scoring"`
	Timing  ShooterTiming  `yaml:"timing"`
}

// ShooterPlayer defines player parameters.
type ShooterPlayer struct {
	Lives int `yaml:"lives"`
}

// ShooterPools defines entity pool capacities.
type ShooterPools struct {
	Bullets int `yaml:"bullets"`
	Enemies int `yaml:"enemies"`
}

// ShooterEnemies defines enemy movement cadence.
type ShooterEnemies struct {
	MoveEvery int `yaml:"move_every"` // Enemies descend one row every N frames
}

// ShooterScoring defines rewards.
type ShooterScoring struct {
	KillReward      int     `yaml:"kill_reward"`
	BonusLifeChance float64 `yaml:"bonus_life_chance"` // Probability per kill, 0..1
}

// ShooterTiming defines loop pacing.
type ShooterTiming struct {
	FrameDelay time.Duration `yaml:"frame_delay"`
}

// Validate checks the config for values the simulation cannot run with.
// All problems are reported together.
func (c ShooterConfig) Validate() error {
	var errs []error

	if c.Player.Lives <= 0 {
		errs = append(errs, fmt.Errorf("player.lives must be positive, got %d", c.Player.Lives))
	}
	if c.Pools.Bullets <= 0 {
		errs = append(errs, fmt.Errorf("pools.bullets must be positive, got %d", c.Pools.Bullets))
	}
	if c.Pools.Enemies <= 0 {
		errs = append(errs, fmt.Errorf("pools.enemies must be positive, got %d", c.Pools.Enemies))
	}
	if err := c.Spawn.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Enemies.MoveEvery <= 0 {
		errs = append(errs, fmt.Errorf("enemies.move_every must be positive, got %d", c.Enemies.MoveEvery))
	}
	if c.Scoring.KillReward < 0 {
		errs = append(errs, fmt.Errorf("scoring.kill_reward must not be negative, got %d", c.Scoring.KillReward))
	}
	if c.Scoring.BonusLifeChance < 0 || c.Scoring.BonusLifeChance > 1 {
		errs = append(errs, fmt.Errorf("scoring.bonus_life_chance must be within [0, 1], got %g", c.Scoring.BonusLifeChance))
	}
	if c.Timing.FrameDelay <= 0 {
		errs = append(errs, fmt.Errorf("timing.frame_delay must be positive, got %s", c.Timing.FrameDelay))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid shooter config: %w", errors.Join(errs...))
	}
	return nil
}
