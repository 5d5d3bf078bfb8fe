package config

import "fmt"

// SpawnRamp defines how the enemy spawn interval tightens over a run.
// The rate is the number of frames between spawn attempts; it starts at
// InitialRate and loses one every RampEvery frames until it reaches MinRate.
type SpawnRamp struct {
	InitialRate int `yaml:"initial_rate"`
	MinRate     int `yaml:"min_rate"`
	RampEvery   int `yaml:"ramp_every"`
}

// Due reports whether a spawn attempt happens on this frame.
func (r SpawnRamp) Due(rate, frame int) bool {
	if rate <= 0 {
		return false
	}
	return frame%rate == 0
}

// Next returns the rate to use after this frame.
// It only ever decreases, only on multiples of RampEvery, and never
// below MinRate.
func (r SpawnRamp) Next(rate, frame int) int {
	if r.RampEvery <= 0 || frame%r.RampEvery != 0 {
		return rate
	}
	if rate > r.MinRate {
		return rate - 1
	}
	return rate
}

// Validate checks that the ramp is usable.
func (r SpawnRamp) Validate() error {
	if r.MinRate <= 0 {
		return fmt.Errorf("spawn.min_rate must be positive, got %d", r.MinRate)
	}
	if r.InitialRate < r.MinRate {
		return fmt.Errorf("spawn.initial_rate (%d) must not be below spawn.min_rate (%d)", r.InitialRate, r.MinRate)
	}
	if r.RampEvery <= 0 {
		return fmt.Errorf("spawn.ramp_every must be positive, got %d", r.RampEvery)
	}
	return nil
}
