package core

import "time"

// RuntimeConfig contains settings the platform passes to a game at reset.
type RuntimeConfig struct {
	FrameDelay time.Duration // Minimum duration of one tick (pacing)
	Seed       int64         // RNG seed; 0 means seed from the clock
}

// DefaultFrameDelay paces the loop at roughly 12.5 ticks per second.
const DefaultFrameDelay = 80 * time.Millisecond

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FrameDelay: DefaultFrameDelay,
		Seed:       0, // 0 means use current time in platform layer
	}
}

// Phase is the state of a run.
// PhaseGameOver and PhaseQuit are terminal: once entered, Step does nothing.
type Phase int

const (
	PhasePlaying  Phase = iota // Simulation advancing every tick
	PhaseGameOver              // Lives depleted
	PhaseQuit                  // Player asked to quit
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further ticks may run in this phase.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseQuit
}

// GameState is the externally visible state of a run.
type GameState struct {
	Score int   // Current score
	Lives int   // Remaining lives
	Frame int   // Completed ticks
	Phase Phase // Current phase
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
}
