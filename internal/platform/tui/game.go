package tui

import (
	"github.com/vovakirdan/console-shooter/internal/core"
	"github.com/vovakirdan/console-shooter/internal/games/shooter"
)

// Game is what the platform drives once per tick.
// Implementations hold pure logic with no terminal dependencies.
type Game interface {
	// ID returns a short identifier used in logs.
	ID() string

	// Title returns a human-readable name for the title screen.
	Title() string

	// Size returns the fixed playfield dimensions in cells.
	Size() (width, height int)

	// Reset starts a new run with the given seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick, reading at most one
	// action from in.
	Step(in core.InputSource) core.StepResult

	// Render rebuilds the frame in dst.
	Render(dst *core.Screen)

	// State returns the current score, lives, frame and phase.
	State() core.GameState
}

// snapshotter is implemented by games that can dump their full state for
// debug logging.
type snapshotter interface {
	Snapshot() shooter.Snapshot
}

var _ Game = (*shooter.Game)(nil)
