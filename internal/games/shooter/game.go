// Package shooter implements a single-player arcade shooter on a fixed
// 40x20 character field. The player slides along the baseline firing
// upward; enemies drop from the top and cost a life when they get past.
//
// The package is pure simulation: the platform feeds key codes, calls Step
// once per tick, and asks Render for the frame to display.
package shooter

import (
	"github.com/vovakirdan/console-shooter/internal/config"
	"github.com/vovakirdan/console-shooter/internal/core"
)

// Game implements the shooter's loop controller and owns all run state.
type Game struct {
	cfg     config.ShooterConfig
	runtime core.RuntimeConfig
	rng     Random

	player  Player
	bullets *Pool[Bullet]
	enemies *Pool[Enemy]
	spawner *Spawner

	score    int
	lives    int
	frame    int // Completed ticks; the only clock the simulation reads
	phase    core.Phase
	kills    int
	breaches int
}

// New creates a game with the given configuration.
// Pools are sized here and reused by every Reset.
func New(cfg config.ShooterConfig) *Game {
	g := &Game{
		cfg:     cfg,
		bullets: NewPool[Bullet](cfg.Pools.Bullets),
		enemies: NewPool[Enemy](cfg.Pools.Enemies),
		spawner: NewSpawner(cfg.Spawn, FieldWidth),
	}
	g.Reset(core.RuntimeConfig{FrameDelay: cfg.Timing.FrameDelay})
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Console Shooter"
}

// Size returns the playfield dimensions.
func (g *Game) Size() (width, height int) {
	return FieldWidth, FieldHeight
}

// Reset starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = newRandom(runtime.Seed)

	g.player = Player{Pos: core.Pt(FieldWidth/2, PlayerRow)}
	g.bullets.Clear()
	g.enemies.Clear()
	g.spawner.Reset()

	g.score = 0
	g.lives = g.cfg.Player.Lives
	g.frame = 0
	g.phase = core.PhasePlaying
	g.kills = 0
	g.breaches = 0
}

// Step advances the simulation by one tick:
// input, bullets, spawn, enemies, collisions, then the frame counter.
// A quit action or the last life lost ends the tick early. Once the run
// is over Step does nothing.
func (g *Game) Step(in core.InputSource) core.StepResult {
	if g.phase.Terminal() {
		return core.StepResult{State: g.State()}
	}

	g.handleAction(core.ReadAction(in))
	if g.phase.Terminal() {
		return core.StepResult{State: g.State()}
	}

	g.advanceBullets()
	g.spawner.Update(g.frame, g.enemies, g.rng)

	g.advanceEnemies()
	if g.phase.Terminal() {
		return core.StepResult{State: g.State()}
	}

	g.resolveBulletHits()
	g.resolvePlayerHits()
	if g.phase.Terminal() {
		return core.StepResult{State: g.State()}
	}

	g.frame++
	return core.StepResult{State: g.State()}
}

// handleAction applies one input action.
func (g *Game) handleAction(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.player.Pos.X = core.Clamp(g.player.Pos.X-1, 0, FieldWidth-1)
	case core.ActionRight:
		g.player.Pos.X = core.Clamp(g.player.Pos.X+1, 0, FieldWidth-1)
	case core.ActionFire:
		g.fire()
	case core.ActionQuit:
		g.phase = core.PhaseQuit
	}
}

// fire launches a bullet from just above the player.
// With every bullet slot in flight the shot is dropped.
func (g *Game) fire() {
	h, ok := g.bullets.Acquire()
	if !ok {
		return
	}
	g.bullets.Get(h).Pos = core.Pt(g.player.Pos.X, PlayerRow-1)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Lives: g.lives,
		Frame: g.frame,
		Phase: g.phase,
	}
}
