package shooter

import "github.com/vovakirdan/console-shooter/internal/core"

// Collisions are exact cell matches, scanned pairwise each tick.

// resolveBulletHits destroys each enemy that shares a cell with a bullet.
// A bullet takes out at most one enemy per tick: the first match in slot
// order. Every kill scores and rolls for a bonus life.
func (g *Game) resolveBulletHits() {
	for bh, b := range g.bullets.All() {
		for eh, e := range g.enemies.All() {
			if b.Pos != e.Pos {
				continue
			}
			g.bullets.Release(bh)
			g.enemies.Release(eh)
			g.score += g.cfg.Scoring.KillReward
			g.kills++
			if g.rng.Float64() < g.cfg.Scoring.BonusLifeChance {
				g.lives++
			}
			break
		}
	}
}

// resolvePlayerHits removes enemies that landed on the player, costing a
// life each. Stops as soon as the run ends.
func (g *Game) resolvePlayerHits() {
	for h, e := range g.enemies.All() {
		if e.Pos != g.player.Pos {
			continue
		}
		g.enemies.Release(h)
		if g.loseLife() {
			return
		}
	}
}

// loseLife takes one life and ends the run when none are left.
// Reports whether the run ended.
func (g *Game) loseLife() bool {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.phase = core.PhaseGameOver
		return true
	}
	return false
}
