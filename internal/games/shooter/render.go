package shooter

import (
	"fmt"

	"github.com/vovakirdan/console-shooter/internal/core"
)

// Render rebuilds the whole frame from the current state.
// Nothing carries over from the previous frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Top border and horizon
	dst.DrawHLine(0, TopRow, dst.Width(), HorizonChar)
	dst.DrawHLine(0, PlayerRow, dst.Width(), HorizonChar)

	for _, e := range g.enemies.All() {
		dst.Set(e.Pos.X, e.Pos.Y, EnemyChar)
	}

	// Bullets draw over enemies
	for _, b := range g.bullets.All() {
		dst.Set(b.Pos.X, b.Pos.Y, BulletChar)
	}

	dst.Set(g.player.Pos.X, g.player.Pos.Y, PlayerChar)

	// HUD, clipped to the row width
	dst.DrawText(0, HUDRow, g.statusLine())
}

// statusLine returns the HUD text for the bottom row.
func (g *Game) statusLine() string {
	return fmt.Sprintf(" Score: %d   Lives: %d   (a/d to move, space to shoot, q to quit) ", g.score, g.lives)
}
