package shooter

// advanceBullets moves every bullet up one row and releases bullets that
// have left the top of the field.
func (g *Game) advanceBullets() {
	for h, b := range g.bullets.All() {
		b.Pos.Y--
		if b.Pos.Y < TopRow {
			g.bullets.Release(h)
		}
	}
}

// advanceEnemies moves enemies down one row on frames that are a multiple
// of the move cadence (every other frame by default), so enemies fall at
// half bullet speed. An enemy reaching BreachRow is released and costs a
// life. If that was the last life the run ends and the remaining enemies
// are left where they are.
func (g *Game) advanceEnemies() {
	descend := g.frame%g.cfg.Enemies.MoveEvery == 0

	for h, e := range g.enemies.All() {
		if descend {
			e.Pos.Y++
		}
		if e.Pos.Y >= BreachRow {
			g.enemies.Release(h)
			g.breaches++
			if g.loseLife() {
				return
			}
		}
	}
}
