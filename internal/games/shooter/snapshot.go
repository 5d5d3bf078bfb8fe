package shooter

// Snapshot contains the complete visible run state.
// Uses primitive types only for stable logging and comparison.
type Snapshot struct {
	Frame     int
	Score     int
	Lives     int
	Phase     string
	SpawnRate int
	PlayerX   int
	Kills     int
	Breaches  int

	// Active entities in slot order, flattened as X, Y pairs
	Bullets []int
	Enemies []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Frame:     g.frame,
		Score:     g.score,
		Lives:     g.lives,
		Phase:     g.phase.String(),
		SpawnRate: g.spawner.Rate(),
		PlayerX:   g.player.Pos.X,
		Kills:     g.kills,
		Breaches:  g.breaches,
		Bullets:   make([]int, 0, g.bullets.Cap()*2),
		Enemies:   make([]int, 0, g.enemies.Cap()*2),
	}

	for _, b := range g.bullets.All() {
		s.Bullets = append(s.Bullets, b.Pos.X, b.Pos.Y)
	}
	for _, e := range g.enemies.All() {
		s.Enemies = append(s.Enemies, e.Pos.X, e.Pos.Y)
	}
	return s
}
