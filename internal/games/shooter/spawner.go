package shooter

import (
	"github.com/vovakirdan/console-shooter/internal/config"
	"github.com/vovakirdan/console-shooter/internal/core"
)

// Spawner decides once per frame whether a new enemy enters the field,
// and tightens the spawn interval as frames accumulate.
type Spawner struct {
	ramp  config.SpawnRamp
	rate  int // Current frames between spawn attempts
	width int
}

// NewSpawner creates a spawner starting at the ramp's initial rate.
func NewSpawner(ramp config.SpawnRamp, width int) *Spawner {
	return &Spawner{
		ramp:  ramp,
		rate:  ramp.InitialRate,
		width: width,
	}
}

// Reset restores the initial spawn rate.
func (s *Spawner) Reset() {
	s.rate = s.ramp.InitialRate
}

// Rate returns the current spawn interval in frames.
func (s *Spawner) Rate() int {
	return s.rate
}

// Update runs this frame's spawn attempt and then applies the ramp.
// A spawned enemy starts on the top row at a uniformly random column.
// When the pool is full the attempt is skipped; nothing is queued.
// Returns the new enemy's handle when one was spawned.
func (s *Spawner) Update(frame int, enemies *Pool[Enemy], rng Random) (int, bool) {
	h, spawned := -1, false
	if s.ramp.Due(s.rate, frame) {
		if h, spawned = enemies.Acquire(); spawned {
			enemies.Get(h).Pos = core.Pt(rng.Intn(s.width), TopRow)
		}
	}

	s.rate = s.ramp.Next(s.rate, frame)
	return h, spawned
}
