package shooter

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/console-shooter/internal/core"
)

// Playfield geometry. The size is fixed.
const (
	FieldWidth  = 40
	FieldHeight = 20
	TopRow      = 0
	PlayerRow   = FieldHeight - 2 // Baseline the player moves along; also the horizon
	BreachRow   = FieldHeight - 1 // An enemy reaching this row has got past the player
	HUDRow      = FieldHeight - 1
)

// Visual characters for rendering
const (
	PlayerChar  = 'A'
	BulletChar  = '|'
	EnemyChar   = 'V'
	HorizonChar = '-'
)

// Player is the unit at the bottom of the field.
// Its row never changes; only X is moved by input.
type Player struct {
	Pos core.Point
}

// Bullet travels up one row per tick.
type Bullet struct {
	Pos core.Point
}

// Enemy descends toward the player's row.
type Enemy struct {
	Pos core.Point
}

// Random is the randomness the simulation consumes: uniform integers for
// spawn columns and a float in [0, 1) for the bonus-life roll.
// *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// newRandom returns a seeded source; seed 0 seeds from the clock.
func newRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
