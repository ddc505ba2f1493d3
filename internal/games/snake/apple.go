package snake

import (
	"errors"

	"github.com/vovakirdan/brickgame/internal/core"
)

// ErrBoardFull is returned when no free cell is left for the apple.
var ErrBoardFull = errors.New("snake: no free cell for the apple")

// spawnAttempts bounds uniform sampling before falling back to a scan.
const spawnAttempts = 4 * core.FieldWidth * core.FieldHeight

// Apple is the single food item.
type Apple struct {
	Pos core.Point
	rng core.Source
}

// NewApple creates an apple drawing positions from rng.
func NewApple(rng core.Source) *Apple {
	return &Apple{rng: rng}
}

// Spawn moves the apple to a uniformly chosen cell for which occupied is
// false. The position is left unchanged on ErrBoardFull.
func (a *Apple) Spawn(occupied func(core.Point) bool) error {
	for range spawnAttempts {
		p := core.Point{X: a.rng.Intn(core.FieldWidth), Y: a.rng.Intn(core.FieldHeight)}
		if !occupied(p) {
			a.Pos = p
			return nil
		}
	}

	var free []core.Point
	for y := 0; y < core.FieldHeight; y++ {
		for x := 0; x < core.FieldWidth; x++ {
			p := core.Point{X: x, Y: y}
			if !occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return ErrBoardFull
	}
	a.Pos = free[a.rng.Intn(len(free))]
	return nil
}
