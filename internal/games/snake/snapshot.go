package snake

import (
	"time"

	"github.com/vovakirdan/brickgame/internal/core"
)

// Cell codes used in the projected field.
const (
	CellApple core.Cell = 2
	CellSnake core.Cell = 3
)

// Snapshot captures the engine state by value.
type Snapshot struct {
	Body      []core.Point // Head first
	Apple     core.Point
	Direction Direction
	Score     int
	HighScore int
	LastScore int // Score of the most recently finished round
	Level     int
	Interval  time.Duration // Leveled base interval
	SpeedUp   bool
	Status    Status
}

// Snapshot returns the current engine state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Body:      g.snake.Body(),
		Apple:     g.apple.Pos,
		Direction: g.snake.Direction(),
		Score:     g.score,
		HighScore: g.highScore,
		LastScore: g.lastScore,
		Level:     g.level,
		Interval:  g.timer.Base(),
		SpeedUp:   g.timer.Boosted(),
		Status:    g.status,
	}
}

// Field projects the body and the apple onto an empty grid.
func (s Snapshot) Field() core.Grid {
	var field core.Grid
	for _, seg := range s.Body {
		field.Set(seg.X, seg.Y, CellSnake)
	}
	field.Set(s.Apple.X, s.Apple.Y, CellApple)
	return field
}

// Frame converts the snapshot into the renderer view.
func (s Snapshot) Frame() core.Frame {
	return core.Frame{
		Field:     s.Field(),
		Score:     s.Score,
		HighScore: s.HighScore,
		Level:     s.Level,
		Speed:     int(s.Interval / time.Millisecond),
		Status:    s.Status.String(),
		LastScore: s.LastScore,
		Paused:    s.Status == StatusPaused,
		Over:      s.Status == StatusGameOver,
		Won:       s.Status == StatusWin,
		Exit:      s.Status == StatusExit,
	}
}
