package tetris

import "github.com/vovakirdan/brickgame/internal/core"

// Snapshot is a copy of the engine state. Field excludes the live piece,
// which is reported separately through Current.
type Snapshot struct {
	Field     core.Grid
	Current   Piece
	Next      Piece
	Score     int
	HighScore int
	LastScore int // Score of the round that ended most recently
	Level     int
	Speed     int
	Status    Status
	TicksLeft int
}

// Snapshot returns the current engine state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Field:     g.field,
		Current:   g.current,
		Next:      g.next,
		Score:     g.score,
		HighScore: g.highScore,
		LastScore: g.lastScore,
		Level:     g.level,
		Speed:     g.speed,
		Status:    g.status,
		TicksLeft: g.ticksLeft,
	}
}

// Composite returns the field with the live piece stamped in.
func (s Snapshot) Composite() core.Grid {
	field := s.Field
	if s.Status != StatusGameOver && s.Status != StatusReset {
		s.Current.StampInto(&field)
	}
	return field
}

// Frame converts the snapshot into the renderer view.
func (s Snapshot) Frame() core.Frame {
	next := s.Next.Pattern
	return core.Frame{
		Field:     s.Composite(),
		Next:      &next,
		Score:     s.Score,
		HighScore: s.HighScore,
		Level:     s.Level,
		Speed:     s.Speed,
		Status:    s.Status.String(),
		Paused:    s.Status == StatusPause,
		Over:      s.Status == StatusGameOver,
		Exit:      s.Status == StatusTerminated,
		LastScore: s.LastScore,
	}
}
