package tetris

import (
	"time"

	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/registry"
)

// DefaultFrame is the owner cadence at level 0; each level's speed is
// subtracted from it.
const DefaultFrame = 33 * time.Millisecond

func init() {
	registry.Register("tetris", "Tetris", func(d registry.Deps) registry.Game {
		return NewSession(d)
	})
}

// Session adapts the engine to registry.Game. It rebuilds the engine
// whenever the engine reports StatusReset.
type Session struct {
	engine *Game
	deps   registry.Deps
}

// NewSession creates a session around a fresh engine.
func NewSession(d registry.Deps) *Session {
	if d.Frame <= 0 {
		d.Frame = DefaultFrame
	}
	return &Session{
		engine: New(d.Scores, d.Rand),
		deps:   d,
	}
}

// ID returns the game identifier.
func (s *Session) ID() string {
	return "tetris"
}

// Title returns the display name.
func (s *Session) Title() string {
	return "Tetris"
}

// Engine exposes the current engine.
func (s *Session) Engine() *Game {
	return s.engine
}

// Step forwards the action and returns the resulting frame.
func (s *Session) Step(in core.Input) core.Frame {
	s.engine.Step(in.Action)
	if s.engine.Status() == StatusReset {
		s.engine = New(s.deps.Scores, s.deps.Rand)
	}
	return s.engine.Snapshot().Frame()
}

// Cadence shortens the frame by the current speed.
func (s *Session) Cadence() time.Duration {
	d := s.deps.Frame - time.Duration(s.engine.speed)
	return max(d, time.Millisecond)
}
