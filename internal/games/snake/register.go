package snake

import (
	"time"

	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/registry"
)

// DefaultFrame is the owner polling cadence. Move pace is set by the
// engine's own interval, not by this value.
const DefaultFrame = 50 * time.Millisecond

func init() {
	registry.Register("snake", "Snake", func(d registry.Deps) registry.Game {
		return NewSession(d)
	})
}

// Session adapts the engine to registry.Game.
type Session struct {
	engine *Game
	frame  time.Duration
}

// NewSession creates a session around a paused engine.
func NewSession(d registry.Deps) *Session {
	if d.Frame <= 0 {
		d.Frame = DefaultFrame
	}
	return &Session{
		engine: New(d.Scores, d.Rand, d.Now),
		frame:  d.Frame,
	}
}

// ID returns the game identifier.
func (s *Session) ID() string {
	return "snake"
}

// Title returns the display name.
func (s *Session) Title() string {
	return "Snake"
}

// Engine exposes the wrapped engine.
func (s *Session) Engine() *Game {
	return s.engine
}

// Step forwards the input and returns the resulting frame.
func (s *Session) Step(in core.Input) core.Frame {
	s.engine.Step(in)
	return s.engine.Snapshot().Frame()
}

// Cadence returns the polling interval.
func (s *Session) Cadence() time.Duration {
	return s.frame
}
