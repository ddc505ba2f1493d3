// Package tetris implements the falling-block engine: a countdown-driven
// state machine over a 10x20 field with a current and a next piece.
// The engine never sleeps or blocks; its owner calls Step at its own cadence.
package tetris

import (
	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/policy"
)

// Status is the engine lifecycle state.
type Status int

const (
	// StatusStart is the fresh-session state. The piece already falls.
	StatusStart Status = iota
	StatusPause
	StatusGameOver
	// StatusReset asks the owner to discard the engine and build a new one.
	StatusReset
	StatusPlaying
	StatusTerminated
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusStart:
		return "Start"
	case StatusPause:
		return "Pause"
	case StatusGameOver:
		return "GameOver"
	case StatusReset:
		return "Reset"
	case StatusPlaying:
		return "Playing"
	case StatusTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// Active reports whether pieces fall and gameplay actions apply.
func (s Status) Active() bool {
	return s == StatusStart || s == StatusPlaying
}

// Game is the falling-block engine.
type Game struct {
	field     core.Grid
	current   Piece
	next      Piece
	score     int
	highScore int
	lastScore int
	level     int
	speed     int
	status    Status
	pending   core.Action
	ticksLeft int

	scores core.ScoreKeeper
	rng    core.Source
}

// New creates a session in StatusStart with the high score read from
// scores and the first piece pair drawn from rng.
func New(scores core.ScoreKeeper, rng core.Source) *Game {
	if scores == nil {
		scores = core.NopKeeper{}
	}
	if rng == nil {
		rng = core.NewSource(0)
	}

	g := &Game{
		level:     1,
		status:    StatusStart,
		ticksLeft: policy.TetrisTicks,
		scores:    scores,
		rng:       rng,
	}
	g.speed = policy.TetrisSpeed(g.level)
	g.highScore = max(0, scores.Load())
	g.current = RandomPiece(rng, SpawnX, SpawnY)
	g.next = RandomPiece(rng, SpawnX, SpawnY)
	return g
}

// Status returns the current lifecycle state.
func (g *Game) Status() Status {
	return g.status
}

// Dispatch queues a for the next Tick. A later Dispatch before the Tick
// replaces it, so at most one action is consumed per tick.
func (g *Game) Dispatch(a core.Action) {
	g.pending = a
}

// Tick advances the countdown, descends the piece when it expires, then
// applies the pending action.
func (g *Game) Tick() {
	a := g.pending
	g.pending = core.ActionIdle

	if g.status.Active() {
		g.ticksLeft--
		if g.ticksLeft <= 0 {
			g.ticksLeft = policy.TetrisTicks
			g.descend()
		}
	}

	g.apply(a)
}

// Step dispatches a and advances one tick.
func (g *Game) Step(a core.Action) {
	g.Dispatch(a)
	g.Tick()
}

func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionPause:
		g.pause()
	case core.ActionStart:
		g.start()
	case core.ActionTerminate:
		g.status = StatusTerminated
	}

	if !a.Gameplay() || !g.status.Active() {
		return
	}

	switch a {
	case core.ActionLeft:
		g.try(g.current.Moved(-1, 0))
	case core.ActionRight:
		g.try(g.current.Moved(1, 0))
	case core.ActionUp:
		g.rotate()
	case core.ActionDown:
		g.try(g.current.Moved(0, 1))
	case core.ActionAction:
		g.hardDrop()
	}
}

// pause applies from any state except Terminated, GameOver included.
func (g *Game) pause() {
	if g.status == StatusTerminated {
		return
	}
	g.status = StatusPause
}

func (g *Game) start() {
	switch g.status {
	case StatusGameOver:
		g.status = StatusReset
	case StatusReset, StatusTerminated:
	default:
		g.status = StatusPlaying
	}
}

// try commits candidate when it fits.
func (g *Game) try(candidate Piece) bool {
	if candidate.Collides(g.field) {
		return false
	}
	g.current = candidate
	return true
}

// kicks are the anchor offsets tried, in order, when a rotation collides.
var kicks = [...]int{-1, -2, 3, 1}

func (g *Game) rotate() {
	rotated := g.current.Rotated()
	if g.try(rotated) {
		return
	}
	for _, dx := range kicks {
		if g.try(rotated.Moved(dx, 0)) {
			return
		}
	}
}

// descend moves the piece one row down, locking it when blocked.
func (g *Game) descend() {
	if !g.try(g.current.Moved(0, 1)) {
		g.lock()
	}
}

func (g *Game) hardDrop() {
	for g.try(g.current.Moved(0, 1)) {
	}
	g.lock()
}
