// Package snake implements the grid snake engine. Moves are gated by a
// wall-clock interval; the owner polls Update at its own cadence.
package snake

import (
	"errors"
	"time"

	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/policy"
)

// Status is the engine lifecycle state.
type Status int

const (
	StatusPaused Status = iota
	StatusRunning
	StatusGameOver
	StatusWin
	StatusExit
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPaused:
		return "Paused"
	case StatusRunning:
		return "Running"
	case StatusGameOver:
		return "GameOver"
	case StatusWin:
		return "Win"
	case StatusExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Game is the snake engine.
type Game struct {
	snake     *Snake
	apple     *Apple
	timer     *Timer
	score     int
	highScore int
	lastScore int
	level     int
	status    Status

	scores core.ScoreKeeper
}

// New creates a paused session with the high score read from scores.
// Apple positions come from rng and move timing from now.
func New(scores core.ScoreKeeper, rng core.Source, now func() time.Time) *Game {
	if scores == nil {
		scores = core.NopKeeper{}
	}
	if rng == nil {
		rng = core.NewSource(0)
	}

	g := &Game{
		apple:  NewApple(rng),
		timer:  NewTimer(now),
		scores: scores,
	}
	g.highScore = max(0, scores.Load())
	g.resetSession()
	g.status = StatusPaused
	return g
}

// Status returns the current lifecycle state.
func (g *Game) Status() Status {
	return g.status
}

// resetSession rebuilds the snake and apple and restores the level 1 pace.
func (g *Game) resetSession() {
	g.snake = NewSnake()
	// A fresh board always has free cells.
	_ = g.apple.Spawn(g.snake.Occupies)
	g.score = 0
	g.level = 1
	g.timer.Reset()
}

// Dispatch applies one input immediately.
func (g *Game) Dispatch(in core.Input) {
	switch in.Action {
	case core.ActionStart:
		if g.status == StatusWin {
			g.resetSession()
		}
		g.status = StatusRunning
		g.timer.Start()
	case core.ActionPause:
		if g.status == StatusGameOver || g.status == StatusWin {
			return
		}
		g.status = StatusPaused
		g.timer.Stop()
	case core.ActionTerminate:
		g.status = StatusExit
		g.timer.Stop()
	case core.ActionLeft:
		g.snake.ChangeDirection(DirLeft)
	case core.ActionRight:
		g.snake.ChangeDirection(DirRight)
	case core.ActionUp:
		g.snake.ChangeDirection(DirUp)
	case core.ActionDown:
		g.snake.ChangeDirection(DirDown)
	case core.ActionAction:
		g.timer.Boost(in.Hold)
	}
}

// Update moves the snake when running and an interval has elapsed.
func (g *Game) Update() {
	if g.status == StatusRunning && g.timer.Due() {
		g.move()
	}
}

// Step dispatches in and then updates.
func (g *Game) Step(in core.Input) {
	g.Dispatch(in)
	g.Update()
}

func (g *Game) move() {
	g.snake.Move()
	head := g.snake.Head()

	if !(core.Grid{}).InBounds(head.X, head.Y) || g.snake.HitsSelf() {
		g.finish(StatusGameOver)
		return
	}
	if head == g.apple.Pos {
		g.eat()
	}
}

func (g *Game) eat() {
	g.snake.Grow()
	g.score++
	if g.score > g.highScore {
		g.highScore = g.score
	}

	if policy.SnakeLevelUp(g.score, g.level) {
		g.level++
		g.timer.SetBase(policy.SnakeInterval(g.level))
	}

	if g.snake.Len() >= policy.SnakeWinLength {
		g.finish(StatusWin)
		return
	}
	if err := g.apple.Spawn(g.snake.Occupies); errors.Is(err, ErrBoardFull) {
		g.finish(StatusWin)
	}
}

// finish ends the round. A loss resets the session at once so the next
// Start plays a fresh round; a win keeps the final board on display.
func (g *Game) finish(outcome Status) {
	g.timer.Stop()
	g.lastScore = g.score
	if g.score > g.highScore {
		g.highScore = g.score
	}
	g.scores.Save(g.highScore)

	if outcome == StatusGameOver {
		g.resetSession()
	}
	g.status = outcome
}
