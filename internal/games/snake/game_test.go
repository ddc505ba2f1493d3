package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/registry"
)

// newGame returns an engine whose apple spawns at (0, 0) and a clock
// that drives it.
func newGame(t *testing.T) (*Game, *clock, *core.MemoryKeeper) {
	t.Helper()
	c := newClock()
	keeper := core.NewMemoryKeeper(0)
	return New(keeper, &scripted{vals: []int{0}}, c.Now), c, keeper
}

// tick advances the clock by the effective interval and updates once.
func tick(g *Game, c *clock) {
	c.Advance(g.timer.Interval())
	g.Update()
}

func TestNewGame(t *testing.T) {
	g, _, _ := newGame(t)
	snap := g.Snapshot()

	if snap.Status != StatusPaused {
		t.Errorf("status = %v, expected Paused", snap.Status)
	}
	if len(snap.Body) != 4 || snap.Body[0] != (core.Point{X: 5, Y: 10}) {
		t.Errorf("body = %v, expected spawn layout", snap.Body)
	}
	if snap.Direction != DirUp {
		t.Errorf("direction = %v, expected Up", snap.Direction)
	}
	if snap.Level != 1 || snap.Score != 0 {
		t.Errorf("level/score = %d/%d, expected 1/0", snap.Level, snap.Score)
	}
	if snap.Interval != 500*time.Millisecond {
		t.Errorf("interval = %v, expected 500ms", snap.Interval)
	}
	if snap.Apple != (core.Point{X: 0, Y: 0}) {
		t.Errorf("apple = %v, expected (0, 0)", snap.Apple)
	}
}

func TestHighScoreLoaded(t *testing.T) {
	g := New(core.NewMemoryKeeper(42), &scripted{vals: []int{0}}, newClock().Now)
	if g.Snapshot().HighScore != 42 {
		t.Errorf("high score = %d, expected 42", g.Snapshot().HighScore)
	}
}

func TestMoveUpOneTick(t *testing.T) {
	g, c, _ := newGame(t)

	g.Dispatch(core.Press(core.ActionStart))
	g.Dispatch(core.Press(core.ActionUp))
	tick(g, c)

	snap := g.Snapshot()
	if snap.Body[0] != (core.Point{X: 5, Y: 9}) {
		t.Errorf("head = %v, expected (5, 9)", snap.Body[0])
	}
	if len(snap.Body) != 4 {
		t.Errorf("length = %d, expected 4", len(snap.Body))
	}
	if snap.Status != StatusRunning {
		t.Errorf("status = %v, expected Running", snap.Status)
	}
}

func TestNoMoveBeforeInterval(t *testing.T) {
	g, c, _ := newGame(t)
	g.Dispatch(core.Press(core.ActionStart))

	c.Advance(499 * time.Millisecond)
	g.Update()

	if g.snake.Head() != (core.Point{X: 5, Y: 10}) {
		t.Error("snake moved before the interval elapsed")
	}
}

func TestNoMoveWhilePaused(t *testing.T) {
	g, c, _ := newGame(t)

	tick(g, c)
	if g.snake.Head() != (core.Point{X: 5, Y: 10}) {
		t.Fatal("paused snake should not move")
	}

	g.Dispatch(core.Press(core.ActionStart))
	g.Dispatch(core.Press(core.ActionPause))
	tick(g, c)
	if g.snake.Head() != (core.Point{X: 5, Y: 10}) {
		t.Error("snake moved after pause")
	}
}

func TestReverseIsIgnored(t *testing.T) {
	g, c, _ := newGame(t)
	g.Dispatch(core.Press(core.ActionStart))

	g.Step(core.Press(core.ActionDown))
	tick(g, c)

	if g.snake.Head() != (core.Point{X: 5, Y: 9}) {
		t.Errorf("head = %v, expected the upward move", g.snake.Head())
	}
}

func TestWallCollisionEndsRound(t *testing.T) {
	g, c, keeper := newGame(t)
	g.Dispatch(core.Press(core.ActionStart))

	for i := 0; i < 10; i++ {
		tick(g, c)
		if g.Status() != StatusRunning {
			t.Fatalf("round ended early on move %d", i+1)
		}
	}
	if g.snake.Head().Y != 0 {
		t.Fatalf("head y = %d, expected 0", g.snake.Head().Y)
	}

	tick(g, c)

	if g.Status() != StatusGameOver {
		t.Fatalf("status = %v, expected GameOver", g.Status())
	}
	if keeper.Saves() != 1 {
		t.Errorf("high score saved %d times, expected 1", keeper.Saves())
	}
	if g.timer.Running() {
		t.Error("timer should stop on game over")
	}
	snap := g.Snapshot()
	if snap.Body[0] != (core.Point{X: 5, Y: 10}) || snap.Score != 0 || snap.Level != 1 {
		t.Error("game over should reset the session")
	}
}

func TestSelfCollisionEndsRound(t *testing.T) {
	g, c, _ := newGame(t)
	g.Dispatch(core.Press(core.ActionStart))
	g.snake.body = []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6}, {X: 3, Y: 6}, {X: 2, Y: 6}}
	g.snake.current, g.snake.next = DirLeft, DirLeft

	tick(g, c)
	if g.Status() != StatusRunning {
		t.Fatalf("moving into free space should not end the round, status %v", g.Status())
	}

	// Head is now (4, 5); turning down enters the body at (4, 6).
	g.Dispatch(core.Press(core.ActionDown))
	tick(g, c)
	if g.Status() != StatusGameOver {
		t.Errorf("status = %v, expected GameOver", g.Status())
	}
}

func TestEatingGrowsAndScores(t *testing.T) {
	g, c, _ := newGame(t)
	g.Dispatch(core.Press(core.ActionStart))
	g.apple.Pos = core.Point{X: 5, Y: 9}

	tick(g, c)
	snap := g.Snapshot()

	if len(snap.Body) != 5 {
		t.Errorf("length = %d, expected 5", len(snap.Body))
	}
	if snap.Score != 1 || snap.HighScore != 1 {
		t.Errorf("score/high = %d/%d, expected 1/1", snap.Score, snap.HighScore)
	}
	for _, seg := range snap.Body {
		if seg == snap.Apple {
			t.Fatalf("apple respawned on the body at %v", seg)
		}
	}

	tick(g, c)
	if g.snake.Len() != 5 {
		t.Errorf("length = %d after the next move, expected 5", g.snake.Len())
	}
}

func TestLevelUpEveryFivePoints(t *testing.T) {
	g, c, _ := newGame(t)
	g.Dispatch(core.Press(core.ActionStart))
	g.score = 4
	g.apple.Pos = core.Point{X: 5, Y: 9}

	tick(g, c)

	if g.level != 2 {
		t.Errorf("level = %d, expected 2", g.level)
	}
	if g.Snapshot().Interval != 460*time.Millisecond {
		t.Errorf("interval = %v, expected 460ms", g.Snapshot().Interval)
	}
}

func TestLevelCapped(t *testing.T) {
	g, c, _ := newGame(t)
	g.Dispatch(core.Press(core.ActionStart))
	g.score = 49
	g.level = 10
	g.apple.Pos = core.Point{X: 5, Y: 9}

	tick(g, c)

	if g.level != 10 {
		t.Errorf("level = %d, expected to stay at 10", g.level)
	}
}

func TestSpeedUpHold(t *testing.T) {
	g, _, _ := newGame(t)
	g.Dispatch(core.Press(core.ActionStart))

	g.Dispatch(core.Input{Action: core.ActionAction, Hold: true})
	g.Dispatch(core.Input{Action: core.ActionAction, Hold: true})
	if g.timer.Interval() != 100*time.Millisecond {
		t.Fatalf("interval = %v, expected 100ms while held", g.timer.Interval())
	}
	if g.Snapshot().Interval != 500*time.Millisecond {
		t.Error("speed-up must not alter the leveled interval")
	}

	g.Dispatch(core.Input{Action: core.ActionAction, Hold: false})
	if g.timer.Interval() != 500*time.Millisecond {
		t.Errorf("interval = %v, expected 500ms after release", g.timer.Interval())
	}
}

func TestGameOverRestoresBaseInterval(t *testing.T) {
	g, c, _ := newGame(t)
	g.Dispatch(core.Press(core.ActionStart))
	g.score = 4
	g.apple.Pos = core.Point{X: 5, Y: 9}
	g.Dispatch(core.Input{Action: core.ActionAction, Hold: true})
	tick(g, c)

	g.snake.body[0] = core.Point{X: 5, Y: 0}
	tick(g, c)

	if g.Status() != StatusGameOver {
		t.Fatalf("status = %v, expected GameOver", g.Status())
	}
	if g.timer.Base() != 500*time.Millisecond || g.timer.Interval() != 500*time.Millisecond || g.timer.Boosted() {
		t.Error("game over should restore the level 1 interval and release the speed-up")
	}
}

func TestWinOnReachingMaxLength(t *testing.T) {
	g, c, keeper := newGame(t)
	g.Dispatch(core.Press(core.ActionStart))

	body := []core.Point{{X: 5, Y: 10}}
	for len(body) < 199 {
		body = append(body, core.Point{X: 0, Y: 19})
	}
	g.snake.body = body
	g.score = 7
	g.apple.Pos = core.Point{X: 5, Y: 9}

	tick(g, c)

	if g.Status() != StatusWin {
		t.Fatalf("status = %v, expected Win on the growing move", g.Status())
	}
	if g.snake.Len() != 200 {
		t.Errorf("length = %d, expected 200", g.snake.Len())
	}
	if keeper.Load() != 8 {
		t.Errorf("saved high score = %d, expected 8", keeper.Load())
	}
	if g.Snapshot().LastScore != 8 {
		t.Errorf("last score = %d, expected 8", g.Snapshot().LastScore)
	}

	g.Dispatch(core.Press(core.ActionPause))
	if g.Status() != StatusWin {
		t.Error("pause should be rejected after a win")
	}

	tick(g, c)
	if g.snake.Len() != 200 {
		t.Error("round must not resume after a win")
	}

	g.Dispatch(core.Press(core.ActionStart))
	if g.Status() != StatusRunning || g.snake.Len() != 4 || g.score != 0 {
		t.Error("start after a win should begin a fresh round")
	}
}

func TestPauseRejectedAfterGameOver(t *testing.T) {
	g, c, _ := newGame(t)
	g.Dispatch(core.Press(core.ActionStart))
	g.snake.body[0] = core.Point{X: 5, Y: 0}
	tick(g, c)

	g.Dispatch(core.Press(core.ActionPause))
	if g.Status() != StatusGameOver {
		t.Errorf("status = %v, pause should be rejected after game over", g.Status())
	}

	g.Dispatch(core.Press(core.ActionStart))
	if g.Status() != StatusRunning {
		t.Errorf("status = %v, expected Running after start", g.Status())
	}
}

func TestTerminate(t *testing.T) {
	g, _, _ := newGame(t)
	g.Dispatch(core.Press(core.ActionTerminate))

	if g.Status() != StatusExit {
		t.Errorf("status = %v, expected Exit", g.Status())
	}
}

func TestFieldProjection(t *testing.T) {
	g, _, _ := newGame(t)
	field := g.Snapshot().Field()

	if field.Get(0, 0) != CellApple {
		t.Error("apple should be projected with code 2")
	}
	for y := 10; y <= 13; y++ {
		if field.Get(5, y) != CellSnake {
			t.Errorf("snake segment missing at (5, %d)", y)
		}
	}
	if field.Count() != 5 {
		t.Errorf("field has %d cells, expected 5", field.Count())
	}
}

func TestSession(t *testing.T) {
	c := newClock()
	s := NewSession(registry.Deps{
		Scores: core.NopKeeper{},
		Rand:   &scripted{vals: []int{0}},
		Now:    c.Now,
	})

	if s.Cadence() != DefaultFrame {
		t.Errorf("cadence = %v, expected %v", s.Cadence(), DefaultFrame)
	}

	frame := s.Step(core.Press(core.ActionIdle))
	if !frame.Paused || frame.Speed != 500 {
		t.Errorf("frame = %+v, expected paused at 500ms", frame)
	}
	if frame.Next != nil {
		t.Error("snake frames carry no preview")
	}

	frame = s.Step(core.Press(core.ActionTerminate))
	if !frame.Exit {
		t.Error("terminate should mark the frame for exit")
	}
}
