// Package policy holds the scoring, leveling and speed rules shared by the
// falling-block and snake games. Every function is pure.
package policy

import (
	"time"

	"github.com/vovakirdan/brickgame/internal/core"
)

// MaxLevel caps leveling for both games.
const MaxLevel = 10

// Falling-block rules.
const (
	// TetrisLevelScore is the cumulative score per level step.
	TetrisLevelScore = 600
	// TetrisSpeedUnit is the speed added per level, in nanoseconds shaved off
	// the owner's frame.
	TetrisSpeedUnit = 3_000_000
	// TetrisTicks is the countdown between two automatic descents.
	TetrisTicks = 30
)

// Snake rules.
const (
	// SnakePointsPerLevel is the apple count per level step.
	SnakePointsPerLevel = 5
	// SnakeWinLength ends the round in a win.
	SnakeWinLength = 200
	// SnakeBaseInterval is the move interval at level 1.
	SnakeBaseInterval = 500 * time.Millisecond
	// SnakeLevelStep shortens the interval for every level above 1.
	SnakeLevelStep = 40 * time.Millisecond
	// SnakeBoostInterval is the interval while the speed-up is held.
	SnakeBoostInterval = 100 * time.Millisecond
)

var linePoints = [...]int{0, 100, 300, 700, 1500}

// LineClearPoints returns the award for clearing rows lines in one lock.
// Anything outside 1..4 awards nothing.
func LineClearPoints(rows int) int {
	if rows < 0 || rows >= len(linePoints) {
		return 0
	}
	return linePoints[rows]
}

// TetrisLevel returns the level reached from level for a cumulative score.
// It never lowers the level and never exceeds MaxLevel.
func TetrisLevel(score, level int) int {
	if level < 1 {
		level = 1
	}
	for score >= TetrisLevelScore*level && level < MaxLevel {
		level++
	}
	return level
}

// TetrisSpeed returns the speed for a level.
func TetrisSpeed(level int) int {
	return level * TetrisSpeedUnit
}

// SnakeLevelUp reports whether a post-eat score advances the level.
func SnakeLevelUp(score, level int) bool {
	return score > 0 && score%SnakePointsPerLevel == 0 && level < MaxLevel
}

// SnakeInterval returns the base move interval for a level.
func SnakeInterval(level int) time.Duration {
	level = core.Clamp(level, 1, MaxLevel)
	return SnakeBaseInterval - time.Duration(level-1)*SnakeLevelStep
}
