package tetris

import (
	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/policy"
)

// lock stamps the current piece, scores cleared rows, promotes the next
// piece and ends the round when the new piece has no room.
func (g *Game) lock() {
	g.current.StampInto(&g.field)

	g.score += policy.LineClearPoints(clearRows(&g.field))
	if g.score > g.highScore {
		g.highScore = g.score
	}
	g.level = policy.TetrisLevel(g.score, g.level)
	g.speed = policy.TetrisSpeed(g.level)

	g.current = NewPiece(g.next.Shape, SpawnX, SpawnY)
	g.next = RandomPiece(g.rng, SpawnX, SpawnY)
	g.ticksLeft = policy.TetrisTicks

	if g.current.Collides(g.field) {
		g.lastScore = g.score
		g.scores.Save(g.highScore)
		g.status = StatusGameOver
	}
}

// clearRows removes every full row, scanning bottom to top. A row index
// is re-checked after each removal so stacked full rows cascade.
func clearRows(field *core.Grid) int {
	n := 0
	for y := field.Height() - 1; y >= 0; y-- {
		for field.RowFull(y) {
			field.DropRow(y)
			n++
		}
	}
	return n
}
