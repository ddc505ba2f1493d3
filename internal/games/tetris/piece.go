package tetris

import "github.com/vovakirdan/brickgame/internal/core"

// Shape identifies one of the seven canonical pieces.
type Shape int

const (
	ShapeZ Shape = iota
	ShapeS
	ShapeT
	ShapeL
	ShapeJ
	ShapeO
	ShapeI
)

// ShapeCount is the number of canonical shapes.
const ShapeCount = 7

// rowBias is the number of headroom rows at the top of every pattern.
// They exist for rotation only and map above the visible field.
const rowBias = 2

// Spawn anchor for a freshly promoted piece.
const (
	SpawnX = (core.FieldWidth-core.BlockSize)/2 + 1
	SpawnY = 0
)

// shapes holds the spawn orientation of each piece. Cell codes are id+1.
var shapes = [ShapeCount]core.Block{
	ShapeZ: {
		{},
		{},
		{1, 1, 0, 0, 0},
		{0, 1, 1, 0, 0},
		{},
	},
	ShapeS: {
		{},
		{},
		{0, 2, 2, 0, 0},
		{2, 2, 0, 0, 0},
		{},
	},
	ShapeT: {
		{},
		{},
		{0, 3, 0, 0, 0},
		{3, 3, 3, 0, 0},
		{},
	},
	ShapeL: {
		{},
		{},
		{0, 0, 4, 0, 0},
		{4, 4, 4, 0, 0},
		{},
	},
	ShapeJ: {
		{},
		{},
		{5, 0, 0, 0, 0},
		{5, 5, 5, 0, 0},
		{},
	},
	ShapeO: {
		{},
		{},
		{0, 6, 6, 0, 0},
		{0, 6, 6, 0, 0},
		{},
	},
	ShapeI: {
		{},
		{},
		{7, 7, 7, 7, 0},
		{},
		{},
	},
}

// String returns the conventional letter of the shape.
func (s Shape) String() string {
	if s < 0 || s >= ShapeCount {
		return "?"
	}
	return "ZSTLJOI"[s : s+1]
}

// Valid reports whether s is one of the canonical shapes.
func (s Shape) Valid() bool {
	return s >= 0 && s < ShapeCount
}

// Pattern returns the spawn orientation of s.
func (s Shape) Pattern() core.Block {
	if !s.Valid() {
		return core.Block{}
	}
	return shapes[s]
}

// Piece is a shape pattern placed at an anchor. Pieces are values; every
// transform returns a new candidate and leaves the receiver untouched.
type Piece struct {
	X, Y    int
	Shape   Shape
	Pattern core.Block
}

// NewPiece creates a piece of shape s in spawn orientation at (x, y).
func NewPiece(s Shape, x, y int) Piece {
	return Piece{X: x, Y: y, Shape: s, Pattern: s.Pattern()}
}

// RandomPiece draws a shape uniformly from src.
func RandomPiece(src core.Source, x, y int) Piece {
	return NewPiece(Shape(src.Intn(ShapeCount)), x, y)
}

// Moved returns the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns the piece turned a quarter clockwise at the same anchor.
// The square keeps its pattern. The bar pivots with a one-column
// correction and the other shapes with a two-column correction, so each
// stays inside the pattern box.
func (p Piece) Rotated() Piece {
	if p.Shape == ShapeO {
		return p
	}

	shift := 2
	if p.Shape == ShapeI {
		shift = 1
	}

	var out core.Block
	for i := 0; i < core.BlockSize; i++ {
		for j := 0; j < core.BlockSize; j++ {
			if j < shift {
				continue
			}
			out[j][core.BlockSize-1-i] = p.Pattern[i][j-shift]
		}
	}
	p.Pattern = out
	return p
}

// Cells calls fn with the field position and code of every occupied
// pattern cell. Positions may fall outside the field.
func (p Piece) Cells(fn func(x, y int, c core.Cell)) {
	for i := 0; i < core.BlockSize; i++ {
		for j := 0; j < core.BlockSize; j++ {
			if c := p.Pattern[i][j]; c.Filled() {
				fn(p.X+j, p.Y+i-rowBias, c)
			}
		}
	}
}

// Collides reports whether any occupied cell of p lands outside the field
// or on an occupied field cell.
func (p Piece) Collides(field core.Grid) bool {
	hit := false
	p.Cells(func(x, y int, _ core.Cell) {
		if c, ok := field.At(x, y); !ok || c.Filled() {
			hit = true
		}
	})
	return hit
}

// StampInto writes every in-bounds cell of p into field.
func (p Piece) StampInto(field *core.Grid) {
	p.Cells(func(x, y int, c core.Cell) {
		field.Set(x, y, c)
	})
}
