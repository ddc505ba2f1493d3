package core

// Playfield dimensions shared by both games.
const (
	FieldWidth  = 10
	FieldHeight = 20
)

// BlockSize is the edge length of a piece pattern and of the next-piece preview.
const BlockSize = 5

// Cell is a single playfield value: 0 is empty, 1-7 are colour/occupancy codes.
type Cell uint8

// Cell codes.
const (
	CellEmpty Cell = 0
	CellMax   Cell = 7
)

// Filled reports whether the cell is occupied.
func (c Cell) Filled() bool {
	return c != CellEmpty
}

// Valid reports whether the cell holds a legal code.
func (c Cell) Valid() bool {
	return c <= CellMax
}

// Grid is the fixed 10x20 playfield. It is a value type: assigning or
// returning a Grid copies every cell, so a snapshot can never alias the
// engine's working buffer.
type Grid struct {
	cells [FieldHeight][FieldWidth]Cell
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return FieldWidth
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return FieldHeight
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < FieldWidth && y >= 0 && y < FieldHeight
}

// At returns the cell at (x, y). Out-of-bounds reads return CellEmpty and false.
func (g Grid) At(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return CellEmpty, false
	}
	return g.cells[y][x], true
}

// Get returns the cell at (x, y), or CellEmpty when out of bounds.
func (g Grid) Get(x, y int) Cell {
	c, _ := g.At(x, y)
	return c
}

// Set writes c at (x, y). Writes outside the grid or with an invalid code
// are rejected and reported as false.
func (g *Grid) Set(x, y int, c Cell) bool {
	if !g.InBounds(x, y) || !c.Valid() {
		return false
	}
	g.cells[y][x] = c
	return true
}

// Clear empties every cell.
func (g *Grid) Clear() {
	g.cells = [FieldHeight][FieldWidth]Cell{}
}

// RowFull reports whether every cell in row y is occupied.
func (g Grid) RowFull(y int) bool {
	if y < 0 || y >= FieldHeight {
		return false
	}
	for _, c := range g.cells[y] {
		if !c.Filled() {
			return false
		}
	}
	return true
}

// DropRow removes row y by shifting every row above it down by one.
// Row 0 becomes empty.
func (g *Grid) DropRow(y int) {
	if y < 0 || y >= FieldHeight {
		return
	}
	for k := y; k > 0; k-- {
		g.cells[k] = g.cells[k-1]
	}
	g.cells[0] = [FieldWidth]Cell{}
}

// Row returns a copy of row y.
func (g Grid) Row(y int) []Cell {
	row := make([]Cell, FieldWidth)
	if y >= 0 && y < FieldHeight {
		copy(row, g.cells[y][:])
	}
	return row
}

// Count returns the number of occupied cells.
func (g Grid) Count() int {
	n := 0
	for y := range g.cells {
		for _, c := range g.cells[y] {
			if c.Filled() {
				n++
			}
		}
	}
	return n
}

// Block is a 5x5 cell pattern, used for falling pieces and the preview box.
type Block [BlockSize][BlockSize]Cell

// Empty reports whether no cell of the block is occupied.
func (b Block) Empty() bool {
	for i := range b {
		for _, c := range b[i] {
			if c.Filled() {
				return false
			}
		}
	}
	return true
}
