package snake

import "github.com/vovakirdan/brickgame/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// delta returns the one-cell step for d.
func (d Direction) delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Spawn layout: a vertical body centred on the field, head on top.
const (
	SpawnLength = 4
	spawnX      = core.FieldWidth / 2
	spawnY      = core.FieldHeight / 2
)

// Snake is the ordered body, head at index 0, with the current and the
// buffered direction.
type Snake struct {
	body    []core.Point
	current Direction
	next    Direction // Applied on the next Move
}

// NewSnake returns the spawn body heading up.
func NewSnake() *Snake {
	s := &Snake{
		body:    make([]core.Point, 0, SpawnLength),
		current: DirUp,
		next:    DirUp,
	}
	for i := 0; i < SpawnLength; i++ {
		s.body = append(s.body, core.Point{X: spawnX, Y: spawnY + i})
	}
	return s
}

// Head returns the head position.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the direction of the last move.
func (s *Snake) Direction() Direction {
	return s.current
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// ChangeDirection buffers d for the next move unless it reverses the
// current direction. It reports whether d was accepted.
func (s *Snake) ChangeDirection(d Direction) bool {
	if d == s.current.Opposite() {
		return false
	}
	s.next = d
	return true
}

// Move commits the buffered direction and shifts the body one cell:
// a new head is pushed to the front and the tail is dropped.
func (s *Snake) Move() {
	s.current = s.next
	dx, dy := s.current.delta()
	head := s.Head().Add(dx, dy)

	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head
}

// Grow duplicates the tail so the next move does not shorten the body.
func (s *Snake) Grow() {
	s.body = append(s.body, s.body[len(s.body)-1])
}

// HitsSelf reports whether the head shares a cell with any other segment.
func (s *Snake) HitsSelf() bool {
	head := s.Head()
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment is at p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}
