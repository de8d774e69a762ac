package game

import (
	"github.com/dmelnik/tui-snake/internal/core"
)

// spawnLength is the initial number of body segments.
const spawnLength = 3

// Snake holds the ordered body segments (head first) and the heading.
// Steering buffers the next heading; Advance commits one move.
type Snake struct {
	body        []core.Point
	heading     core.Direction
	nextHeading core.Direction
	growPending bool
}

// NewSnake creates a snake with its head at spawn and the body trailing
// in the opposite of the heading.
func NewSnake(spawn core.Point, heading core.Direction) *Snake {
	back := heading.Opposite().Delta()
	body := make([]core.Point, spawnLength)
	p := spawn
	for i := range body {
		body[i] = p
		p = p.Add(back)
	}
	return &Snake{
		body:        body,
		heading:     heading,
		nextHeading: heading,
	}
}

// Steer requests a heading change for the next move. The exact opposite of
// the current heading is silently ignored (the anti-reversal invariant), as
// is DirNone.
func (s *Snake) Steer(d core.Direction) {
	if d == core.DirNone || d == s.heading.Opposite() {
		return
	}
	s.nextHeading = d
}

// Heading returns the committed heading.
func (s *Snake) Heading() core.Direction {
	return s.heading
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body segments, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// NextHead returns the cell the head will enter on the next Advance,
// applying the buffered heading.
func (s *Snake) NextHead() core.Point {
	return s.body[0].Add(s.nextHeading.Delta())
}

// Grow retains the tail on the next Advance, extending length by one.
func (s *Snake) Grow() {
	s.growPending = true
}

// HitsSelf reports whether entering cell would collide with the body.
// The tail cell is excluded when it is about to vacate this tick: it only
// stays occupied if a growth is pending.
func (s *Snake) HitsSelf(cell core.Point) bool {
	n := len(s.body)
	if !s.growPending && n > 0 {
		n-- // tail moves out of the way
	}
	for i := 0; i < n; i++ {
		if s.body[i] == cell {
			return true
		}
	}
	return false
}

// Occupies reports whether the cell is anywhere in the body.
func (s *Snake) Occupies(cell core.Point) bool {
	for _, seg := range s.body {
		if seg == cell {
			return true
		}
	}
	return false
}

// Advance commits one move: the buffered heading becomes current, the new
// head is prepended, and the tail is dropped unless a growth was pending.
func (s *Snake) Advance() {
	s.heading = s.nextHeading
	newHead := s.body[0].Add(s.heading.Delta())
	s.body = append([]core.Point{newHead}, s.body...)

	if s.growPending {
		s.growPending = false
	} else {
		s.body = s.body[:len(s.body)-1]
	}
}
