package game

import (
	"testing"

	"github.com/dmelnik/tui-snake/internal/core"
)

func TestNewSnakeBodyTrailsHeading(t *testing.T) {
	s := NewSnake(core.Point{X: 5, Y: 5}, core.DirRight)

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	want := []core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	for i, p := range s.Body() {
		if p != want[i] {
			t.Errorf("body[%d] = %v, want %v", i, p, want[i])
		}
	}
	if s.Heading() != core.DirRight {
		t.Errorf("Heading() = %v, want right", s.Heading())
	}
}

func TestSteerBuffersUntilAdvance(t *testing.T) {
	s := NewSnake(core.Point{X: 5, Y: 5}, core.DirRight)

	s.Steer(core.DirUp)
	if s.Heading() != core.DirRight {
		t.Errorf("Heading() changed before Advance: %v", s.Heading())
	}
	if got := s.NextHead(); got != (core.Point{X: 5, Y: 4}) {
		t.Errorf("NextHead() = %v, want (5,4)", got)
	}

	s.Advance()
	if s.Heading() != core.DirUp {
		t.Errorf("Heading() after Advance = %v, want up", s.Heading())
	}
	if got := s.Head(); got != (core.Point{X: 5, Y: 4}) {
		t.Errorf("Head() = %v, want (5,4)", got)
	}
}

func TestSteerIgnoresReversal(t *testing.T) {
	tests := []struct {
		heading core.Direction
		steer   core.Direction
	}{
		{core.DirRight, core.DirLeft},
		{core.DirLeft, core.DirRight},
		{core.DirUp, core.DirDown},
		{core.DirDown, core.DirUp},
	}
	for _, tt := range tests {
		s := NewSnake(core.Point{X: 5, Y: 5}, tt.heading)
		s.Steer(tt.steer)
		s.Advance()
		if s.Heading() != tt.heading {
			t.Errorf("heading %v after steering %v: got %v, want unchanged",
				tt.heading, tt.steer, s.Heading())
		}
	}
}

func TestSteerIgnoresNone(t *testing.T) {
	s := NewSnake(core.Point{X: 5, Y: 5}, core.DirRight)
	s.Steer(core.DirNone)
	if got := s.NextHead(); got != (core.Point{X: 6, Y: 5}) {
		t.Errorf("NextHead() = %v, want (6,5)", got)
	}
}

func TestAdvanceDropsTail(t *testing.T) {
	s := NewSnake(core.Point{X: 5, Y: 5}, core.DirRight)
	s.Advance()

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if s.Occupies(core.Point{X: 3, Y: 5}) {
		t.Error("old tail cell still occupied after Advance")
	}
	if got := s.Head(); got != (core.Point{X: 6, Y: 5}) {
		t.Errorf("Head() = %v, want (6,5)", got)
	}
}

func TestGrowRetainsTail(t *testing.T) {
	s := NewSnake(core.Point{X: 5, Y: 5}, core.DirRight)
	s.Grow()
	s.Advance()

	if s.Len() != 4 {
		t.Fatalf("Len() after grow = %d, want 4", s.Len())
	}
	if !s.Occupies(core.Point{X: 3, Y: 5}) {
		t.Error("tail cell vacated despite pending growth")
	}

	// Growth applies once; the next move drops the tail again.
	s.Advance()
	if s.Len() != 4 {
		t.Errorf("Len() after plain Advance = %d, want 4", s.Len())
	}
}

func TestHitsSelf(t *testing.T) {
	s := NewSnake(core.Point{X: 5, Y: 5}, core.DirRight)

	if !s.HitsSelf(core.Point{X: 4, Y: 5}) {
		t.Error("HitsSelf(body cell) = false, want true")
	}
	if s.HitsSelf(core.Point{X: 3, Y: 5}) {
		t.Error("HitsSelf(vacating tail) = true, want false")
	}
	if s.HitsSelf(core.Point{X: 6, Y: 5}) {
		t.Error("HitsSelf(free cell) = true, want false")
	}

	// A pending growth keeps the tail in place, so it counts again.
	s.Grow()
	if !s.HitsSelf(core.Point{X: 3, Y: 5}) {
		t.Error("HitsSelf(tail with growth pending) = false, want true")
	}
}
