package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/dmelnik/tui-snake/internal/core"
	"github.com/dmelnik/tui-snake/internal/game/level"
)

func TestPlaceFoodAvoidsOccupiedCells(t *testing.T) {
	lvl, err := level.Get(3) // has interior obstacles
	if err != nil {
		t.Fatalf("Get(3): %v", err)
	}
	board := NewBoard(lvl)
	snake := NewSnake(lvl.Spawn, lvl.Heading)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		p, err := PlaceFood(rng, board, snake.Body())
		if err != nil {
			t.Fatalf("PlaceFood: %v", err)
		}
		if board.Blocked(p) {
			t.Fatalf("food at %v is on a wall or obstacle", p)
		}
		if snake.Occupies(p) {
			t.Fatalf("food at %v overlaps the snake", p)
		}
	}
}

func TestPlaceFoodDoesNotMutateInputs(t *testing.T) {
	lvl, err := level.Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	board := NewBoard(lvl)
	cells := []core.Point{{X: 4, Y: 10}, {X: 3, Y: 10}, {X: 2, Y: 10}}
	orig := make([]core.Point, len(cells))
	copy(orig, cells)

	if _, err := PlaceFood(rand.New(rand.NewSource(1)), board, cells); err != nil {
		t.Fatalf("PlaceFood: %v", err)
	}
	for i := range cells {
		if cells[i] != orig[i] {
			t.Fatalf("snake cells mutated: [%d] = %v, want %v", i, cells[i], orig[i])
		}
	}
}

func TestPlaceFoodBoardFull(t *testing.T) {
	lvl, err := level.Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	board := NewBoard(lvl)

	// Occupy every free cell; no eligible cell remains.
	p, err := PlaceFood(rand.New(rand.NewSource(1)), board, board.FreeCells())
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("PlaceFood on full board: err = %v, want ErrBoardFull", err)
	}
	if p != noFood {
		t.Errorf("PlaceFood on full board returned %v, want the no-food marker", p)
	}
}
