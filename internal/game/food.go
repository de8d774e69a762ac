package game

import (
	"errors"
	"math/rand"

	"github.com/dmelnik/tui-snake/internal/core"
)

// ErrBoardFull is returned when no free cell remains for food. Callers
// treat it as a win condition, not a failure.
var ErrBoardFull = errors.New("game: no free cell left for food")

// noFood marks the absence of a live food item.
var noFood = core.Point{X: -1, Y: -1}

// PlaceFood chooses a food cell uniformly at random among interior cells
// not blocked by the board and not occupied by the snake. It samples from
// the precomputed eligible set rather than retrying random cells, so a
// nearly-full board cannot stall placement. Inputs are not mutated.
func PlaceFood(rng *rand.Rand, board *Board, snakeCells []core.Point) (core.Point, error) {
	taken := make(map[core.Point]bool, len(snakeCells))
	for _, p := range snakeCells {
		taken[p] = true
	}

	var eligible []core.Point
	for _, p := range board.FreeCells() {
		if !taken[p] {
			eligible = append(eligible, p)
		}
	}

	if len(eligible) == 0 {
		return noFood, ErrBoardFull
	}
	return eligible[rng.Intn(len(eligible))], nil
}
