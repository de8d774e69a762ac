package game

import (
	"time"

	"github.com/dmelnik/tui-snake/internal/core"
)

// Snapshot is a read-only projection of the game state, returned to the
// presentation layer after every session command. Collision outcomes are
// reported through Phase, never as errors.
type Snapshot struct {
	Phase     Phase
	Level     int
	LevelName string
	Score     int
	Attempt   int // 1-based count of games started this session

	FoodEaten  int // food eaten in the current level
	FoodTarget int
	Food       core.Point // {-1,-1} when no food is live

	SnakeLen int
	Head     core.Point
	Heading  core.Direction

	Width    int
	Height   int
	Interval time.Duration // movement interval of the current level

	// Cells is the full grid, row-major. Regenerated per snapshot; safe
	// for the caller to keep.
	Cells [][]CellKind
}

// HasFood reports whether a food item is live on the board.
func (s Snapshot) HasFood() bool {
	return s.Food != noFood
}

// snapshot projects the engine state into a Snapshot.
func (e *engine) snapshot(attempt int) Snapshot {
	snap := Snapshot{
		Phase:      e.phase,
		Level:      e.lvl.Number,
		LevelName:  e.lvl.Name,
		Score:      e.score,
		Attempt:    attempt,
		FoodEaten:  e.foodEaten,
		FoodTarget: e.foodTarget(),
		Food:       e.food,
		SnakeLen:   e.snake.Len(),
		Head:       e.snake.Head(),
		Heading:    e.snake.Heading(),
		Width:      e.board.Width,
		Height:     e.board.Height,
		Interval:   e.lvl.Interval,
	}

	cells := make([][]CellKind, e.board.Height)
	for y := range cells {
		cells[y] = make([]CellKind, e.board.Width)
		for x := range cells[y] {
			p := core.Point{X: x, Y: y}
			switch {
			case e.board.IsWall(p):
				cells[y][x] = CellWall
			case e.board.IsObstacle(p):
				cells[y][x] = CellObstacle
			}
		}
	}
	for i, seg := range e.snake.Body() {
		kind := CellSnakeBody
		if i == 0 {
			kind = CellSnakeHead
		}
		if seg.Y >= 0 && seg.Y < e.board.Height && seg.X >= 0 && seg.X < e.board.Width {
			cells[seg.Y][seg.X] = kind
		}
	}
	if e.food != noFood {
		cells[e.food.Y][e.food.X] = CellFood
	}
	snap.Cells = cells

	return snap
}
