// Package game implements the snake simulation core: the board, the snake
// model, food placement, the per-tick state machine, and the session
// controller that owns a single game state. The package is pure logic with
// no platform dependencies; an external adapter supplies direction intents
// and renders the returned snapshots.
package game

import (
	"github.com/dmelnik/tui-snake/internal/core"
	"github.com/dmelnik/tui-snake/internal/game/level"
)

// CellKind classifies a board cell in a snapshot grid.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellWall
	CellObstacle
	CellSnakeBody
	CellSnakeHead
	CellFood
)

// Board is the static geometry of one level: dimensions, the border wall,
// and the level's fixed obstacle set. It never changes during a level.
type Board struct {
	Width  int
	Height int
	lvl    level.Level
}

// NewBoard creates a board from a level definition.
func NewBoard(lvl level.Level) *Board {
	return &Board{
		Width:  lvl.Width,
		Height: lvl.Height,
		lvl:    lvl,
	}
}

// IsWall reports whether the cell is on the border or outside the board.
func (b *Board) IsWall(p core.Point) bool {
	return p.X <= 0 || p.X >= b.Width-1 || p.Y <= 0 || p.Y >= b.Height-1
}

// IsObstacle reports whether the cell holds a level obstacle.
func (b *Board) IsObstacle(p core.Point) bool {
	return b.lvl.IsObstacle(p)
}

// Blocked reports whether the cell is impassable (wall or obstacle).
func (b *Board) Blocked(p core.Point) bool {
	return b.IsWall(p) || b.IsObstacle(p)
}

// FreeCells returns all interior cells that hold no wall or obstacle.
func (b *Board) FreeCells() []core.Point {
	cells := make([]core.Point, 0, (b.Width-2)*(b.Height-2))
	for y := 1; y < b.Height-1; y++ {
		for x := 1; x < b.Width-1; x++ {
			p := core.Point{X: x, Y: y}
			if !b.lvl.IsObstacle(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}
