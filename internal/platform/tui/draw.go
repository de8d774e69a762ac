package tui

import (
	"fmt"

	"github.com/dmelnik/tui-snake/internal/core"
	"github.com/dmelnik/tui-snake/internal/game"
)

// hudHeight is the number of rows reserved above the board.
const hudHeight = 2

// cellGlyphs maps snapshot cell kinds to their display rune and color.
var cellGlyphs = map[game.CellKind]core.Cell{
	game.CellWall:      {Rune: '#', Color: core.ColorGray},
	game.CellObstacle:  {Rune: '#', Color: core.ColorWhite},
	game.CellSnakeHead: {Rune: 'O', Color: core.ColorBrightGreen},
	game.CellSnakeBody: {Rune: 'o', Color: core.ColorGreen},
	game.CellFood:      {Rune: '*', Color: core.ColorBrightRed},
}

// fitsScreen reports whether the board and HUD fit the screen.
func fitsScreen(dst *core.Screen, snap game.Snapshot) bool {
	return dst.Width() >= snap.Width && dst.Height() >= snap.Height+hudHeight
}

// drawSnapshot renders a game snapshot onto the screen buffer: HUD, board,
// and the overlay matching the current phase.
func drawSnapshot(dst *core.Screen, snap game.Snapshot, levelCount, highScore int) {
	dst.Clear()

	drawHUD(dst, snap, levelCount, highScore)

	if !fitsScreen(dst, snap) {
		drawOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	drawBoard(dst, snap)

	switch snap.Phase {
	case game.PhaseLevelComplete:
		drawOverlay(dst, fmt.Sprintf("Level %d cleared!", snap.Level), snap.LevelName)
	case game.PhaseVictory:
		drawOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", snap.Score))
	case game.PhaseGameOver:
		drawOverlay(dst, "Game Over", "Press R to restart")
	case game.PhasePaused:
		drawOverlay(dst, "Paused", "Press P to continue")
	}
}

// drawHUD draws the top status bar.
func drawHUD(dst *core.Screen, snap game.Snapshot, levelCount, highScore int) {
	hud := fmt.Sprintf(" Snake | Score: %d  Level: %d/%d  Food: %d/%d",
		snap.Score, snap.Level, levelCount, snap.FoodEaten, snap.FoodTarget)
	if highScore > 0 {
		hud += fmt.Sprintf("  Best: %d", highScore)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawBoard draws the grid centered below the HUD.
func drawBoard(dst *core.Screen, snap game.Snapshot) {
	offX := (dst.Width() - snap.Width) / 2
	offY := hudHeight + (dst.Height()-hudHeight-snap.Height)/2

	for y, row := range snap.Cells {
		for x, kind := range row {
			glyph, ok := cellGlyphs[kind]
			if !ok {
				continue
			}
			dst.SetColored(offX+x, offY+y, glyph.Rune, glyph.Color)
		}
	}
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
