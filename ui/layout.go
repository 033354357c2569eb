package ui

import (
	"portfolio-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10
	headerHeight  = 30
	graphHeight   = 150
	minPanelWidth = 160
)

// Layout is the placement of every widget for one window size.
type Layout struct {
	Board    rl.Rectangle
	Cube     rl.Rectangle
	Panel    rl.Rectangle
	Graph    rl.Rectangle
	CellSize int32
}

// computeLayout splits the window into the board and the cube side by side,
// the achievements panel to their right when it fits, and the statistics
// graph along the bottom.
func computeLayout(screenWidth, screenHeight int32, grid types.Grid) Layout {
	availableHeight := screenHeight - graphHeight - borderPadding*3 - headerHeight
	availableWidth := (screenWidth - borderPadding*3) / 2

	cols := int32(max(grid.Columns(), 1))
	cellSize := max(min(availableHeight, availableWidth)/cols, 1)
	side := float32(cellSize * cols)

	top := float32(borderPadding + headerHeight)
	l := Layout{
		Board:    rl.Rectangle{X: borderPadding, Y: top, Width: side, Height: side},
		Cube:     rl.Rectangle{X: borderPadding*2 + side, Y: top, Width: side, Height: side},
		CellSize: cellSize,
		Graph: rl.Rectangle{
			X:      borderPadding,
			Y:      float32(screenHeight - graphHeight - borderPadding),
			Width:  float32(screenWidth - borderPadding*2),
			Height: graphHeight,
		},
	}

	panelX := borderPadding*3 + side*2
	if w := float32(screenWidth) - panelX - borderPadding; w >= minPanelWidth {
		l.Panel = rl.Rectangle{X: panelX, Y: top, Width: w, Height: side}
	}
	return l
}

// cellRect maps a board position to screen pixels.
func (l Layout) cellRect(p types.Point, grid types.Grid) (int32, int32) {
	col := int32(p.X / grid.CellSize)
	row := int32(p.Y / grid.CellSize)
	return int32(l.Board.X) + col*l.CellSize, int32(l.Board.Y) + row*l.CellSize
}
