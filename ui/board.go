package ui

import (
	"fmt"

	"portfolio-arcade/game"
	"portfolio-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (r *Renderer) drawBoard(f Frame, fontSize int32) {
	l := r.layout
	snap := f.Snake

	rl.DrawRectangle(int32(l.Board.X)-1, int32(l.Board.Y)-1, int32(l.Board.Width)+2, int32(l.Board.Height)+2, rl.DarkGray)
	rl.DrawRectangleRec(l.Board, background)

	if snap.State != game.StateStart {
		r.drawPixel(snap.Food, snap.Grid, foodColor)
		for i, p := range snap.Snake {
			color := snakeBody
			if i == 0 {
				color = snakeHead
			}
			r.drawPixel(p, snap.Grid, color)
		}
		if len(snap.Snake) > 0 {
			r.drawHeadMarker(snap.Snake[0], snap.Grid, snap.Direction)
		}
	}

	switch snap.Overlay {
	case game.OverlayStart:
		r.drawOverlay(fontSize, rl.Green,
			"PIXEL SNAKE",
			fmt.Sprintf("Best Score: %d", snap.BestScore),
			"WASD / arrows or swipe to steer",
			"press ENTER or click to start")
	case game.OverlayGameOver:
		lines := []string{"GAME OVER!"}
		if snap.NewBest {
			lines = append(lines, "NEW BEST SCORE!")
		}
		lines = append(lines,
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("Best Score: %d", snap.BestScore))
		if f.GameOver != nil {
			lines = append(lines, fmt.Sprintf("%s collision after %.1fs", f.GameOver.Reason, f.GameOver.Duration.Seconds()))
		}
		lines = append(lines, "press ENTER or click to restart")
		r.drawOverlay(fontSize, rl.Red, lines...)
	}
}

// drawPixel fills one cell with a dark outline.
func (r *Renderer) drawPixel(p types.Point, grid types.Grid, color rl.Color) {
	x, y := r.layout.cellRect(p, grid)
	size := r.layout.CellSize
	rl.DrawRectangle(x, y, size, size, color)
	rl.DrawRectangleLines(x, y, size, size, rl.Black)
}

func (r *Renderer) drawHeadMarker(head types.Point, grid types.Grid, direction types.Direction) {
	x, y := r.layout.cellRect(head, grid)
	cell := r.layout.CellSize
	half := cell / 2
	v := func(dx, dy int32) rl.Vector2 {
		return rl.Vector2{X: float32(x + dx), Y: float32(y + dy)}
	}
	switch direction {
	case types.Right:
		rl.DrawTriangle(v(cell, half), v(half, 0), v(half, cell), rl.Yellow)
	case types.Left:
		rl.DrawTriangle(v(0, half), v(half, cell), v(half, 0), rl.Yellow)
	case types.Down:
		rl.DrawTriangle(v(half, cell), v(cell, half), v(0, half), rl.Yellow)
	case types.Up:
		rl.DrawTriangle(v(half, 0), v(0, half), v(cell, half), rl.Yellow)
	}
}

func (r *Renderer) drawOverlay(fontSize int32, accent rl.Color, lines ...string) {
	board := r.layout.Board
	rl.DrawRectangleRec(board, rl.Fade(rl.Black, 0.75))

	lineHeight := fontSize + 8
	y := int32(board.Y+board.Height/2) - lineHeight*int32(len(lines))/2
	for i, line := range lines {
		color := rl.White
		size := fontSize
		if i == 0 {
			color = accent
			size = fontSize + 6
		}
		w := rl.MeasureText(line, size)
		rl.DrawText(line, int32(board.X+board.Width/2)-w/2, y, size, color)
		y += lineHeight
	}
}
