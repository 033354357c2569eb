package ui

import (
	"fmt"

	"portfolio-arcade/achievement"
	"portfolio-arcade/cube"
	"portfolio-arcade/game"
	"portfolio-arcade/game/manager"
	"portfolio-arcade/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	background = rl.Color{R: 10, G: 10, B: 10, A: 255}
	snakeHead  = rl.Color{R: 0, G: 255, B: 65, A: 255}
	snakeBody  = rl.Color{R: 0, G: 212, B: 255, A: 255}
	foodColor  = rl.Color{R: 255, G: 20, B: 147, A: 255}
	focusColor = rl.Color{R: 0, G: 255, B: 65, A: 160}
)

// Frame is everything drawn in one window refresh.
type Frame struct {
	Snake        game.Snapshot
	GameOver     *game.GameOverEvent
	Cube         cube.Transform
	Focus        input.Focus
	Achievements []achievement.Achievement
	Toasts       []string
	Stats        *manager.GameStats
	Muted        bool
}

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	layout       Layout
	cube         *cubeView
}

func NewRenderer() *Renderer {
	r := &Renderer{cube: newCubeView()}
	return r
}

// UpdateDimensions recomputes the layout for the current window size.
func (r *Renderer) UpdateDimensions(snap game.Snapshot) {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.layout = computeLayout(r.screenWidth, r.screenHeight, snap.Grid)
}

func (r *Renderer) Layout() Layout {
	return r.layout
}

// CubeBounds is the on-screen box of the projected cube, used for hover.
func (r *Renderer) CubeBounds() rl.Rectangle {
	return r.cube.bounds
}

func (r *Renderer) Draw(f Frame) {
	r.UpdateDimensions(f.Snake)
	fontSize := max(r.screenHeight/45, 12)

	// the cube goes to its texture before the frame begins
	r.cube.render(f.Cube, r.layout.Cube)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawHeader(f, fontSize)
	r.drawBoard(f, fontSize)
	r.cube.draw(r.layout.Cube)
	r.drawCubeHelp(f, fontSize)
	r.drawFocus(f.Focus)
	r.drawAchievements(f, fontSize)
	r.drawStatsGraph(f.Stats, fontSize)
	r.drawToasts(f.Toasts, fontSize)

	rl.EndDrawing()
}

func (r *Renderer) drawHeader(f Frame, fontSize int32) {
	x := int32(r.layout.Board.X)
	y := int32(borderPadding)
	rl.DrawText(fmt.Sprintf("Score: %d", f.Snake.Score), x, y, fontSize, rl.White)
	best := fmt.Sprintf("Best: %d", f.Snake.BestScore)
	rl.DrawText(best, x+int32(r.layout.Board.Width)-rl.MeasureText(best, fontSize), y, fontSize, rl.Gold)

	title := "3D Cube"
	if f.Muted {
		title += " (muted)"
	}
	rl.DrawText(title, int32(r.layout.Cube.X), y, fontSize, rl.White)
}

func (r *Renderer) drawFocus(focus input.Focus) {
	rect := r.layout.Board
	if focus == input.FocusCube {
		rect = r.layout.Cube
	}
	rl.DrawRectangleLinesEx(rl.Rectangle{
		X: rect.X - 3, Y: rect.Y - 3, Width: rect.Width + 6, Height: rect.Height + 6,
	}, 2, focusColor)
}

func (r *Renderer) drawCubeHelp(f Frame, fontSize int32) {
	small := max(fontSize-4, 10)
	help := "drag: spin  wheel: zoom  arrows: nudge  r: reset  space: stop  double-click: spin reset"
	x := int32(r.layout.Cube.X)
	y := int32(r.layout.Cube.Y+r.layout.Cube.Height) - small - 4
	rl.DrawText(help, x+4, y, small, rl.Gray)
	rl.DrawText(f.Cube.String(), x+4, int32(r.layout.Cube.Y)+4, small, rl.DarkGray)
}

// Unload releases GPU resources. Call before the window closes.
func (r *Renderer) Unload() {
	r.cube.unload()
}
