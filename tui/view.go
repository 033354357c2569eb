package tui

import (
	"fmt"
	"strings"

	"portfolio-arcade/achievement"
	"portfolio-arcade/cube"
	"portfolio-arcade/game"
	"portfolio-arcade/game/manager"
	"portfolio-arcade/input"

	"github.com/gdamore/tcell/v2"
)

const (
	boardX  = 0
	boardY  = 2
	cubeGap = 2
	cubeW   = 40
)

var (
	styleDefault = tcell.StyleDefault
	styleHead    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 65))
	styleBody    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 212, 255))
	styleFood    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 20, 147))
	styleFocus   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGold    = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleToast   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkGreen)
	styleEdge    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// frame is everything drawn in one refresh.
type frame struct {
	snake        game.Snapshot
	gameOver     *game.GameOverEvent
	cube         cube.Transform
	focus        input.Focus
	achievements []achievement.Achievement
	toasts       []string
	stats        *manager.GameStats
}

// rect is a box in terminal cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// layout places the board (two columns per cell) and the cube box.
type layout struct {
	board rect
	cube  rect
}

func computeLayout(snap game.Snapshot) layout {
	cols, rows := snap.Grid.Columns(), snap.Grid.Rows()
	board := rect{x: boardX, y: boardY, w: cols*2 + 2, h: rows + 2}
	return layout{
		board: board,
		cube:  rect{x: board.x + board.w + cubeGap, y: boardY, w: cubeW, h: board.h},
	}
}

type view struct {
	screen tcell.Screen
	layout layout
}

func (v *view) draw(f frame) {
	v.layout = computeLayout(f.snake)
	v.screen.Clear()

	v.drawHeader(f)
	v.drawBoard(f)
	v.drawCube(f)
	v.drawInfo(f)

	v.screen.Show()
}

func (v *view) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (v *view) box(r rect, style tcell.Style) {
	for x := r.x + 1; x < r.x+r.w-1; x++ {
		v.screen.SetContent(x, r.y, '─', nil, style)
		v.screen.SetContent(x, r.y+r.h-1, '─', nil, style)
	}
	for y := r.y + 1; y < r.y+r.h-1; y++ {
		v.screen.SetContent(r.x, y, '│', nil, style)
		v.screen.SetContent(r.x+r.w-1, y, '│', nil, style)
	}
	v.screen.SetContent(r.x, r.y, '┌', nil, style)
	v.screen.SetContent(r.x+r.w-1, r.y, '┐', nil, style)
	v.screen.SetContent(r.x, r.y+r.h-1, '└', nil, style)
	v.screen.SetContent(r.x+r.w-1, r.y+r.h-1, '┘', nil, style)
}

func (v *view) drawHeader(f frame) {
	if len(f.toasts) > 0 {
		v.text(0, 0, " "+f.toasts[len(f.toasts)-1]+" ", styleToast)
	} else {
		v.text(0, 0, "PIXEL ARCADE", styleGold)
	}
	v.text(0, 1, fmt.Sprintf("Score: %d  Best: %d", f.snake.Score, f.snake.BestScore), styleDefault)
	v.text(v.layout.cube.x, 1, "3D Cube "+f.cube.String(), styleDefault)
}

func (v *view) drawBoard(f frame) {
	b := v.layout.board
	style := styleBorder
	if f.focus == input.FocusSnake {
		style = styleFocus
	}
	v.box(b, style)

	snap := f.snake
	cell := func(x, y int, r rune, st tcell.Style) {
		col, row := x/snap.Grid.CellSize, y/snap.Grid.CellSize
		sx, sy := b.x+1+col*2, b.y+1+row
		v.screen.SetContent(sx, sy, r, nil, st)
		v.screen.SetContent(sx+1, sy, r, nil, st)
	}

	if snap.State != game.StateStart {
		cell(snap.Food.X, snap.Food.Y, '●', styleFood)
		for i, p := range snap.Snake {
			st := styleBody
			if i == 0 {
				st = styleHead
			}
			cell(p.X, p.Y, '█', st)
		}
	}

	var lines []string
	switch snap.Overlay {
	case game.OverlayStart:
		lines = []string{"PIXEL SNAKE", fmt.Sprintf("Best Score: %d", snap.BestScore), "ENTER to start"}
	case game.OverlayGameOver:
		lines = []string{"GAME OVER!"}
		if snap.NewBest {
			lines = append(lines, "NEW BEST SCORE!")
		}
		lines = append(lines, fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.BestScore))
		if f.gameOver != nil {
			lines = append(lines, fmt.Sprintf("%s collision", f.gameOver.Reason))
		}
		lines = append(lines, "ENTER to restart")
	}
	top := b.y + b.h/2 - len(lines)/2
	for i, line := range lines {
		v.text(b.x+(b.w-len(line))/2, top+i, line, styleGold)
	}
}

func (v *view) drawCube(f frame) {
	c := v.layout.cube
	style := styleBorder
	if f.focus == input.FocusCube {
		style = styleFocus
	}
	v.box(c, style)
	for _, p := range wireframe(f.cube, c.w-2, c.h-2) {
		v.screen.SetContent(c.x+1+p.X, c.y+1+p.Y, '•', nil, styleEdge)
	}
}

func (v *view) drawInfo(f frame) {
	y := v.layout.board.y + v.layout.board.h

	if s := f.stats; s != nil && s.GetGamesPlayed() > 0 {
		v.text(0, y, fmt.Sprintf("Games: %d  Avg: %.1f  Median: %.1f  Max: %d  Avg Duration: %.1fs",
			s.GetGamesPlayed(), s.GetAverageScore(), s.GetMedianScore(), s.GetMaxScore(), s.GetAverageDuration()), styleDefault)
	}

	var names []string
	for _, a := range f.achievements {
		if a.Unlocked {
			names = append(names, a.Name)
		}
	}
	v.text(0, y+1, fmt.Sprintf("Achievements %d/%d: %s", len(names), len(f.achievements), strings.Join(names, ", ")), styleGold)
	v.text(0, y+2, "tab: focus  enter: start  esc: close  wasd/arrows: steer or spin  r: reset  space: stop  q: quit", styleBorder)
}
