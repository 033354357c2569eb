package tui

import (
	"strings"
	"testing"
	"time"

	"portfolio-arcade/achievement"
	"portfolio-arcade/cube"
	"portfolio-arcade/game"
	"portfolio-arcade/input"
	"portfolio-arcade/storage"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.KeyUp},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.KeyLeft},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), input.KeyEnter},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), input.KeyTab},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), input.KeySpace},
		{tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), "w"},
		{tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keyName(tt.ev))
	}
}

func TestLineEndpoints(t *testing.T) {
	pts := line(cellPoint{0, 0}, cellPoint{6, 3})
	require.NotEmpty(t, pts)
	assert.Equal(t, cellPoint{0, 0}, pts[0])
	assert.Equal(t, cellPoint{6, 3}, pts[len(pts)-1])
	assert.Len(t, pts, 7)

	assert.Equal(t, []cellPoint{{2, 2}}, line(cellPoint{2, 2}, cellPoint{2, 2}))
}

func TestWireframeStaysInBox(t *testing.T) {
	poses := []cube.Transform{
		{Scale: 1},
		{RotationX: 30, RotationY: 45, Scale: 1},
		{RotationX: -75, RotationY: 210, Scale: 2, FloatOffset: 3},
		{Scale: 0.5, FloatOffset: -3},
	}
	for _, pose := range poses {
		pts := wireframe(pose, 38, 20)
		require.NotEmpty(t, pts, pose.String())
		for _, p := range pts {
			assert.True(t, p.X >= 0 && p.X < 38 && p.Y >= 0 && p.Y < 20, "%v out of box for %s", p, pose)
		}
	}
}

func TestWireframeRestPoseIsSymmetric(t *testing.T) {
	pts := wireframe(cube.Transform{Scale: 1}, 39, 21)
	set := map[cellPoint]bool{}
	for _, p := range pts {
		set[p] = true
	}
	for _, p := range pts {
		assert.True(t, set[cellPoint{38 - p.X, p.Y}], "missing mirror of %v", p)
		assert.True(t, set[cellPoint{p.X, 20 - p.Y}], "missing flip of %v", p)
	}
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(90, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func newTestApp(t *testing.T) (*App, *game.Engine, *cube.Model) {
	t.Helper()
	engine := game.NewEngine(game.Options{
		Store: storage.NewMemoryStore(),
		Rand:  rand.New(rand.NewSource(7)),
	})
	loop := game.NewLoop(engine, time.Hour)
	t.Cleanup(loop.Stop)
	model := cube.NewModel(nil, nil)
	registry := achievement.NewRegistry(storage.NewMemoryStore(), nil)
	app := NewApp(Options{Loop: loop, Cube: model, Registry: registry})
	app.view.screen = newScreen(t)
	app.view.layout = computeLayout(engine.Snapshot())
	return app, engine, model
}

func TestLayout(t *testing.T) {
	engine := game.NewEngine(game.Options{})
	l := computeLayout(engine.Snapshot())

	assert.Equal(t, rect{x: 0, y: 2, w: 42, h: 22}, l.board)
	assert.Equal(t, rect{x: 44, y: 2, w: 40, h: 22}, l.cube)
	assert.True(t, l.board.contains(0, 2))
	assert.False(t, l.board.contains(42, 2))
	assert.True(t, l.cube.contains(83, 23))
}

func TestViewDrawsStartOverlay(t *testing.T) {
	app, engine, _ := newTestApp(t)
	screen := app.view.screen.(tcell.SimulationScreen)

	app.view.draw(frame{snake: engine.Snapshot(), cube: cube.Transform{Scale: 1}})

	var board []string
	for y := 2; y < 24; y++ {
		board = append(board, rowText(screen, y, 42))
	}
	joined := strings.Join(board, "\n")
	assert.Contains(t, joined, "PIXEL SNAKE")
	assert.Contains(t, joined, "Best Score: 0")
	assert.NotContains(t, joined, "█", "snake is hidden on the start screen")

	r, _, _, _ := screen.GetContent(0, 2)
	assert.Equal(t, '┌', r)
}

func TestViewDrawsSnake(t *testing.T) {
	app, engine, _ := newTestApp(t)
	screen := app.view.screen.(tcell.SimulationScreen)
	require.True(t, engine.Start())

	snap := engine.Snapshot()
	app.view.draw(frame{snake: snap, cube: cube.Transform{Scale: 1}})

	// head at (200,200) is column 10, row 10
	head := snap.Snake[0]
	x := 1 + head.X/snap.Grid.CellSize*2
	y := 3 + head.Y/snap.Grid.CellSize
	for _, cx := range []int{x, x + 1} {
		r, _, style, _ := screen.GetContent(cx, y)
		assert.Equal(t, '█', r)
		assert.Equal(t, styleHead, style)
	}
	assert.Contains(t, rowText(screen, 1, 40), "Score: 0")
}

func TestViewDrawsGameOver(t *testing.T) {
	app, engine, _ := newTestApp(t)
	screen := app.view.screen.(tcell.SimulationScreen)
	require.True(t, engine.Start())
	for engine.Tick() {
	}

	ev := game.GameOverEvent{}
	app.view.draw(frame{snake: engine.Snapshot(), gameOver: &ev, cube: cube.Transform{Scale: 1}})

	var rows []string
	for y := 2; y < 24; y++ {
		rows = append(rows, rowText(screen, y, 42))
	}
	joined := strings.Join(rows, "\n")
	assert.Contains(t, joined, "GAME OVER!")
	assert.Contains(t, joined, "ENTER to restart")
}

func TestViewShowsToast(t *testing.T) {
	app, engine, _ := newTestApp(t)
	screen := app.view.screen.(tcell.SimulationScreen)

	app.view.draw(frame{
		snake:  engine.Snapshot(),
		cube:   cube.Transform{Scale: 1},
		toasts: []string{"Achievement unlocked: Snake Master"},
	})
	assert.Contains(t, rowText(screen, 0, 60), "Achievement unlocked: Snake Master")
}

func TestHandleEventKeys(t *testing.T) {
	app, engine, _ := newTestApp(t)
	now := time.Now()

	assert.True(t, app.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), now))
	assert.Equal(t, game.StatePlaying, engine.State())

	assert.True(t, app.handleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), now))
	assert.Equal(t, input.FocusCube, app.controller.Focus())

	assert.False(t, app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), now))
	assert.False(t, app.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), now))
}

func TestHandleMouse(t *testing.T) {
	app, engine, model := newTestApp(t)
	now := time.Now()
	l := app.view.layout

	// a click on the idle board starts a game
	app.handleEvent(tcell.NewEventMouse(l.board.x+5, l.board.y+5, tcell.Button1, tcell.ModNone), now)
	app.handleEvent(tcell.NewEventMouse(l.board.x+5, l.board.y+5, tcell.ButtonNone, tcell.ModNone), now)
	assert.Equal(t, game.StatePlaying, engine.State())

	// wheel over the cube zooms
	app.handleEvent(tcell.NewEventMouse(l.cube.x+3, l.cube.y+3, tcell.WheelUp, tcell.ModNone), now)
	assert.InDelta(t, cube.DefaultScale+cube.ZoomStep, model.Scale(), 1e-9)

	// press, drag and release on the cube
	app.handleEvent(tcell.NewEventMouse(l.cube.x+3, l.cube.y+3, tcell.Button1, tcell.ModNone), now)
	assert.True(t, model.Dragging())
	app.handleEvent(tcell.NewEventMouse(l.cube.x+4, l.cube.y+3, tcell.Button1, tcell.ModNone), now)
	assert.NotZero(t, model.Orientation().Y)
	app.handleEvent(tcell.NewEventMouse(l.cube.x+4, l.cube.y+3, tcell.ButtonNone, tcell.ModNone), now)
	assert.False(t, model.Dragging())
}
