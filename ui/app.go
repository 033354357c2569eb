package ui

import (
	"log"
	"time"

	"portfolio-arcade/achievement"
	"portfolio-arcade/audio"
	"portfolio-arcade/cube"
	"portfolio-arcade/game"
	"portfolio-arcade/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options wires the raylib window to the engines.
type Options struct {
	Loop     *game.Loop
	Latest   *game.Latest
	Cube     *cube.Model
	Registry *achievement.Registry
	Toasts   *achievement.Toasts
	Player   *audio.Player
	Logger   *log.Logger
	Width    int32
	Height   int32
}

// App is the graphical frontend. Run blocks until the window closes.
type App struct {
	opts       Options
	controller *input.Controller
	renderer   *Renderer

	boardPressed bool
	hovering     bool
}

func NewApp(opts Options) *App {
	if opts.Width == 0 {
		opts.Width = 1180
	}
	if opts.Height == 0 {
		opts.Height = 680
	}
	if opts.Latest == nil {
		opts.Latest = &game.Latest{}
	}
	if opts.Toasts == nil {
		opts.Toasts = achievement.NewToasts(0)
	}
	var notifier achievement.Notifier
	if opts.Registry != nil {
		notifier = opts.Registry
	}
	return &App{
		opts:       opts,
		controller: input.NewController(opts.Loop, opts.Cube, notifier),
		renderer:   NewRenderer(),
	}
}

func (a *App) Run() error {
	rl.InitWindow(a.opts.Width, a.opts.Height, "Pixel Arcade")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	// escape closes the snake game, not the window
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	if a.opts.Player != nil {
		if err := a.opts.Player.Init(); err != nil {
			// Non-fatal, the arcade runs without sound
			a.logf("audio unavailable: %v", err)
		}
		defer a.opts.Player.Close()
	}
	defer a.renderer.Unload()
	defer a.opts.Loop.Stop()

	engine := a.opts.Loop.Engine()
	a.renderer.UpdateDimensions(engine.Snapshot())

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		now := time.Now()
		a.handleKeys(now)
		a.handlePointer(now)

		frame := Frame{
			Snake:  engine.Snapshot(),
			Cube:   a.opts.Cube.Tick(now),
			Focus:  a.controller.Focus(),
			Toasts: a.opts.Toasts.Active(now),
			Stats:  engine.Stats(),
		}
		if ev, ok := a.opts.Latest.GameOver(); ok {
			frame.GameOver = &ev
		}
		if a.opts.Registry != nil {
			frame.Achievements = a.opts.Registry.List()
		}
		if a.opts.Player != nil {
			frame.Muted = a.opts.Player.Muted()
		}
		a.renderer.Draw(frame)
	}
	return nil
}

func (a *App) handleKeys(now time.Time) {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		name := keyName(key)
		if name == "" {
			continue
		}
		if name == "m" && a.opts.Player != nil {
			a.opts.Player.SetMuted(!a.opts.Player.Muted())
			continue
		}
		a.controller.Key(name, now)
	}
}

func (a *App) handlePointer(now time.Time) {
	layout := a.renderer.Layout()
	mouse := rl.GetMousePosition()
	x, y := float64(mouse.X), float64(mouse.Y)
	engine := a.opts.Loop.Engine()

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		switch {
		case rl.CheckCollisionPointRec(mouse, layout.Cube):
			a.controller.CubePress(x, y, now)
		case rl.CheckCollisionPointRec(mouse, layout.Board):
			if engine.State() != game.StatePlaying {
				a.opts.Loop.Start()
			} else {
				a.controller.BoardPress(x, y)
				a.boardPressed = true
			}
		}
	}
	if d := rl.GetMouseDelta(); rl.IsMouseButtonDown(rl.MouseButtonLeft) && (d.X != 0 || d.Y != 0) {
		a.controller.PointerMove(x, y)
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		a.controller.PointerRelease()
		if a.boardPressed {
			a.controller.BoardRelease(x, y)
			a.boardPressed = false
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && rl.CheckCollisionPointRec(mouse, layout.Cube) {
		// raylib reports scrolling up as positive
		a.controller.Wheel(-float64(wheel))
	}

	over := rl.CheckCollisionPointRec(mouse, a.renderer.CubeBounds())
	if over && !a.hovering && a.opts.Player != nil {
		a.opts.Player.PlayHover()
	}
	a.hovering = over
}

func (a *App) logf(format string, args ...any) {
	if a.opts.Logger != nil {
		a.opts.Logger.Printf(format, args...)
	}
}
