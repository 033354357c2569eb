// Package tui is the terminal frontend. It drives the same engines as the
// graphical window with a two-columns-per-cell board and a wireframe cube.
package tui

import (
	"fmt"
	"log"
	"time"

	"portfolio-arcade/achievement"
	"portfolio-arcade/audio"
	"portfolio-arcade/cube"
	"portfolio-arcade/game"
	"portfolio-arcade/input"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS

	// cell size in pointer units, so drags and swipes feel like pixels
	cellPixelsX = 8
	cellPixelsY = 16
)

// Options wires the terminal to the engines.
type Options struct {
	Loop     *game.Loop
	Latest   *game.Latest
	Cube     *cube.Model
	Registry *achievement.Registry
	Toasts   *achievement.Toasts
	Player   *audio.Player
	Logger   *log.Logger
}

type App struct {
	opts       Options
	controller *input.Controller
	view       view

	buttons      tcell.ButtonMask
	boardPressed bool
	hovering     bool
}

func NewApp(opts Options) *App {
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
	}
}

// Run blocks until the user quits.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	defer screen.Fini()
	return a.run(screen)
}

func (a *App) run(screen tcell.Screen) error {
	a.view.screen = screen
	defer a.opts.Loop.Stop()

	if a.opts.Player != nil {
		if err := a.opts.Player.Init(); err != nil {
			// Non-fatal, the arcade runs without sound
			a.logf("audio unavailable: %v", err)
		}
		defer a.opts.Player.Close()
	}

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			a.view.draw(a.frame(now))
		}
	}
}

func (a *App) frame(now time.Time) frame {
	engine := a.opts.Loop.Engine()
	f := frame{
		snake:  engine.Snapshot(),
		cube:   a.opts.Cube.Tick(now),
		focus:  a.controller.Focus(),
		toasts: a.opts.Toasts.Active(now),
		stats:  engine.Stats(),
	}
	if ev, ok := a.opts.Latest.GameOver(); ok {
		f.gameOver = &ev
	}
	if a.opts.Registry != nil {
		f.achievements = a.opts.Registry.List()
	}
	return f
}

// handleEvent reports false when the user asked to quit.
func (a *App) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		name := keyName(ev)
		switch name {
		case "":
			return true
		case "q":
			return false
		case "m":
			if a.opts.Player != nil {
				a.opts.Player.SetMuted(!a.opts.Player.Muted())
			}
			return true
		}
		a.controller.Key(name, now)

	case *tcell.EventMouse:
		a.handleMouse(ev, now)

	case *tcell.EventResize:
		a.view.screen.Sync()
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse, now time.Time) {
	cx, cy := ev.Position()
	x, y := float64(cx*cellPixelsX), float64(cy*cellPixelsY)
	l := a.view.layout
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
	released := buttons&tcell.Button1 == 0 && a.buttons&tcell.Button1 != 0
	a.buttons = buttons

	switch {
	case pressed && l.cube.contains(cx, cy):
		a.controller.CubePress(x, y, now)
	case pressed && l.board.contains(cx, cy):
		if a.opts.Loop.Engine().State() != game.StatePlaying {
			a.opts.Loop.Start()
		} else {
			a.controller.BoardPress(x, y)
			a.boardPressed = true
		}
	case released:
		a.controller.PointerRelease()
		if a.boardPressed {
			a.controller.BoardRelease(x, y)
			a.boardPressed = false
		}
	case buttons&tcell.Button1 != 0:
		a.controller.PointerMove(x, y)
	}

	if l.cube.contains(cx, cy) {
		switch {
		case buttons&tcell.WheelUp != 0:
			a.controller.Wheel(-1)
		case buttons&tcell.WheelDown != 0:
			a.controller.Wheel(1)
		}
	}

	over := l.cube.contains(cx, cy)
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
