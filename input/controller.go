package input

import (
	"time"

	"portfolio-arcade/achievement"
	"portfolio-arcade/cube"
	"portfolio-arcade/game"
)

// Focus is the widget that receives keyboard input.
type Focus int

const (
	FocusSnake Focus = iota
	FocusCube
)

func (f Focus) String() string {
	if f == FocusCube {
		return "cube"
	}
	return "snake"
}

// Controller routes frontend events to the snake loop and the cube. It is
// owned by a single frontend goroutine.
type Controller struct {
	loop     *game.Loop
	cube     *cube.Model
	notifier achievement.Notifier

	focus  Focus
	konami Konami
	swipe  Swipe
	clicks DoubleClick
}

func NewController(loop *game.Loop, model *cube.Model, notifier achievement.Notifier) *Controller {
	return &Controller{
		loop:     loop,
		cube:     model,
		notifier: achievement.OrDiscard(notifier),
	}
}

func (c *Controller) Focus() Focus { return c.focus }

func (c *Controller) SetFocus(f Focus) { c.focus = f }

// Key handles one key press and reports whether it was consumed.
func (c *Controller) Key(key string, now time.Time) bool {
	key = Normalize(key)
	if c.konami.Press(key) {
		c.notifier.NotifyEvent(achievement.KonamiMaster)
	}

	if key == KeyTab {
		if c.focus == FocusSnake {
			c.focus = FocusCube
		} else {
			c.focus = FocusSnake
		}
		return true
	}

	if c.focus == FocusCube {
		cmd, ok := CubeCommandFor(key)
		if ok {
			Apply(c.cube, cmd, now)
		}
		return ok
	}
	return c.snakeKey(key)
}

func (c *Controller) snakeKey(key string) bool {
	engine := c.loop.Engine()
	switch key {
	case KeyEnter, KeySpace:
		if engine.State() != game.StatePlaying {
			return c.loop.Start()
		}
		return false
	case KeyEscape:
		c.loop.Stop()
		return true
	}

	if d, ok := SnakeDirection(key); ok {
		if engine.State() != game.StatePlaying {
			return false
		}
		engine.QueueDirection(d)
		return true
	}
	return false
}

// BoardPress and BoardRelease turn a press-drag-release on the board into a
// swipe.
func (c *Controller) BoardPress(x, y float64) {
	c.focus = FocusSnake
	c.swipe.Begin(x, y)
}

func (c *Controller) BoardRelease(x, y float64) bool {
	d, ok := c.swipe.End(x, y)
	if !ok || c.loop.Engine().State() != game.StatePlaying {
		return false
	}
	c.loop.Engine().QueueDirection(d)
	return true
}

// CubePress starts a drag, or spins and resets on a double click.
func (c *Controller) CubePress(x, y float64, now time.Time) {
	c.focus = FocusCube
	c.cube.BeginDrag(cube.Pointer{X: x, Y: y})
	if c.clicks.Click(now, x, y) {
		// close the session first so the release does not overwrite the spin
		c.cube.EndDrag()
		c.cube.SpinReset(now)
	}
}

func (c *Controller) PointerMove(x, y float64) {
	c.cube.UpdateDrag(cube.Pointer{X: x, Y: y})
}

func (c *Controller) PointerRelease() {
	c.cube.EndDrag()
}

// Wheel takes a browser-style delta: positive scrolls down.
func (c *Controller) Wheel(deltaY float64) {
	c.cube.Zoom(deltaY)
}
