package ui

import (
	"portfolio-arcade/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyName translates a raylib key code into the names the input package
// understands. Unmapped keys return "".
func keyName(key int32) string {
	switch {
	case key >= rl.KeyA && key <= rl.KeyZ:
		return string(rune('a' + key - rl.KeyA))
	case key == rl.KeyUp:
		return input.KeyUp
	case key == rl.KeyDown:
		return input.KeyDown
	case key == rl.KeyLeft:
		return input.KeyLeft
	case key == rl.KeyRight:
		return input.KeyRight
	case key == rl.KeySpace:
		return input.KeySpace
	case key == rl.KeyEnter, key == rl.KeyKpEnter:
		return input.KeyEnter
	case key == rl.KeyEscape:
		return input.KeyEscape
	case key == rl.KeyTab:
		return input.KeyTab
	}
	return ""
}
