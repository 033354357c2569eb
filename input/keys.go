// Package input turns raw key names and pointer gestures into engine
// commands. Frontends translate their native key codes into the lowercase
// browser-style names used here.
package input

import (
	"strings"

	"portfolio-arcade/game/types"
)

const (
	KeyUp     = "arrowup"
	KeyDown   = "arrowdown"
	KeyLeft   = "arrowleft"
	KeyRight  = "arrowright"
	KeySpace  = " "
	KeyEnter  = "enter"
	KeyEscape = "escape"
	KeyTab    = "tab"
)

// Normalize lowercases a key name so "W" and "w" map the same way.
func Normalize(key string) string {
	if key == KeySpace {
		return key
	}
	return strings.ToLower(strings.TrimSpace(key))
}

// SnakeDirection maps WASD and the arrow keys to a direction.
func SnakeDirection(key string) (types.Direction, bool) {
	switch Normalize(key) {
	case "w", KeyUp:
		return types.Up, true
	case "s", KeyDown:
		return types.Down, true
	case "a", KeyLeft:
		return types.Left, true
	case "d", KeyRight:
		return types.Right, true
	}
	return types.None, false
}
