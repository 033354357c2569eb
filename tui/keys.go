package tui

import (
	"strings"

	"portfolio-arcade/input"

	"github.com/gdamore/tcell/v2"
)

// keyName translates a tcell key event into the names the input package
// understands. Unmapped keys return "".
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyEnter:
		return input.KeyEnter
	case tcell.KeyEscape:
		return input.KeyEscape
	case tcell.KeyTab:
		return input.KeyTab
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return input.KeySpace
		}
		return strings.ToLower(string(ev.Rune()))
	}
	return ""
}
