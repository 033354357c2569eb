package input

import (
	"math"

	"portfolio-arcade/game/types"
)

// MinSwipeDistance is the shortest stroke, in pixels, that counts as a swipe.
const MinSwipeDistance = 30.0

// ClassifySwipe picks the dominant axis of a touch stroke. Ties go to the
// vertical axis and strokes not longer than MinSwipeDistance are ignored.
func ClassifySwipe(dx, dy float64) (types.Direction, bool) {
	if math.Abs(dx) > math.Abs(dy) {
		if math.Abs(dx) <= MinSwipeDistance {
			return types.None, false
		}
		if dx > 0 {
			return types.Right, true
		}
		return types.Left, true
	}

	if math.Abs(dy) <= MinSwipeDistance {
		return types.None, false
	}
	if dy > 0 {
		return types.Down, true
	}
	return types.Up, true
}

// Swipe tracks one touch stroke.
type Swipe struct {
	startX, startY float64
	active         bool
}

func (s *Swipe) Begin(x, y float64) {
	s.startX, s.startY = x, y
	s.active = true
}

// End classifies the stroke that ends at (x, y).
func (s *Swipe) End(x, y float64) (types.Direction, bool) {
	if !s.active {
		return types.None, false
	}
	s.active = false
	return ClassifySwipe(x-s.startX, y-s.startY)
}
