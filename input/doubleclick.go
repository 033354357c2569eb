package input

import "time"

const (
	DoubleClickWindow   = 400 * time.Millisecond
	DoubleClickDistance = 6.0
)

// DoubleClick detects two clicks close in time and space, for frontends
// that only report single presses.
type DoubleClick struct {
	last    time.Time
	lastX   float64
	lastY   float64
	pending bool
}

// Click records a press and reports whether it completes a double click.
// A completed pair is consumed, so a third click starts over.
func (d *DoubleClick) Click(now time.Time, x, y float64) bool {
	if d.pending && now.Sub(d.last) <= DoubleClickWindow &&
		abs(x-d.lastX) <= DoubleClickDistance && abs(y-d.lastY) <= DoubleClickDistance {
		d.pending = false
		return true
	}
	d.last, d.lastX, d.lastY = now, x, y
	d.pending = true
	return false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
