package tui

import (
	"portfolio-arcade/cube"

	"github.com/go-gl/mathgl/mgl32"
)

var corners = [8]mgl32.Vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

var edges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// cellPoint is a terminal cell position.
type cellPoint struct {
	X, Y int
}

// wireframe projects the cube edges orthographically into a w*h cell box.
// Terminal cells are about twice as tall as wide, so x is stretched.
func wireframe(t cube.Transform, w, h int) []cellPoint {
	const (
		unit   = 1.0 / 8 // world units per pixel of float offset
		radius = 2.5     // world half-extent mapped onto the box
	)
	scaleY := float32(h-1) / (2 * radius)
	scaleX := min(float32(w-1)/(2*radius), scaleY*2)

	var projected [8]cellPoint
	for i, c := range corners {
		p := t.Apply(c, unit)
		projected[i] = cellPoint{
			X: int(float32(w-1)/2 + p.X()*scaleX + 0.5),
			Y: int(float32(h-1)/2 - p.Y()*scaleY + 0.5),
		}
	}

	var out []cellPoint
	seen := map[cellPoint]bool{}
	for _, e := range edges {
		for _, p := range line(projected[e[0]], projected[e[1]]) {
			if p.X < 0 || p.Y < 0 || p.X >= w || p.Y >= h || seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// line rasterises a segment with Bresenham's algorithm.
func line(a, b cellPoint) []cellPoint {
	dx, dy := abs(b.X-a.X), -abs(b.Y-a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy

	var pts []cellPoint
	for {
		pts = append(pts, a)
		if a == b {
			return pts
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			a.X += sx
		}
		if e2 <= dx {
			err += dx
			a.Y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
