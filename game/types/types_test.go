package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultGrid(t *testing.T) {
	g := DefaultGrid()
	assert.Equal(t, 20, g.Columns())
	assert.Equal(t, 20, g.Rows())
	assert.Equal(t, 400, g.Cells())
	assert.Equal(t, Point{X: 200, Y: 200}, g.Center())
}

func TestGridContains(t *testing.T) {
	g := DefaultGrid()

	assert.True(t, g.Contains(Point{X: 0, Y: 0}))
	assert.True(t, g.Contains(Point{X: 380, Y: 380}))
	assert.False(t, g.Contains(Point{X: 400, Y: 200}))
	assert.False(t, g.Contains(Point{X: 200, Y: 400}))
	assert.False(t, g.Contains(Point{X: -20, Y: 0}))
	assert.False(t, g.Contains(Point{X: 0, Y: -20}))
}

func TestGridIndex(t *testing.T) {
	g := DefaultGrid()

	assert.Equal(t, 0, g.Index(Point{X: 0, Y: 0}))
	assert.Equal(t, 1, g.Index(Point{X: 20, Y: 0}))
	assert.Equal(t, 20, g.Index(Point{X: 0, Y: 20}))
	assert.Equal(t, 399, g.Index(Point{X: 380, Y: 380}))
	assert.Equal(t, -1, g.Index(Point{X: 400, Y: 0}))
}

func TestDirectionDelta(t *testing.T) {
	assert.Equal(t, Point{X: 0, Y: -20}, Up.Delta(CellSize))
	assert.Equal(t, Point{X: 20, Y: 0}, Right.Delta(CellSize))
	assert.Equal(t, Point{X: 0, Y: 20}, Down.Delta(CellSize))
	assert.Equal(t, Point{X: -20, Y: 0}, Left.Delta(CellSize))
	assert.Equal(t, Point{}, None.Delta(CellSize))
}

func TestResolveDirection(t *testing.T) {
	all := []Direction{Up, Right, Down, Left}
	for _, current := range all {
		for _, requested := range all {
			accepted := ResolveDirection(current, requested)
			if requested == current.Opposite() {
				assert.False(t, accepted, "%s -> %s must be rejected", current, requested)
			} else {
				assert.True(t, accepted, "%s -> %s must be accepted", current, requested)
			}
		}
		assert.False(t, ResolveDirection(current, None))
	}
}
