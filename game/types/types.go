package types

import "time"

// Point is a grid-aligned cell position in board units.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game board dimensions in board units
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// Game constants
const (
	CellSize     = 20  // Board units per cell
	BoardExtent  = 400 // Width and height of the square board
	TickInterval = 150 * time.Millisecond
	FoodPoints   = 10
	MasterScore  = 50 // Score that unlocks the snake achievement
)

// DefaultGrid returns the 400x400 board with 20 unit cells.
func DefaultGrid() Grid {
	return Grid{Width: BoardExtent, Height: BoardExtent, CellSize: CellSize}
}

// Columns is the number of cells per row.
func (g Grid) Columns() int {
	return g.Width / g.CellSize
}

// Rows is the number of cells per column.
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Cells is the total number of cells on the board.
func (g Grid) Cells() int {
	return g.Columns() * g.Rows()
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the cell at the middle of the board.
func (g Grid) Center() Point {
	return g.CellAt(g.Columns()/2, g.Rows()/2)
}

// CellAt converts column/row indices to a board position.
func (g Grid) CellAt(col, row int) Point {
	return Point{X: col * g.CellSize, Y: row * g.CellSize}
}

// Index maps a board position to a dense cell index. Positions outside the
// board map to -1.
func (g Grid) Index(p Point) int {
	if !g.Contains(p) {
		return -1
	}
	return (p.Y/g.CellSize)*g.Columns() + p.X/g.CellSize
}
