package entity

import (
	"portfolio-arcade/game/types"

	"github.com/kamstrup/intmap"
)

// Snake is the player body. Body[0] is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Direction

	grid     types.Grid
	occupied *intmap.Map[int, struct{}]
}

func NewSnake(grid types.Grid, startPos types.Point, dir types.Direction) *Snake {
	s := &Snake{
		Body:      []types.Point{startPos},
		Direction: dir,
		grid:      grid,
		occupied:  intmap.New[int, struct{}](grid.Cells()),
	}
	s.occupied.Put(grid.Index(startPos), struct{}{})
	return s
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// NextHead is the cell the head moves into under the applied direction.
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction.Delta(s.grid.CellSize))
}

// Occupies reports whether any body cell sits on pos.
func (s *Snake) Occupies(pos types.Point) bool {
	idx := s.grid.Index(pos)
	if idx < 0 {
		return false
	}
	_, ok := s.occupied.Get(idx)
	return ok
}

// Grow prepends a new head and keeps the tail.
func (s *Snake) Grow(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	s.occupied.Put(s.grid.Index(newHead), struct{}{})
}

// RemoveTail drops the last body cell.
func (s *Snake) RemoveTail() {
	if len(s.Body) <= 1 {
		return
	}
	tail := s.GetTail()
	s.Body = s.Body[:len(s.Body)-1]
	s.occupied.Del(s.grid.Index(tail))
}

// Advance moves the snake one cell keeping its length.
func (s *Snake) Advance(newHead types.Point) {
	s.Grow(newHead)
	s.RemoveTail()
}

// SetDirection applies dir unless it would reverse the snake onto itself.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !types.ResolveDirection(s.Direction, dir) {
		return false
	}
	s.Direction = dir
	return true
}

// Cells returns a copy of the body.
func (s *Snake) Cells() []types.Point {
	out := make([]types.Point, len(s.Body))
	copy(out, s.Body)
	return out
}
