package types

import (
	"fmt"
	"time"
)

// Point is a cell on the board. Coordinates are 1-indexed and Y grows downward.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 1 && p.X <= g.Width && p.Y >= 1 && p.Y <= g.Height
}

// Cells returns the number of cells on the board.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the cell the snake spawns on.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Game constants
const (
	GridSize = 20

	BaseDelay = 200 * time.Millisecond // Tick interval at the start of a run
	MinDelay  = 25 * time.Millisecond  // Speed ramp floor

	StartDirection = Right
)

// DefaultGrid is the fixed 20x20 board.
var DefaultGrid = Grid{Width: GridSize, Height: GridSize}
