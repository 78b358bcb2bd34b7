// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based layout.
package world

import (
	"fmt"
	"math"
)

// CellKey is a coarse grid coordinate on the XZ plane
type CellKey struct {
	X int
	Z int
}

// String returns "x,z"
func (c CellKey) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Z)
}

// Neighbor returns the adjacent cell in the given direction
func (c CellKey) Neighbor(dir Direction) CellKey {
	dx, dz := dir.Step()
	return CellKey{X: c.X + dx, Z: c.Z + dz}
}

// Neighbors returns the four cardinal neighbours in AllDirections order
func (c CellKey) Neighbors() []CellKey {
	dirs := AllDirections()
	neighbors := make([]CellKey, 0, len(dirs))
	for _, dir := range dirs {
		neighbors = append(neighbors, c.Neighbor(dir))
	}
	return neighbors
}

// ManhattanDistance returns the grid distance between two cells
func (c CellKey) ManhattanDistance(o CellKey) int {
	return abs(c.X-o.X) + abs(c.Z-o.Z)
}

// CellOf maps a world position to a cell by rounding pos/cellSize per axis.
// Non-positive cell sizes are clamped to a small epsilon.
func CellOf(pos Vec2, cellSize float64) CellKey {
	size := math.Max(cellSize, 0.0001)
	return CellKey{
		X: int(math.Round(pos.X / size)),
		Z: int(math.Round(pos.Z / size)),
	}
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
