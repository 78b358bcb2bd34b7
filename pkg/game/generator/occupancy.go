package generator

import (
	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/world"
)

// OccupancyGrid is a coarse pre-filter: each placed room claims the cell its
// origin rounds to, and a second room mapping to the same cell is rejected
// even if the precise footprints would fit. Cells are never released.
type OccupancyGrid struct {
	cellSize float64
	cells    mapset.Set[world.CellKey]
}

// NewOccupancyGrid creates an empty grid
func NewOccupancyGrid(cellSize float64) *OccupancyGrid {
	return &OccupancyGrid{
		cellSize: cellSize,
		cells:    mapset.New[world.CellKey](),
	}
}

// ToCell maps a world position to its cell
func (g *OccupancyGrid) ToCell(pos world.Vec2) world.CellKey {
	return world.CellOf(pos, g.cellSize)
}

// Claim marks a cell occupied. Returns false if it was already claimed.
func (g *OccupancyGrid) Claim(key world.CellKey) bool {
	if g.cells.Has(key) {
		return false
	}
	g.cells.Put(key)
	return true
}

// Claimed returns true if the cell is occupied
func (g *OccupancyGrid) Claimed(key world.CellKey) bool {
	return g.cells.Has(key)
}

// Len returns the number of claimed cells
func (g *OccupancyGrid) Len() int {
	return g.cells.Size()
}
