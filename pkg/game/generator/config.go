package generator

import (
	"fmt"
)

// Config holds the generation parameters
type Config struct {
	Seed         int64   // Random seed; the same seed reproduces the same layout
	MinRooms     int     // Target lower bound (best effort, never enforced)
	MaxRooms     int     // Hard upper bound on placed rooms, start room included
	BranchLength int     // Rooms per directional branch from the start room
	TriesPerDoor int     // Templates to try for each doorway before giving up on it
	CellSize     float64 // World size of one occupancy cell (the outer room size)
	BoundsShrink float64 // Footprint scale for overlap checks, tolerates snug tiling
	Debug        bool    // Emit a diagnostics line when generation finishes
}

// DefaultConfig returns the default generation parameters
func DefaultConfig() Config {
	return Config{
		Seed:         1,
		MinRooms:     20,
		MaxRooms:     40,
		BranchLength: 5,
		TriesPerDoor: 6,
		CellSize:     30,
		BoundsShrink: 0.98,
	}
}

// Validate checks the config for values generation cannot work with
func (c Config) Validate() error {
	if c.MaxRooms < 1 {
		return invalidConfig("MaxRooms", fmt.Sprintf("must be at least 1, got %d", c.MaxRooms))
	}
	if c.MinRooms < 0 {
		return invalidConfig("MinRooms", fmt.Sprintf("must not be negative, got %d", c.MinRooms))
	}
	if c.MinRooms > c.MaxRooms {
		return invalidConfig("MinRooms", fmt.Sprintf("%d exceeds MaxRooms %d", c.MinRooms, c.MaxRooms))
	}
	if c.BranchLength < 0 {
		return invalidConfig("BranchLength", fmt.Sprintf("must not be negative, got %d", c.BranchLength))
	}
	if c.TriesPerDoor < 1 {
		return invalidConfig("TriesPerDoor", fmt.Sprintf("must be at least 1, got %d", c.TriesPerDoor))
	}
	if c.CellSize <= 0 {
		return invalidConfig("CellSize", fmt.Sprintf("must be positive, got %g", c.CellSize))
	}
	if c.BoundsShrink <= 0 || c.BoundsShrink > 1 {
		return invalidConfig("BoundsShrink", fmt.Sprintf("must be in (0, 1], got %g", c.BoundsShrink))
	}
	return nil
}
