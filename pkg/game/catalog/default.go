package catalog

import (
	"fmt"
	"strings"

	"labyrinth/pkg/engine/world"
)

// DefaultCellSize is the outer size of the built-in square rooms
const DefaultCellSize = 30.0

// Default builds a catalog of square rooms of the given size: one template
// for every non-empty combination of doorways, plus a four-way start room.
// Doorways sit in the middle of each wall.
func Default(cellSize float64) *Catalog {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}

	c := &Catalog{
		Name:        "default",
		Description: "Square rooms covering every doorway combination",
		CellSize:    cellSize,
	}

	dirs := world.AllDirections()
	for mask := 1; mask < 1<<len(dirs); mask++ {
		var open []world.Direction
		for i, dir := range dirs {
			if mask&(1<<i) != 0 {
				open = append(open, dir)
			}
		}
		c.Rooms = append(c.Rooms, SquareRoom(templateName(open), cellSize, open...))
	}

	c.StartRoom = SquareRoom("start_hub", cellSize, dirs...)
	c.StartRoom.Description = "Entrance hall"
	return c
}

// SquareRoom creates a square template of the given size with a doorway in
// the middle of each listed wall
func SquareRoom(name string, size float64, doors ...world.Direction) *RoomTemplate {
	half := size / 2
	bounds := world.NewBounds(world.Vec2{}, world.Vec2{X: size, Z: size})
	t := &RoomTemplate{
		Name:   name,
		Bounds: &bounds,
	}
	for _, dir := range doors {
		dx, dz := dir.Step()
		t.Doorways = append(t.Doorways, DoorwayDef{
			Direction: dir,
			Local:     world.Vec2{X: float64(dx) * half, Z: float64(dz) * half},
		})
	}
	return t
}

// templateName builds a name like "room_NES" from the open directions
func templateName(open []world.Direction) string {
	var sb strings.Builder
	for _, dir := range open {
		sb.WriteString(dir.String()[:1])
	}
	switch len(open) {
	case 1:
		return fmt.Sprintf("deadend_%s", sb.String())
	case 4:
		return fmt.Sprintf("cross_%s", sb.String())
	default:
		return fmt.Sprintf("room_%s", sb.String())
	}
}
