package dungeon

import (
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/catalog"
)

// Room is a template instantiated at a world position
type Room struct {
	ID       int
	Template *catalog.RoomTemplate
	Position world.Vec2
	Cell     world.CellKey
	Doorways []*Doorway
	Seals    *SealManager
	Boss     bool // Boss room marker
}

// NewRoom instantiates a template at pos. All doorways start open with an
// inactive blocker.
func NewRoom(id int, t *catalog.RoomTemplate, pos world.Vec2, cell world.CellKey) *Room {
	r := &Room{
		ID:       id,
		Template: t,
		Position: pos,
		Cell:     cell,
	}
	for _, def := range t.Doorways {
		r.Doorways = append(r.Doorways, &Doorway{
			Room:      r,
			Direction: def.Direction,
			Local:     def.Local,
			Blocker:   &Blocker{Offset: def.BlockerOffset},
		})
	}
	r.Seals = NewSealManager(r)
	return r
}

// Name returns the template name
func (r *Room) Name() string {
	if r.Template == nil {
		return ""
	}
	return r.Template.Name
}

// Footprint returns the room footprint in world space
func (r *Room) Footprint() world.Bounds {
	return r.Template.Footprint().Translate(r.Position)
}

// Doorway returns the first doorway facing dir, or nil
func (r *Room) Doorway(dir world.Direction) *Doorway {
	for _, d := range r.Doorways {
		if d.Direction == dir {
			return d
		}
	}
	return nil
}

// OpenDoorways returns the doorways that are not yet connected
func (r *Room) OpenDoorways() []*Doorway {
	var open []*Doorway
	for _, d := range r.Doorways {
		if d.IsOpen() {
			open = append(open, d)
		}
	}
	return open
}

// Neighbors returns the rooms linked through matched doorways
func (r *Room) Neighbors() []*Room {
	var neighbors []*Room
	for _, d := range r.Doorways {
		if d.State == DoorwayMatched && d.LinkedTo != nil && d.LinkedTo.Room != nil {
			neighbors = append(neighbors, d.LinkedTo.Room)
		}
	}
	return neighbors
}
