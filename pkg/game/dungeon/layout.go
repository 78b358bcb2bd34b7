package dungeon

import (
	"labyrinth/pkg/engine/world"
)

// Stats are generation diagnostics. Not a stable contract.
type Stats struct {
	Rooms             int // Rooms placed, including the start room
	BranchRooms       int // Rooms placed during branch growth
	FillRooms         int // Rooms placed during random fill
	DoorwaysSealed    int
	DoorwaysAbandoned int // Frontier doorways given up on after exhausting attempts
	Attempts          int // Placement attempts across all doorways
	GridRejections    int // Attempts rejected by an occupied cell
	OverlapRejections int // Attempts rejected by the overlap query
}

// Layout is a finished generation result
type Layout struct {
	Seed     int64
	CellSize float64
	Rooms    []*Room // In placement order; Rooms[0] is the start room
	Start    *Room
	BossRoom *Room
	Stats    Stats
}

// SpawnPoint returns the centre of the start room footprint
func (l *Layout) SpawnPoint() world.Vec2 {
	if l == nil || l.Start == nil {
		return world.Vec2{}
	}
	return l.Start.Footprint().Center
}

// RoomAt returns the room occupying cell, or nil
func (l *Layout) RoomAt(cell world.CellKey) *Room {
	for _, r := range l.Rooms {
		if r.Cell == cell {
			return r
		}
	}
	return nil
}

// MarkBoss moves the boss marker to r. At most one room carries it.
func (l *Layout) MarkBoss(r *Room) {
	if l.BossRoom != nil {
		l.BossRoom.Boss = false
	}
	l.BossRoom = r
	if r != nil {
		r.Boss = true
	}
}

// Doorways returns every doorway of every room
func (l *Layout) Doorways() []*Doorway {
	var doors []*Doorway
	for _, r := range l.Rooms {
		doors = append(doors, r.Doorways...)
	}
	return doors
}

// CountDoorways returns the number of doorways in the given state
func (l *Layout) CountDoorways(state DoorwayState) int {
	n := 0
	for _, d := range l.Doorways() {
		if d.State == state {
			n++
		}
	}
	return n
}

// Bounds returns the combined footprint of all rooms
func (l *Layout) Bounds() world.Bounds {
	var b world.Bounds
	for i, r := range l.Rooms {
		if i == 0 {
			b = r.Footprint()
			continue
		}
		b = b.Encapsulate(r.Footprint())
	}
	return b
}
