// Package dungeon contains the placed-room graph produced by generation:
// rooms, their doorways, doorway blockers and the finished layout.
package dungeon

import (
	"labyrinth/pkg/engine/world"
)

// DoorwayState tracks how a doorway was resolved
type DoorwayState int

const (
	DoorwayOpen    DoorwayState = iota // Not yet resolved
	DoorwayMatched                     // Connected to another room's opposite doorway
	DoorwaySealed                      // Plugged with a blocker
)

// String returns the state name
func (s DoorwayState) String() string {
	switch s {
	case DoorwayOpen:
		return "open"
	case DoorwayMatched:
		return "matched"
	case DoorwaySealed:
		return "sealed"
	default:
		return "unknown"
	}
}

// Doorway is a directional connection point owned by exactly one Room
type Doorway struct {
	Room      *Room
	Direction world.Direction
	Local     world.Vec2 // Position relative to the room origin
	Connected bool       // True once matched or sealed
	State     DoorwayState
	LinkedTo  *Doorway // The matched doorway, if any
	Blocker   *Blocker
}

// Position returns the doorway's world position
func (d *Doorway) Position() world.Vec2 {
	if d.Room == nil {
		return d.Local
	}
	return d.Room.Position.Add(d.Local)
}

// IsOpen returns true if the doorway is still unresolved
func (d *Doorway) IsOpen() bool {
	return !d.Connected
}

// Connect links two doorways as a matched pair
func (d *Doorway) Connect(other *Doorway) {
	d.Connected = true
	d.State = DoorwayMatched
	d.LinkedTo = other
	if other != nil {
		other.Connected = true
		other.State = DoorwayMatched
		other.LinkedTo = d
	}
}

// Blocker is the physical plug that closes a doorway
type Blocker struct {
	Active   bool
	Offset   world.Vec2 // Offset from the doorway when aligned
	Position world.Vec2
	Facing   world.Direction
}

// Activate aligns the blocker to the doorway and enables it
func (b *Blocker) Activate(d *Doorway) {
	if d == nil {
		return
	}
	b.Position = d.Position().Add(b.Offset)
	b.Facing = d.Direction
	b.Active = true
}

// Deactivate disables the blocker (safe to call anytime)
func (b *Blocker) Deactivate() {
	b.Active = false
}
