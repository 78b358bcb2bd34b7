// Package boss picks the boss room of a finished layout and runs the
// seal-on-engage flow for it.
package boss

import (
	"github.com/zyedidia/generic/queue"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/dungeon"
)

// DefaultMinDistance is the default minimum hop distance from the start room
const DefaultMinDistance = 5

// Selector chooses the room farthest from the start over grid adjacency
type Selector struct {
	CellSize    float64 // Grid size rooms are authored to tile
	MinDistance int     // Preferred minimum hop distance from the start
}

// Selection is the outcome of a boss room search
type Selection struct {
	Room     *dungeon.Room
	Start    *dungeon.Room
	Distance int                   // Hop distance from Start to Room
	Hops     map[*dungeon.Room]int // Hop distance of every reached room
}

// Select runs a breadth-first search from the room nearest the origin and
// marks the room with the greatest hop distance at or beyond MinDistance.
// If no room is that far, the farthest reached room is used. Returns false
// when the layout has no rooms.
func (s Selector) Select(l *dungeon.Layout) (Selection, bool) {
	if l == nil || len(l.Rooms) == 0 {
		return Selection{}, false
	}

	cellSize := s.CellSize
	if cellSize <= 0 {
		cellSize = l.CellSize
	}

	lookup := make(map[world.CellKey]*dungeon.Room, len(l.Rooms))
	for _, r := range l.Rooms {
		lookup[world.CellOf(r.Position, cellSize)] = r
	}

	start := nearestOrigin(l.Rooms)
	order, hops := searchHops(start, lookup, cellSize)

	var chosen *dungeon.Room
	bestDist := -1
	for _, r := range order {
		if d := hops[r]; d >= s.MinDistance && d > bestDist {
			bestDist = d
			chosen = r
		}
	}
	if chosen == nil {
		for _, r := range order {
			if d := hops[r]; d > bestDist {
				bestDist = d
				chosen = r
			}
		}
	}
	if chosen == nil {
		return Selection{}, false
	}

	l.MarkBoss(chosen)

	return Selection{
		Room:     chosen,
		Start:    start,
		Distance: bestDist,
		Hops:     hops,
	}, true
}

// nearestOrigin returns the room closest to the world origin, first in
// placement order on ties
func nearestOrigin(rooms []*dungeon.Room) *dungeon.Room {
	var start *dungeon.Room
	best := -1.0
	for _, r := range rooms {
		d := r.Position.LengthSquared()
		if start == nil || d < best {
			best = d
			start = r
		}
	}
	return start
}

// searchHops returns the rooms reachable from start in visit order along
// with their hop distances
func searchHops(start *dungeon.Room, lookup map[world.CellKey]*dungeon.Room, cellSize float64) ([]*dungeon.Room, map[*dungeon.Room]int) {
	hops := map[*dungeon.Room]int{start: 0}
	order := []*dungeon.Room{start}

	q := queue.New[*dungeon.Room]()
	q.Enqueue(start)

	for !q.Empty() {
		current := q.Dequeue()
		cell := world.CellOf(current.Position, cellSize)

		for _, n := range cell.Neighbors() {
			neighbor, ok := lookup[n]
			if !ok {
				continue
			}
			if _, seen := hops[neighbor]; seen {
				continue
			}
			hops[neighbor] = hops[current] + 1
			order = append(order, neighbor)
			q.Enqueue(neighbor)
		}
	}

	return order, hops
}
