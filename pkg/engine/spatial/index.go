// Package spatial provides overlap queries over placed footprints.
package spatial

import (
	"labyrinth/pkg/engine/world"
)

// OverlapQuery finds previously registered footprints that intersect a box.
// Hosts with their own collision system can supply a different implementation.
type OverlapQuery interface {
	// Insert registers a footprint under id
	Insert(id int, b world.Bounds)
	// Overlapping returns the ids whose footprints intersect b, skipping exclude
	Overlapping(b world.Bounds, exclude int) []int
}

type entry struct {
	id     int
	bounds world.Bounds
}

// Index is a flat in-memory OverlapQuery. Entries are scanned in insertion order.
type Index struct {
	entries []entry
}

// NewIndex creates an empty index
func NewIndex() *Index {
	return &Index{}
}

// Insert registers a footprint under id
func (ix *Index) Insert(id int, b world.Bounds) {
	ix.entries = append(ix.entries, entry{id: id, bounds: b})
}

// Overlapping returns the ids whose footprints intersect b, skipping exclude
func (ix *Index) Overlapping(b world.Bounds, exclude int) []int {
	var hits []int
	for _, e := range ix.entries {
		if e.id == exclude {
			continue
		}
		if e.bounds.Intersects(b) {
			hits = append(hits, e.id)
		}
	}
	return hits
}

// Len returns the number of registered footprints
func (ix *Index) Len() int {
	return len(ix.entries)
}
