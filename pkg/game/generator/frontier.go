package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/game/dungeon"
)

// Frontier is the set of open doorways eligible for expansion, kept in
// insertion order so random picks replay identically for a given seed
type Frontier struct {
	doors   []*dungeon.Doorway
	members mapset.Set[*dungeon.Doorway]
}

// NewFrontier creates an empty frontier
func NewFrontier() *Frontier {
	return &Frontier{members: mapset.New[*dungeon.Doorway]()}
}

// Add appends a doorway unless it is already present
func (f *Frontier) Add(d *dungeon.Doorway) {
	if d == nil || f.members.Has(d) {
		return
	}
	f.members.Put(d)
	f.doors = append(f.doors, d)
}

// Remove drops a doorway, preserving the order of the rest
func (f *Frontier) Remove(d *dungeon.Doorway) bool {
	if !f.members.Has(d) {
		return false
	}
	f.members.Remove(d)
	for i, existing := range f.doors {
		if existing == d {
			f.doors = append(f.doors[:i], f.doors[i+1:]...)
			break
		}
	}
	return true
}

// Has returns true if the doorway is in the frontier
func (f *Frontier) Has(d *dungeon.Doorway) bool {
	return f.members.Has(d)
}

// Len returns the number of open doorways
func (f *Frontier) Len() int {
	return len(f.doors)
}

// Pick returns a uniformly random doorway, or nil when empty
func (f *Frontier) Pick(rng *rand.Rand) *dungeon.Doorway {
	if len(f.doors) == 0 {
		return nil
	}
	return f.doors[rng.Intn(len(f.doors))]
}

// Doorways returns a copy of the frontier in insertion order
func (f *Frontier) Doorways() []*dungeon.Doorway {
	out := make([]*dungeon.Doorway, len(f.doors))
	copy(out, f.doors)
	return out
}
