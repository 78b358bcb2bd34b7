package generator

import (
	"math/rand"

	"labyrinth/pkg/engine/spatial"
	"labyrinth/pkg/game/catalog"
	"labyrinth/pkg/game/dungeon"
)

// Solver places one room against one open doorway
type Solver struct {
	grid     *OccupancyGrid
	index    spatial.OverlapQuery
	frontier *Frontier
	rng      *rand.Rand
	shrink   float64
	nextID   int
	stats    *dungeon.Stats
}

// NewSolver creates a solver over shared generation state. nextID is the
// ID given to the next room placed.
func NewSolver(grid *OccupancyGrid, index spatial.OverlapQuery, frontier *Frontier, rng *rand.Rand, shrink float64, nextID int, stats *dungeon.Stats) *Solver {
	if stats == nil {
		stats = &dungeon.Stats{}
	}
	return &Solver{
		grid:     grid,
		index:    index,
		frontier: frontier,
		rng:      rng,
		shrink:   shrink,
		nextID:   nextID,
		stats:    stats,
	}
}

// TryExpand attempts to attach a room from candidates to the open doorway.
// Each attempt picks a template at random, with repetition. The attempt is
// rejected when the snapped room's cell is taken or its shrunk footprint
// overlaps a placed room. On success the doorways are linked, the cell is
// claimed and the frontier updated. On failure nothing is changed; the
// caller decides what to do with the doorway.
func (s *Solver) TryExpand(open *dungeon.Doorway, candidates []*catalog.RoomTemplate, maxAttempts int) (*dungeon.Room, bool) {
	if open == nil || open.Connected || len(candidates) == 0 {
		return nil, false
	}

	need := open.Direction.Opposite()
	target := open.Position()

	for attempt := 0; attempt < maxAttempts; attempt++ {
		s.stats.Attempts++
		template := candidates[s.rng.Intn(len(candidates))]

		match, ok := template.Doorway(need)
		if !ok {
			continue
		}

		// No rotation: the room origin sits at the target minus the local doorway offset
		spawnPos := target.Sub(match.Local)
		cell := s.grid.ToCell(spawnPos)
		if s.grid.Claimed(cell) {
			s.stats.GridRejections++
			continue
		}

		room := dungeon.NewRoom(s.nextID, template, spawnPos, cell)
		footprint := room.Footprint()
		if hits := s.index.Overlapping(footprint.Shrink(s.shrink), room.ID); len(hits) > 0 {
			s.stats.OverlapRejections++
			continue
		}

		s.grid.Claim(cell)
		s.index.Insert(room.ID, footprint)
		s.nextID++

		opposite := room.Doorway(need)
		open.Connect(opposite)

		s.frontier.Remove(open)
		for _, d := range room.Doorways {
			if !d.Connected {
				s.frontier.Add(d)
			}
		}
		return room, true
	}

	return nil, false
}
