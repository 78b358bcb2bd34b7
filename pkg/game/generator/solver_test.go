package generator

import (
	"math/rand"
	"testing"

	"labyrinth/pkg/engine/spatial"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/catalog"
	"labyrinth/pkg/game/dungeon"
)

// solverFixture places a four-way start room at the origin and returns a
// solver with the start doorways on the frontier.
func solverFixture(t *testing.T) (*Solver, *dungeon.Room, *OccupancyGrid, *spatial.Index, *Frontier, *dungeon.Stats) {
	t.Helper()
	grid := NewOccupancyGrid(30)
	index := spatial.NewIndex()
	frontier := NewFrontier()
	stats := &dungeon.Stats{}

	start := dungeon.NewRoom(0, catalog.SquareRoom("hub", 30, world.AllDirections()...), world.Vec2{}, world.CellKey{})
	grid.Claim(start.Cell)
	index.Insert(start.ID, start.Footprint())
	for _, d := range start.Doorways {
		frontier.Add(d)
	}

	s := NewSolver(grid, index, frontier, rand.New(rand.NewSource(1)), 0.98, 1, stats)
	return s, start, grid, index, frontier, stats
}

func TestOccupancyGrid_Claim(t *testing.T) {
	g := NewOccupancyGrid(30)
	key := g.ToCell(world.Vec2{X: 31, Z: -29})
	if key != (world.CellKey{X: 1, Z: -1}) {
		t.Fatalf("ToCell = %v, want 1,-1", key)
	}
	if !g.Claim(key) {
		t.Error("first Claim should succeed")
	}
	if g.Claim(key) {
		t.Error("second Claim of the same cell should fail")
	}
	if !g.Claimed(key) || g.Len() != 1 {
		t.Errorf("Claimed = %v, Len = %d", g.Claimed(key), g.Len())
	}
}

func TestFrontier_OrderAndMembership(t *testing.T) {
	r := dungeon.NewRoom(0, catalog.SquareRoom("hub", 30, world.AllDirections()...), world.Vec2{}, world.CellKey{})
	f := NewFrontier()
	if f.Pick(rand.New(rand.NewSource(1))) != nil {
		t.Error("Pick on empty frontier should return nil")
	}

	for _, d := range r.Doorways {
		f.Add(d)
	}
	f.Add(r.Doorways[0])
	if f.Len() != 4 {
		t.Fatalf("Len = %d after duplicate Add, want 4", f.Len())
	}

	if !f.Remove(r.Doorways[1]) {
		t.Error("Remove of a member returned false")
	}
	if f.Remove(r.Doorways[1]) {
		t.Error("second Remove returned true")
	}
	got := f.Doorways()
	want := []*dungeon.Doorway{r.Doorways[0], r.Doorways[2], r.Doorways[3]}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Doorways()[%d] = %v, want %v", i, got[i].Direction, want[i].Direction)
		}
	}
	if f.Has(r.Doorways[1]) {
		t.Error("removed doorway still reported by Has")
	}
}

func TestSolver_TryExpandPlacesAndLinks(t *testing.T) {
	s, start, grid, index, frontier, stats := solverFixture(t)
	corridor := catalog.SquareRoom("room_EW", 30, world.East, world.West)

	east := start.Doorway(world.East)
	room, ok := s.TryExpand(east, []*catalog.RoomTemplate{corridor}, 1)
	if !ok {
		t.Fatal("TryExpand failed on an empty neighbourhood")
	}

	if room.ID != 1 || room.Cell != (world.CellKey{X: 1, Z: 0}) {
		t.Errorf("room id %d cell %v, want 1 at 1,0", room.ID, room.Cell)
	}
	if !room.Position.ApproxEqual(world.Vec2{X: 30, Z: 0}, 1e-9) {
		t.Errorf("room position %v, want 30,0", room.Position)
	}

	west := room.Doorway(world.West)
	if east.LinkedTo != west || west.LinkedTo != east {
		t.Error("doorways not linked both ways")
	}
	if !east.Position().ApproxEqual(west.Position(), 0.01) {
		t.Errorf("linked doorways at %v and %v", east.Position(), west.Position())
	}

	if frontier.Has(east) || frontier.Has(west) {
		t.Error("linked doorways should leave the frontier")
	}
	if !frontier.Has(room.Doorway(world.East)) {
		t.Error("new room's open doorway should join the frontier")
	}
	if frontier.Len() != 4 {
		t.Errorf("frontier Len = %d, want 4", frontier.Len())
	}
	if !grid.Claimed(room.Cell) || index.Len() != 2 {
		t.Errorf("cell claimed = %v, index Len = %d", grid.Claimed(room.Cell), index.Len())
	}
	if stats.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", stats.Attempts)
	}
}

func TestSolver_GridRejectionLeavesStateUnchanged(t *testing.T) {
	s, start, grid, _, frontier, stats := solverFixture(t)
	grid.Claim(world.CellKey{X: 1, Z: 0})
	corridor := catalog.SquareRoom("room_EW", 30, world.East, world.West)

	east := start.Doorway(world.East)
	if _, ok := s.TryExpand(east, []*catalog.RoomTemplate{corridor}, 3); ok {
		t.Fatal("TryExpand succeeded into a claimed cell")
	}
	if stats.Attempts != 3 || stats.GridRejections != 3 {
		t.Errorf("Attempts = %d GridRejections = %d, want 3/3", stats.Attempts, stats.GridRejections)
	}
	if east.Connected || !frontier.Has(east) || frontier.Len() != 4 {
		t.Error("failed expansion should not touch the doorway or frontier")
	}
}

func TestSolver_OverlapRejection(t *testing.T) {
	s, start, _, index, _, stats := solverFixture(t)
	// A foreign footprint the grid does not know about, e.g. a hand-placed set piece.
	index.Insert(99, world.NewBounds(world.Vec2{X: 40, Z: 0}, world.Vec2{X: 20, Z: 20}))
	corridor := catalog.SquareRoom("room_EW", 30, world.East, world.West)

	if _, ok := s.TryExpand(start.Doorway(world.East), []*catalog.RoomTemplate{corridor}, 2); ok {
		t.Fatal("TryExpand succeeded over an overlapping footprint")
	}
	if stats.OverlapRejections != 2 || stats.GridRejections != 0 {
		t.Errorf("OverlapRejections = %d GridRejections = %d, want 2/0", stats.OverlapRejections, stats.GridRejections)
	}
}

func TestSolver_SnugNeighboursAreAccepted(t *testing.T) {
	s, start, _, _, _, _ := solverFixture(t)
	corridor := catalog.SquareRoom("room_NS", 30, world.North, world.South)
	elbow := catalog.SquareRoom("room_ES", 30, world.East, world.South)

	if _, ok := s.TryExpand(start.Doorway(world.North), []*catalog.RoomTemplate{corridor}, 1); !ok {
		t.Fatal("north placement failed")
	}
	west, ok := s.TryExpand(start.Doorway(world.West), []*catalog.RoomTemplate{catalog.SquareRoom("room_NE", 30, world.North, world.East)}, 1)
	if !ok {
		t.Fatal("west placement failed")
	}
	// The diagonal cell touches the west and north rooms along edges only.
	diagonal, ok := s.TryExpand(west.Doorway(world.North), []*catalog.RoomTemplate{elbow}, 1)
	if !ok {
		t.Fatal("placement touching neighbours edge to edge should be accepted")
	}
	if diagonal.Cell != (world.CellKey{X: -1, Z: 1}) {
		t.Errorf("diagonal room at %v, want -1,1", diagonal.Cell)
	}
}

func TestSolver_IgnoresConnectedDoorway(t *testing.T) {
	s, start, _, _, _, stats := solverFixture(t)
	d := start.Doorway(world.South)
	d.Connected = true
	if _, ok := s.TryExpand(d, []*catalog.RoomTemplate{catalog.SquareRoom("room_NS", 30, world.North, world.South)}, 4); ok {
		t.Error("TryExpand on a connected doorway should fail")
	}
	if stats.Attempts != 0 {
		t.Errorf("Attempts = %d, want 0", stats.Attempts)
	}
}
