package renderer

import (
	"testing"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/catalog"
	"labyrinth/pkg/game/dungeon"
)

// lLayout builds start(0,0) linked east to a boss room and north to a plain room
func lLayout() *dungeon.Layout {
	tmpl := catalog.SquareRoom("cross", 30, world.AllDirections()...)
	start := dungeon.NewRoom(0, tmpl, world.Vec2{}, world.CellKey{})
	east := dungeon.NewRoom(1, tmpl, world.Vec2{X: 30}, world.CellKey{X: 1})
	north := dungeon.NewRoom(2, tmpl, world.Vec2{Z: 30}, world.CellKey{Z: 1})
	start.Doorway(world.East).Connect(east.Doorway(world.West))
	start.Doorway(world.North).Connect(north.Doorway(world.South))

	l := &dungeon.Layout{CellSize: 30, Rooms: []*dungeon.Room{start, east, north}, Start: start}
	l.MarkBoss(east)
	return l
}

func TestCanvas(t *testing.T) {
	canvas := Canvas(lLayout())
	want := []string{
		"o  ",
		"|  ",
		"S-B",
	}
	if len(canvas) != len(want) {
		t.Fatalf("canvas has %d rows, want %d", len(canvas), len(want))
	}
	for i, row := range canvas {
		if string(row) != want[i] {
			t.Errorf("row %d = %q, want %q", i, string(row), want[i])
		}
	}
}

func TestCanvas_UnlinkedNeighboursHaveNoLink(t *testing.T) {
	l := lLayout()
	for _, d := range []*dungeon.Doorway{l.Rooms[0].Doorway(world.North), l.Rooms[2].Doorway(world.South)} {
		d.Connected = true
		d.State = dungeon.DoorwaySealed
		d.LinkedTo = nil
	}

	canvas := Canvas(l)
	if canvas[1][0] != GlyphEmpty {
		t.Errorf("gap between unlinked rooms = %q, want empty", canvas[1][0])
	}
}

func TestCanvas_Empty(t *testing.T) {
	if Canvas(nil) != nil || Canvas(&dungeon.Layout{}) != nil {
		t.Error("Canvas of an empty layout should be nil")
	}
}

func TestFormatText_WithoutRenderer(t *testing.T) {
	prev := Current
	SetRenderer(nil)
	defer SetRenderer(prev)

	if got := FormatText("written to %s", "map.txt"); got != "written to map.txt" {
		t.Errorf("FormatText = %q, want plain formatting", got)
	}
}
