package spatial

import (
	"testing"

	"labyrinth/pkg/engine/world"
)

func box(x, z float64) world.Bounds {
	return world.NewBounds(world.Vec2{X: x, Z: z}, world.Vec2{X: 30, Z: 30})
}

func TestIndex_Overlapping(t *testing.T) {
	ix := NewIndex()
	ix.Insert(0, box(0, 0))
	ix.Insert(1, box(30, 0))
	ix.Insert(2, box(0, 30))

	hits := ix.Overlapping(box(15, 0), -1)
	if len(hits) != 2 || hits[0] != 0 || hits[1] != 1 {
		t.Errorf("Overlapping(15,0) = %v, want [0 1]", hits)
	}

	hits = ix.Overlapping(box(15, 0), 0)
	if len(hits) != 1 || hits[0] != 1 {
		t.Errorf("Overlapping(15,0) excluding 0 = %v, want [1]", hits)
	}

	if hits := ix.Overlapping(box(60, 60), -1); len(hits) != 0 {
		t.Errorf("Overlapping(60,60) = %v, want none", hits)
	}
}

func TestIndex_Len(t *testing.T) {
	var q OverlapQuery = NewIndex()
	q.Insert(7, box(0, 0))
	q.Insert(8, box(0, 0))

	ix := q.(*Index)
	if ix.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ix.Len())
	}
	// Duplicate footprints are kept; overlap decisions belong to the caller.
	if hits := ix.Overlapping(box(0, 0), 7); len(hits) != 1 || hits[0] != 8 {
		t.Errorf("Overlapping excluding 7 = %v, want [8]", hits)
	}
}
