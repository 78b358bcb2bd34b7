package world

import "testing"

func TestBounds_IntersectsIgnoresTouchingEdges(t *testing.T) {
	a := NewBounds(Vec2{X: 0, Z: 0}, Vec2{X: 30, Z: 30})
	touching := NewBounds(Vec2{X: 30, Z: 0}, Vec2{X: 30, Z: 30})
	overlapping := NewBounds(Vec2{X: 20, Z: 5}, Vec2{X: 30, Z: 30})
	apart := NewBounds(Vec2{X: 100, Z: 0}, Vec2{X: 30, Z: 30})

	if a.Intersects(touching) {
		t.Error("boxes sharing an edge should not intersect")
	}
	if !a.Intersects(overlapping) || !overlapping.Intersects(a) {
		t.Error("overlapping boxes should intersect both ways")
	}
	if a.Intersects(apart) {
		t.Error("distant boxes should not intersect")
	}
}

func TestBounds_ShrinkKeepsCenter(t *testing.T) {
	b := NewBounds(Vec2{X: 30, Z: -30}, Vec2{X: 30, Z: 30}).Shrink(0.98)
	if !b.Center.ApproxEqual(Vec2{X: 30, Z: -30}, 1e-9) {
		t.Errorf("Shrink moved centre to %v", b.Center)
	}
	if !b.Size().ApproxEqual(Vec2{X: 29.4, Z: 29.4}, 1e-9) {
		t.Errorf("Shrink size = %v, want 29.4x29.4", b.Size())
	}

	// Shrunk neighbours no longer touch, but a shrunk box on top of a full one still overlaps.
	full := NewBounds(Vec2{}, Vec2{X: 30, Z: 30})
	if !full.Intersects(NewBounds(Vec2{X: 1, Z: 0}, Vec2{X: 30, Z: 30}).Shrink(0.98)) {
		t.Error("shrunk box offset by 1 should still overlap the full box")
	}
}

func TestBounds_TranslateAndEncapsulate(t *testing.T) {
	a := NewBounds(Vec2{}, Vec2{X: 10, Z: 10})
	b := a.Translate(Vec2{X: 20, Z: 0})
	if !b.Min().ApproxEqual(Vec2{X: 15, Z: -5}, 1e-9) {
		t.Errorf("translated Min = %v, want 15,-5", b.Min())
	}

	u := a.Encapsulate(b)
	if !u.Min().ApproxEqual(Vec2{X: -5, Z: -5}, 1e-9) || !u.Max().ApproxEqual(Vec2{X: 25, Z: 5}, 1e-9) {
		t.Errorf("Encapsulate = %v..%v, want -5,-5..25,5", u.Min(), u.Max())
	}
	if a.IsEmpty() || !(Bounds{}).IsEmpty() {
		t.Error("IsEmpty mismatch")
	}
}
