package world

import "testing"

func TestDirection_Opposite(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Direction
	}{
		{North, South},
		{South, North},
		{East, West},
		{West, East},
	}
	for _, tt := range tests {
		if got := tt.dir.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.dir, got, tt.want)
		}
		if got := tt.dir.Opposite().Opposite(); got != tt.dir {
			t.Errorf("%v.Opposite().Opposite() = %v, want %v", tt.dir, got, tt.dir)
		}
	}
}

func TestDirection_StepMatchesNeighbor(t *testing.T) {
	origin := CellKey{X: 0, Z: 0}
	want := map[Direction]CellKey{
		North: {X: 0, Z: 1},
		East:  {X: 1, Z: 0},
		South: {X: 0, Z: -1},
		West:  {X: -1, Z: 0},
	}
	for _, dir := range AllDirections() {
		if got := origin.Neighbor(dir); got != want[dir] {
			t.Errorf("Neighbor(%v) = %v, want %v", dir, got, want[dir])
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, name := range []string{"north", "N", " North "} {
		d, err := ParseDirection(name)
		if err != nil || d != North {
			t.Errorf("ParseDirection(%q) = %v, %v; want North", name, d, err)
		}
	}
	if _, err := ParseDirection("up"); err == nil {
		t.Error("ParseDirection(\"up\") returned nil error")
	}
}

func TestDirection_TextRoundTrip(t *testing.T) {
	text, err := West.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != "west" {
		t.Errorf("MarshalText = %q, want \"west\"", text)
	}
	var d Direction
	if err := d.UnmarshalText(text); err != nil || d != West {
		t.Errorf("UnmarshalText(%q) = %v, %v", text, d, err)
	}
	if _, err := Direction(9).MarshalText(); err == nil {
		t.Error("MarshalText on invalid direction returned nil error")
	}
}

func TestCellOf_Rounds(t *testing.T) {
	tests := []struct {
		pos  Vec2
		want CellKey
	}{
		{Vec2{X: 0, Z: 0}, CellKey{0, 0}},
		{Vec2{X: 29.9, Z: -30.2}, CellKey{1, -1}},
		{Vec2{X: 14, Z: 16}, CellKey{0, 1}},
		{Vec2{X: -60, Z: 90}, CellKey{-2, 3}},
	}
	for _, tt := range tests {
		if got := CellOf(tt.pos, 30); got != tt.want {
			t.Errorf("CellOf(%v, 30) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestCellKey_ManhattanDistance(t *testing.T) {
	a := CellKey{X: -1, Z: 2}
	b := CellKey{X: 2, Z: -2}
	if got := a.ManhattanDistance(b); got != 7 {
		t.Errorf("ManhattanDistance = %d, want 7", got)
	}
	if len(a.Neighbors()) != 4 {
		t.Errorf("Neighbors() returned %d cells, want 4", len(a.Neighbors()))
	}
}
