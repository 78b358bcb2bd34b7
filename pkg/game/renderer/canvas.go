package renderer

import (
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/dungeon"
)

// Map glyphs shared by every backend
const (
	GlyphEmpty      = ' '
	GlyphRoom       = 'o'
	GlyphStart      = 'S'
	GlyphBoss       = 'B'
	GlyphLinkEastW  = '-'
	GlyphLinkNorthS = '|'
)

// Canvas lays the layout out as glyph rows, north at the top. Each room
// occupies one glyph; matched doorway pairs between grid neighbours are
// drawn as links in the gaps between them.
func Canvas(l *dungeon.Layout) [][]rune {
	if l == nil || len(l.Rooms) == 0 {
		return nil
	}

	minX, maxX := l.Rooms[0].Cell.X, l.Rooms[0].Cell.X
	minZ, maxZ := l.Rooms[0].Cell.Z, l.Rooms[0].Cell.Z
	for _, r := range l.Rooms[1:] {
		minX = min(minX, r.Cell.X)
		maxX = max(maxX, r.Cell.X)
		minZ = min(minZ, r.Cell.Z)
		maxZ = max(maxZ, r.Cell.Z)
	}

	rows := 2*(maxZ-minZ) + 1
	cols := 2*(maxX-minX) + 1
	canvas := make([][]rune, rows)
	for i := range canvas {
		canvas[i] = make([]rune, cols)
		for j := range canvas[i] {
			canvas[i][j] = GlyphEmpty
		}
	}

	at := func(c world.CellKey) (int, int) {
		return 2 * (maxZ - c.Z), 2 * (c.X - minX)
	}

	for _, r := range l.Rooms {
		row, col := at(r.Cell)
		canvas[row][col] = roomGlyph(l, r)

		for _, d := range r.Doorways {
			if d.State != dungeon.DoorwayMatched || d.LinkedTo == nil || d.LinkedTo.Room == nil {
				continue
			}
			if d.LinkedTo.Room.Cell != r.Cell.Neighbor(d.Direction) {
				continue
			}
			dx, dz := d.Direction.Step()
			lr, lc := row-dz, col+dx
			if dz != 0 {
				canvas[lr][lc] = GlyphLinkNorthS
			} else {
				canvas[lr][lc] = GlyphLinkEastW
			}
		}
	}

	return canvas
}

// roomGlyph returns the glyph for a room
func roomGlyph(l *dungeon.Layout, r *dungeon.Room) rune {
	switch {
	case r == l.Start:
		return GlyphStart
	case r.Boss:
		return GlyphBoss
	default:
		return GlyphRoom
	}
}
