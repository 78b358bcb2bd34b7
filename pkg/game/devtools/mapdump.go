// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"labyrinth/pkg/game/dungeon"
	"labyrinth/pkg/game/renderer"
)

const mapDumpFilename = "map.txt"

// WriteMapDump writes a full debug dump of l: metadata, legend, the room map,
// and per-room doorway state. Format is human-readable (sections, key: value).
func WriteMapDump(w io.Writer, l *dungeon.Layout) error {
	if l == nil {
		return errors.New("no layout")
	}

	start := "-"
	if l.Start != nil {
		start = l.Start.Cell.String()
	}
	boss := "-"
	if l.BossRoom != nil {
		boss = l.BossRoom.Cell.String()
	}
	spawn := l.SpawnPoint()
	extent := l.Bounds()

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (room layout, doorways, seals) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", l.Seed)
	fmt.Fprintf(w, "cell_size: %g\n", l.CellSize)
	fmt.Fprintf(w, "coordinate_system: x,z cells (x=east, z=north, origin=start room)\n")
	fmt.Fprintf(w, "rooms: %d\n", len(l.Rooms))
	fmt.Fprintf(w, "branch_rooms: %d\n", l.Stats.BranchRooms)
	fmt.Fprintf(w, "fill_rooms: %d\n", l.Stats.FillRooms)
	fmt.Fprintf(w, "start_cell: %s\n", start)
	fmt.Fprintf(w, "boss_cell: %s\n", boss)
	fmt.Fprintf(w, "world_bounds: %g,%g..%g,%g\n", extent.Min().X, extent.Min().Z, extent.Max().X, extent.Max().Z)
	fmt.Fprintf(w, "spawn_point: %g,%g\n", spawn.X, spawn.Z)
	fmt.Fprintf(w, "doorways_matched: %d\n", l.CountDoorways(dungeon.DoorwayMatched))
	fmt.Fprintf(w, "doorways_sealed: %d\n", l.CountDoorways(dungeon.DoorwaySealed))
	fmt.Fprintf(w, "doorways_open: %d\n", l.CountDoorways(dungeon.DoorwayOpen))
	fmt.Fprintf(w, "doorways_abandoned: %d\n", l.Stats.DoorwaysAbandoned)
	fmt.Fprintf(w, "placement_attempts: %d\n", l.Stats.Attempts)
	fmt.Fprintf(w, "grid_rejections: %d\n", l.Stats.GridRejections)
	fmt.Fprintf(w, "overlap_rejections: %d\n", l.Stats.OverlapRejections)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (map symbols) ---")
	fmt.Fprintf(w, "%c = start room  %c = boss room  %c = room  %c = east/west link  %c = north/south link\n",
		renderer.GlyphStart, renderer.GlyphBoss, renderer.GlyphRoom, renderer.GlyphLinkEastW, renderer.GlyphLinkNorthS)
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map (north at top) ---")
	for _, row := range renderer.Canvas(l) {
		fmt.Fprintln(w, string(row))
	}
	fmt.Fprintln(w, "")

	// --- Rooms ---
	fmt.Fprintln(w, "--- Rooms (placement order) ---")
	for _, r := range l.Rooms {
		fmt.Fprintf(w, "  id: %d name: %q cell: %s position: %g,%g boss: %v sealed: %v\n",
			r.ID, r.Name(), r.Cell.String(), r.Position.X, r.Position.Z, r.Boss, r.Seals.IsSealed())
		var neighbors []string
		for _, n := range r.Neighbors() {
			neighbors = append(neighbors, strconv.Itoa(n.ID))
		}
		if len(neighbors) == 0 {
			neighbors = append(neighbors, "-")
		}
		fmt.Fprintf(w, "    neighbors: %s\n", strings.Join(neighbors, ","))
		for _, d := range r.Doorways {
			linked := "-"
			if d.LinkedTo != nil && d.LinkedTo.Room != nil {
				linked = fmt.Sprintf("%d/%s", d.LinkedTo.Room.ID, d.LinkedTo.Direction)
			}
			fmt.Fprintf(w, "    doorway: %s state: %s linked_to: %s blocker_active: %v\n",
				d.Direction, d.State, linked, d.Blocker != nil && d.Blocker.Active)
		}
	}

	return nil
}

// DumpMapToFile writes WriteMapDump output to map.txt in dir and returns the absolute path.
func DumpMapToFile(l *dungeon.Layout, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create map dump: %w", err)
	}
	defer f.Close()

	if err := WriteMapDump(f, l); err != nil {
		return "", err
	}

	return absPath, nil
}
