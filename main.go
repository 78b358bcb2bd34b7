package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"labyrinth/pkg/engine/terminal"
	"labyrinth/pkg/game/boss"
	"labyrinth/pkg/game/catalog"
	"labyrinth/pkg/game/devtools"
	"labyrinth/pkg/game/dungeon"
	"labyrinth/pkg/game/generator"
	"labyrinth/pkg/game/renderer"
	"labyrinth/pkg/game/renderer/tui"
)

// logBaker stands in for a navigation bake; it only reports the request
type logBaker struct {
	logger *log.Logger
	seed   int64
}

func (b logBaker) Bake() {
	b.logger.Printf("navigation bake requested for seed %d", b.seed)
}

// logSpawner reports boss spawns instead of creating an actor
type logSpawner struct {
	logger *log.Logger
}

func (s logSpawner) SpawnBoss(r *dungeon.Room) error {
	s.logger.Printf("boss spawned in room %d (%s) at cell %s", r.ID, r.Name(), r.Cell)
	return nil
}

func initGettext(localeDir, lang string) {
	if localeDir == "" {
		return
	}
	gotext.Configure(localeDir, lang, "default")
}

// flagSet reports whether the named flag was given on the command line
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func main() {
	defaults := generator.DefaultConfig()

	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed; the same seed reproduces the same layout")
	catalogPath := flag.String("catalog", "", "path to a JSON room catalog (built-in catalog if empty)")
	minRooms := flag.Int("min", defaults.MinRooms, "minimum number of rooms")
	maxRooms := flag.Int("max", defaults.MaxRooms, "maximum number of rooms")
	branchLength := flag.Int("branch", defaults.BranchLength, "rooms per initial branch")
	tries := flag.Int("tries", defaults.TriesPerDoor, "placement attempts per doorway")
	cellSize := flag.Float64("cell", defaults.CellSize, "grid cell size in world units")
	shrink := flag.Float64("shrink", defaults.BoundsShrink, "footprint scale used for overlap checks")
	bossDistance := flag.Int("boss-distance", boss.DefaultMinDistance, "preferred minimum hops from start to the boss room")
	localeDir := flag.String("locale", "", "directory containing gettext translations")
	lang := flag.String("lang", "en_GB", "translation language")
	dumpDir := flag.String("dump", "", "write map.txt and an HTML layout to this directory")
	noColor := flag.Bool("no-color", false, "disable colored output")
	debug := flag.Bool("debug", false, "log generation diagnostics")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	initGettext(*localeDir, *lang)

	if *noColor || !terminal.IsTerminal(os.Stdout) {
		color.Enable = false
	}

	cat := catalog.Default(*cellSize)
	if *catalogPath != "" {
		loaded, err := catalog.Load(*catalogPath)
		if err != nil {
			logger.Fatalf("catalog: %v", err)
		}
		cat = loaded
		if cat.CellSize > 0 && !flagSet("cell") {
			*cellSize = cat.CellSize
		}
	}

	cfg := generator.Config{
		Seed:         *seed,
		MinRooms:     *minRooms,
		MaxRooms:     *maxRooms,
		BranchLength: *branchLength,
		TriesPerDoor: *tries,
		CellSize:     *cellSize,
		BoundsShrink: *shrink,
		Debug:        *debug,
	}

	gen := generator.New(cat, cfg,
		generator.WithLogger(logger),
		generator.WithBakeTrigger(logBaker{logger: logger, seed: *seed}),
	)

	layout, err := gen.Generate()
	if err != nil {
		logger.Fatalf("generate: %v", err)
	}

	selector := boss.Selector{CellSize: *cellSize, MinDistance: *bossDistance}
	if sel, ok := selector.Select(layout); ok && *debug {
		logger.Printf("boss room %d at %s, %d hops from start room %d", sel.Room.ID, sel.Room.Cell, sel.Distance, sel.Start.ID)
	}

	if enc := boss.ForLayout(layout, logSpawner{logger: logger}); enc != nil && *debug {
		logger.Printf("boss encounter armed in room %d", enc.Room.ID)
	}

	r := tui.New()
	renderer.SetRenderer(r)
	renderer.Init()

	renderer.RenderLayout(os.Stdout, layout)
	fmt.Println()
	renderer.RenderSummary(os.Stdout, layout)

	if *dumpDir != "" {
		path, err := devtools.DumpMapToFile(layout, *dumpDir)
		if err != nil {
			logger.Fatalf("dump: %v", err)
		}
		fmt.Println(renderer.FormatText("GT{Map dump written to}: %s", path))

		page, err := devtools.SaveLayoutHTML(layout, *dumpDir)
		if err != nil {
			logger.Fatalf("dump: %v", err)
		}
		fmt.Println(renderer.FormatText("GT{Layout snapshot written to}: %s", page))
	}
}
