// Package generator assembles dungeon layouts from a room catalog: a start
// room, four directional branches, random fill of the remaining doorways and
// a final sealing pass.
package generator

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"labyrinth/pkg/engine/spatial"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/catalog"
	"labyrinth/pkg/game/dungeon"
)

// Phase is a generation stage
type Phase int

const (
	PhaseInit Phase = iota
	PhaseBranchGrowth
	PhaseRandomFill
	PhaseSealing
	PhaseDone
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "Init"
	case PhaseBranchGrowth:
		return "BranchGrowth"
	case PhaseRandomFill:
		return "RandomFill"
	case PhaseSealing:
		return "Sealing"
	case PhaseDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// BakeTrigger is signalled once the layout is final, e.g. to build a
// navigation mesh
type BakeTrigger interface {
	Bake()
}

// Option configures a Generator
type Option func(*Generator)

// WithLogger sets the logger used for diagnostics
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithBakeTrigger sets the collaborator signalled after sealing
func WithBakeTrigger(b BakeTrigger) Option {
	return func(g *Generator) {
		g.bake = b
	}
}

// WithOverlapQuery replaces the in-memory overlap index. The factory is
// called once per run.
func WithOverlapQuery(factory func() spatial.OverlapQuery) Option {
	return func(g *Generator) {
		if factory != nil {
			g.newIndex = factory
		}
	}
}

// Generator drives a generation run. It is not safe for concurrent use.
type Generator struct {
	catalog  *catalog.Catalog
	config   Config
	logger   *log.Logger
	bake     BakeTrigger
	newIndex func() spatial.OverlapQuery

	phase      Phase
	rng        *rand.Rand
	grid       *OccupancyGrid
	frontier   *Frontier
	solver     *Solver
	candidates map[world.Direction][]*catalog.RoomTemplate
	layout     *dungeon.Layout
}

// New creates a generator for the given catalog and config
func New(cat *catalog.Catalog, cfg Config, opts ...Option) *Generator {
	g := &Generator{
		catalog:  cat,
		config:   cfg,
		logger:   log.New(os.Stderr, "", log.LstdFlags),
		newIndex: func() spatial.OverlapQuery { return spatial.NewIndex() },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Phase returns the stage the generator last entered
func (g *Generator) Phase() Phase {
	return g.phase
}

// Config returns the generation parameters
func (g *Generator) Config() Config {
	return g.config
}

// Generate runs every phase to completion and returns the sealed layout.
// The only errors are configuration problems found before any placement;
// doorways and branches that cannot be extended are given up on silently.
func (g *Generator) Generate() (*dungeon.Layout, error) {
	g.phase = PhaseInit
	start, err := g.init()
	if err != nil {
		return nil, err
	}

	g.phase = PhaseBranchGrowth
	for _, dir := range world.AllDirections() {
		origin := start.Doorway(dir)
		if origin == nil {
			continue
		}
		g.growBranch(origin, dir)
	}

	g.phase = PhaseRandomFill
	for len(g.layout.Rooms) < g.config.MaxRooms && g.frontier.Len() > 0 {
		current := g.frontier.Pick(g.rng)
		if _, ok := g.expand(current); ok {
			g.layout.Stats.FillRooms++
		}
	}

	g.phase = PhaseSealing
	sealedTotal := 0
	for _, r := range g.layout.Rooms {
		sealedTotal += r.Seals.SealUnmatched()
	}
	g.layout.Stats.DoorwaysSealed = sealedTotal
	g.layout.Stats.Rooms = len(g.layout.Rooms)

	g.phase = PhaseDone
	if g.config.Debug {
		g.logger.Printf("[dg] Rooms=%d, sealedWithPlugs=%d, abandoned=%d", g.layout.Stats.Rooms, sealedTotal, g.layout.Stats.DoorwaysAbandoned)
	}
	if g.bake != nil {
		g.bake.Bake()
	}

	return g.layout, nil
}

// init clears all run state and places the start room at the origin
func (g *Generator) init() (*dungeon.Room, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}
	if g.catalog == nil {
		return nil, missingStart("no catalog")
	}
	if g.catalog.CellSize > 0 && g.catalog.CellSize != g.config.CellSize {
		return nil, invalidConfig("CellSize", fmt.Sprintf("%g does not match catalog %s cell size %g", g.config.CellSize, g.catalog.Name, g.catalog.CellSize))
	}
	startTemplate := g.catalog.StartRoom
	if startTemplate == nil {
		return nil, missingStart("catalog has no start room")
	}
	if err := startTemplate.Validate(); err != nil {
		return nil, missingStart(err.Error())
	}

	g.rng = rand.New(rand.NewSource(g.config.Seed))
	g.grid = NewOccupancyGrid(g.config.CellSize)
	g.frontier = NewFrontier()
	g.layout = &dungeon.Layout{
		Seed:     g.config.Seed,
		CellSize: g.config.CellSize,
	}

	g.candidates = make(map[world.Direction][]*catalog.RoomTemplate)
	for _, dir := range world.AllDirections() {
		g.candidates[dir] = g.catalog.WithDoorway(dir)
	}

	origin := world.Vec2{}
	cell := g.grid.ToCell(origin)
	start := dungeon.NewRoom(0, startTemplate, origin, cell)
	g.grid.Claim(cell)

	index := g.newIndex()
	index.Insert(start.ID, start.Footprint())
	g.solver = NewSolver(g.grid, index, g.frontier, g.rng, g.config.BoundsShrink, start.ID+1, &g.layout.Stats)

	g.layout.Rooms = append(g.layout.Rooms, start)
	g.layout.Start = start
	for _, d := range start.Doorways {
		g.frontier.Add(d)
	}

	return start, nil
}

// growBranch walks up to BranchLength rooms away from origin, preferring to
// keep going in dir. The branch ends quietly on the first failure.
func (g *Generator) growBranch(origin *dungeon.Doorway, dir world.Direction) {
	current := origin
	for i := 0; i < g.config.BranchLength && len(g.layout.Rooms) < g.config.MaxRooms; i++ {
		if current == nil || current.Connected {
			return
		}

		placed, ok := g.expand(current)
		if !ok {
			return
		}
		g.layout.Stats.BranchRooms++

		current = chooseNextForBranch(placed, dir, current.Direction.Opposite())
	}
}

// expand runs the solver on one doorway and records the result. A doorway
// that cannot be extended leaves the frontier for good and is sealed later.
func (g *Generator) expand(d *dungeon.Doorway) (*dungeon.Room, bool) {
	candidates := g.candidates[d.Direction.Opposite()]
	attempts := min(g.config.TriesPerDoor, len(candidates))

	room, ok := g.solver.TryExpand(d, candidates, attempts)
	if !ok {
		if g.frontier.Remove(d) {
			g.layout.Stats.DoorwaysAbandoned++
		}
		return nil, false
	}

	g.layout.Rooms = append(g.layout.Rooms, room)
	return room, true
}

// chooseNextForBranch picks the doorway a branch continues from: straight
// ahead if possible, otherwise any open doorway not facing back the way the
// branch came
func chooseNextForBranch(placed *dungeon.Room, branchDir, connectedTo world.Direction) *dungeon.Doorway {
	if straight := placed.Doorway(branchDir); straight != nil && !straight.Connected {
		return straight
	}
	for _, d := range placed.Doorways {
		if !d.Connected && d.Direction != connectedTo {
			return d
		}
	}
	return nil
}
