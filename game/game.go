// Package game owns the tank: the ECS world, the tick loop, user actions and
// the read-only snapshots handed to renderers.
package game

import (
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/fishtank/components"
	"github.com/pthm-cable/fishtank/config"
	"github.com/pthm-cable/fishtank/systems"
	"github.com/pthm-cable/fishtank/telemetry"
)

// Options configures a new Game.
type Options struct {
	Config *config.Config // nil uses config.Cfg()
	Seed   int64          // 0 seeds from the clock
	Rand   systems.Rand   // overrides Seed when set

	LogStats      bool
	Output        *telemetry.OutputManager
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the complete tank state.
type Game struct {
	cfg    *config.Config
	world  *ecs.World
	rng    systems.Rand
	tuning systems.Tuning

	fishMapper *ecs.Map6[
		components.Position,
		components.Motion,
		components.Body,
		components.Blink,
		components.Agent,
		components.Hook,
	]
	fishFilter *ecs.Filter6[
		components.Position,
		components.Motion,
		components.Body,
		components.Blink,
		components.Agent,
		components.Hook,
	]
	predatorMapper *ecs.Map6[
		components.Position,
		components.Motion,
		components.Body,
		components.Blink,
		components.Agent,
		components.Hunter,
	]
	lureMapper *ecs.Map2[components.Position, components.Lure]
	lureFilter *ecs.Filter2[components.Position, components.Lure]

	predator ecs.Entity
	threat   systems.Threat
	fishing  FishingState

	tick     int
	captured int
	fish     int
	lures    int
	nextID   uint32

	// Telemetry
	collector     *telemetry.Collector
	perf          *telemetry.PerfCollector
	output        *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)

	// Per-tick scratch, reused to avoid allocation
	prey         []components.Position
	lureEntities []ecs.Entity
	lureRefs     []systems.LureRef
	peers        []systems.Peer
	grid         systems.PeerGrid
	caught       []caughtFish
}

// New creates a tank with the configured initial population and one
// predator, disabled unless predator.enabled is set.
func New(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	world := ecs.NewWorld()
	g := &Game{
		cfg:    cfg,
		world:  world,
		rng:    rng,
		tuning: systems.NewTuning(cfg),
		fishMapper: ecs.NewMap6[
			components.Position,
			components.Motion,
			components.Body,
			components.Blink,
			components.Agent,
			components.Hook,
		](world),
		fishFilter: ecs.NewFilter6[
			components.Position,
			components.Motion,
			components.Body,
			components.Blink,
			components.Agent,
			components.Hook,
		](world),
		predatorMapper: ecs.NewMap6[
			components.Position,
			components.Motion,
			components.Body,
			components.Blink,
			components.Agent,
			components.Hunter,
		](world),
		lureMapper: ecs.NewMap2[components.Position, components.Lure](world),
		lureFilter: ecs.NewFilter2[components.Position, components.Lure](world),

		collector:     telemetry.NewCollector(cfg.Telemetry.WindowTicks),
		perf:          telemetry.NewPerfCollector(cfg.Telemetry.WindowTicks),
		output:        opts.Output,
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
	}

	g.spawnInitialPopulation()
	g.predator = g.spawnPredator()

	return g
}

// Config returns the configuration the game was built with.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// WorldSize returns the tank dimensions in world units.
func (g *Game) WorldSize() (w, h float64) {
	return g.tuning.Bounds.Width, g.tuning.Bounds.Height
}

// TickCount returns the number of completed ticks.
func (g *Game) TickCount() int {
	return g.tick
}

// Population returns the number of live fish.
func (g *Game) Population() int {
	return g.fish
}

// LureCount returns the number of lures in the tank, the hook included.
func (g *Game) LureCount() int {
	return g.lures
}

// Captured returns how many fish the predator has taken.
func (g *Game) Captured() int {
	return g.captured
}

// Perf exposes the tick timing collector so the render loop can record frames.
func (g *Game) Perf() *telemetry.PerfCollector {
	return g.perf
}
