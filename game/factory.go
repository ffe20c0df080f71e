package game

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/fishtank/components"
)

var predatorColor = components.Color{R: 90, G: 90, B: 110}

// spawnInitialPopulation creates the starting school at random positions.
func (g *Game) spawnInitialPopulation() {
	w, h := g.WorldSize()
	for i := 0; i < g.cfg.Population.Initial; i++ {
		g.spawnFish(g.rng.Float64()*w, g.rng.Float64()*h)
	}
}

// randRange returns a uniform value in [lo, hi).
func (g *Game) randRange(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// randomColor returns a uniformly random opaque RGB color.
func (g *Game) randomColor() components.Color {
	return components.Color{
		R: uint8(g.rng.Float64() * 256),
		G: uint8(g.rng.Float64() * 256),
		B: uint8(g.rng.Float64() * 256),
	}
}

func (g *Game) allocID() uint32 {
	id := g.nextID
	g.nextID++
	return id
}

// spawnFish creates a fish with randomized size, speed, heading, color and
// blink phase.
func (g *Game) spawnFish(x, y float64) ecs.Entity {
	cfg := g.cfg
	heading := g.rng.Float64() * 2 * math.Pi
	speed := g.randRange(cfg.Agent.SpeedMin, cfg.Agent.SpeedMax)

	pos := components.Position{X: x, Y: y}
	mot := components.Motion{
		Heading:       heading,
		TargetHeading: heading,
		Speed:         speed,
		BaseSpeed:     speed,
	}
	body := components.Body{
		Size:  g.randRange(cfg.Agent.SizeMin, cfg.Agent.SizeMax),
		Color: g.randomColor(),
	}
	blink := components.Blink{
		Interval: cfg.Blink.InitialMin + g.rng.Float64()*cfg.Blink.InitialSpread,
	}
	agent := components.Agent{ID: g.allocID(), Kind: components.KindFish}
	hook := components.Hook{
		StruggleInterval: cfg.Hook.StruggleInterval,
		EscapeChance:     cfg.Hook.EscapeChance,
		EscapeInterval:   cfg.Hook.EscapeInterval,
	}

	e := g.fishMapper.NewEntity(&pos, &mot, &body, &blink, &agent, &hook)
	g.fish++
	return e
}

// spawnPredator creates the single predator. Its enabled flag comes from config.
func (g *Game) spawnPredator() ecs.Entity {
	cfg := g.cfg
	w, h := g.WorldSize()
	heading := g.rng.Float64() * 2 * math.Pi

	pos := components.Position{X: g.rng.Float64() * w, Y: g.rng.Float64() * h}
	mot := components.Motion{
		Heading:       heading,
		TargetHeading: heading,
		Speed:         cfg.Predator.Speed,
		BaseSpeed:     cfg.Predator.Speed,
	}
	body := components.Body{Size: cfg.Predator.Size, Color: predatorColor}
	blink := components.Blink{
		Interval: cfg.Blink.InitialMin + g.rng.Float64()*cfg.Blink.InitialSpread,
	}
	agent := components.Agent{ID: g.allocID(), Kind: components.KindPredator}
	hunter := components.Hunter{Enabled: cfg.Predator.Enabled}

	return g.predatorMapper.NewEntity(&pos, &mot, &body, &blink, &agent, &hunter)
}

// spawnLure places a lure at (x, y).
func (g *Game) spawnLure(kind components.LureKind, x, y float64) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	lure := components.Lure{Kind: kind, Size: g.cfg.Lure.Size}

	e := g.lureMapper.NewEntity(&pos, &lure)
	g.lures++
	g.collector.RecordLureAdded()
	return e
}
