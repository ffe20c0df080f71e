package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/fishtank/components"
	"github.com/pthm-cable/fishtank/systems"
	"github.com/pthm-cable/fishtank/telemetry"
)

// caughtFish records a fish the predator took during the current tick.
type caughtFish struct {
	entity ecs.Entity
	id     uint32
}

// Tick advances the tank by one step and returns the resulting snapshot.
func (g *Game) Tick() Snapshot {
	g.Step()
	return g.Snapshot()
}

// Step advances the tank by one tick without building a snapshot.
//
// Order: the predator moves toward last tick's fish positions, every fish
// updates against the moved predator and the current lures, captured fish and
// consumed lures are removed, then telemetry is recorded.
func (g *Game) Step() {
	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhasePredator)
	pred := g.predatorView()
	if pred.Active() {
		g.collectPrey()
		systems.UpdatePredator(pred, g.prey, &g.tuning, g.rng)
	}

	g.perf.StartPhase(telemetry.PhaseFish)
	g.updateFish(pred)

	g.perf.StartPhase(telemetry.PhaseRemoval)
	g.removeCaught()
	g.removeConsumedLures()

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.tick++
	g.flushTelemetry()

	g.perf.EndTick()
}

// predatorView returns component pointers for the predator entity.
// Valid until the next structural change to the world.
func (g *Game) predatorView() *systems.Predator {
	if !g.world.Alive(g.predator) {
		return nil
	}
	pos, mot, body, blink, _, hunter := g.predatorMapper.Get(g.predator)
	return &systems.Predator{Pos: pos, Motion: mot, Body: body, Blink: blink, Hunter: hunter}
}

// collectPrey copies fish positions for the predator's target search.
func (g *Game) collectPrey() {
	g.prey = g.prey[:0]
	query := g.fishFilter.Query()
	for query.Next() {
		pos, _, _, _, _, _ := query.Get()
		g.prey = append(g.prey, *pos)
	}
}

// collectLures snapshots every lure into lureRefs. Fish mark entries consumed
// as they eat, which hides them from fish updated later in the same tick.
func (g *Game) collectLures() {
	g.lureEntities = g.lureEntities[:0]
	g.lureRefs = g.lureRefs[:0]
	query := g.lureFilter.Query()
	for query.Next() {
		pos, lure := query.Get()
		g.lureEntities = append(g.lureEntities, query.Entity())
		g.lureRefs = append(g.lureRefs, systems.LureRef{X: pos.X, Y: pos.Y, Kind: lure.Kind})
	}
}

// collectPeers snapshots fish positions for the avoidance pass and indexes
// them into the peer grid.
func (g *Game) collectPeers() *systems.PeerGrid {
	g.peers = g.peers[:0]
	maxSize := 0.0
	query := g.fishFilter.Query()
	for query.Next() {
		pos, _, body, _, agent, _ := query.Get()
		g.peers = append(g.peers, systems.Peer{ID: agent.ID, X: pos.X, Y: pos.Y})
		maxSize = max(maxSize, body.Size)
	}
	cell := maxSize * g.tuning.AvoidanceFactor
	g.grid.Reset(g.peers, g.tuning.Bounds.Width, g.tuning.Bounds.Height, cell)
	return &g.grid
}

// updateFish runs the behavior update for every fish and queues captures.
func (g *Game) updateFish(pred *systems.Predator) {
	g.collectLures()
	env := systems.Env{
		Threat:   g.threat,
		Predator: pred,
		Lures:    g.lureRefs,
	}
	if g.tuning.Avoidance {
		env.Grid = g.collectPeers()
	}

	g.caught = g.caught[:0]
	query := g.fishFilter.Query()
	for query.Next() {
		pos, mot, body, blink, agent, hook := query.Get()
		fish := systems.Fish{Pos: pos, Motion: mot, Body: body, Blink: blink, Agent: agent, Hook: hook}

		out := systems.UpdateFish(fish, &env, &g.tuning, g.rng)
		g.recordOutcome(agent.ID, out, &env)

		if agent.Caught {
			g.caught = append(g.caught, caughtFish{entity: query.Entity(), id: agent.ID})
		}
	}
}

// hunter returns the predator's Hunter component, nil if the entity is gone.
func (g *Game) hunter() *components.Hunter {
	if !g.world.Alive(g.predator) {
		return nil
	}
	_, _, _, _, _, h := g.predatorMapper.Get(g.predator)
	return h
}
