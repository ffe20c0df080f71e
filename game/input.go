package game

import (
	"log/slog"

	"github.com/pthm-cable/fishtank/components"
	"github.com/pthm-cable/fishtank/systems"
)

// AddFish adds one fish at a random position.
func (g *Game) AddFish() {
	w, h := g.WorldSize()
	g.spawnFish(g.rng.Float64()*w, g.rng.Float64()*h)
	g.collector.RecordFishAdded()
}

// AddPlainLure drops a plain lure at a random position.
func (g *Game) AddPlainLure() {
	w, h := g.WorldSize()
	g.spawnLure(components.LurePlain, g.rng.Float64()*w, g.rng.Float64()*h)
}

// SetThreatPosition moves the pointer threat to (x, y) in world units.
func (g *Game) SetThreatPosition(x, y float64) {
	g.threat = systems.Threat{X: x, Y: y, Active: true}
}

// ClearThreat removes the pointer threat, e.g. when the pointer leaves the tank.
func (g *Game) ClearThreat() {
	g.threat = systems.Threat{}
}

// Threat returns the current pointer threat.
func (g *Game) Threat() systems.Threat {
	return g.threat
}

// PredatorEnabled reports whether the predator is hunting.
func (g *Game) PredatorEnabled() bool {
	h := g.hunter()
	return h != nil && h.Enabled
}

// SetPredatorEnabled turns the predator on or off.
func (g *Game) SetPredatorEnabled(enabled bool) {
	h := g.hunter()
	if h == nil || h.Enabled == enabled {
		return
	}
	h.Enabled = enabled
	slog.Info("predator toggled", "enabled", enabled, "tick", g.tick)
}

// TogglePredator flips the predator and returns the new state.
func (g *Game) TogglePredator() bool {
	enabled := !g.PredatorEnabled()
	g.SetPredatorEnabled(enabled)
	return enabled
}
