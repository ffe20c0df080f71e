package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/fishtank/components"
)

// FishingState tracks the fishing line. While Active, Hook refers to the hook
// lure; the entity may already be gone if a fish took the bait.
type FishingState struct {
	Active bool
	Hook   ecs.Entity
	LineX  float64 // left edge of the line
	HookY  float64
}

// Fishing returns the current fishing-line state.
func (g *Game) Fishing() FishingState {
	return g.fishing
}

// ToggleFishingLine casts or reels in the line and reports whether it is now
// active. Casting drops a hook lure at a random depth below the line; reeling
// in removes that lure if no fish has taken it.
func (g *Game) ToggleFishingLine() bool {
	if g.fishing.Active {
		if g.world.Alive(g.fishing.Hook) {
			g.world.RemoveEntity(g.fishing.Hook)
			g.lures--
		}
		g.fishing = FishingState{}
		slog.Info("fishing line reeled in", "tick", g.tick)
		return false
	}

	w, h := g.WorldSize()
	x := w/2 - g.cfg.Line.Width/2
	y := g.rng.Float64() * h
	g.fishing = FishingState{
		Active: true,
		Hook:   g.spawnLure(components.LureHook, x, y),
		LineX:  x,
		HookY:  y,
	}
	slog.Info("fishing line cast", "tick", g.tick, "hook_y", y)
	return true
}
