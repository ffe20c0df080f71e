// Package systems holds the per-tick behavior rules for fish and the predator.
// Functions operate on component pointers so they can be driven from ECS
// queries or from plain structs in tests.
package systems

import (
	"math"

	"github.com/pthm-cable/fishtank/components"
)

// Fish groups the components of one fish for a behavior update.
type Fish struct {
	Pos    *components.Position
	Motion *components.Motion
	Body   *components.Body
	Blink  *components.Blink
	Agent  *components.Agent
	Hook   *components.Hook
}

// Threat is the externally supplied point fish flee from.
type Threat struct {
	X, Y   float64
	Active bool
}

// Env is everything a fish can sense during one tick.
type Env struct {
	Threat   Threat
	Predator *Predator // nil when the world has none
	Lures    []LureRef
	Peers    []Peer    // only populated when avoidance is enabled
	Grid     *PeerGrid // when set, avoidance scans nearby cells instead of Peers
}

// Outcome reports what happened to a fish during one update.
type Outcome struct {
	FledThreat   bool
	FledPredator bool
	Captured     bool
	Hooked       bool
	EscapedHook  bool
	Lure         int // index into Env.Lures eaten this tick, -1 if none
}

// UpdateFish advances one fish by a single tick.
//
// Priority order: a hooked fish only struggles. Otherwise the pointer threat
// sets escape state, the predator may override it or capture the fish, and
// the fish then turns, moves, reflects off the walls, wanders, avoids peers,
// seeks the nearest lure and blinks.
func UpdateFish(f Fish, env *Env, t *Tuning, rng Rand) Outcome {
	out := Outcome{Lure: -1}

	if f.Hook.Hooked {
		out.EscapedHook = struggle(f, t, rng)
		return out
	}

	pos, mot, agent := f.Pos, f.Motion, f.Agent

	if env.Threat.Active && Distance(pos.X, pos.Y, env.Threat.X, env.Threat.Y) < t.ThreatRadius {
		agent.Escaping = true
		mot.TargetHeading = AngleTo(env.Threat.X, env.Threat.Y, pos.X, pos.Y)
		mot.Speed = t.EscapeSpeed
		out.FledThreat = true
	} else {
		agent.Escaping = false
		mot.Speed = mot.BaseSpeed
	}

	if p := env.Predator; p.Active() {
		if Distance(pos.X, pos.Y, p.Pos.X, p.Pos.Y) < p.Body.Size {
			if rng.Float64() < t.FleeChance {
				agent.Escaping = true
				mot.TargetHeading = AngleTo(p.Pos.X, p.Pos.Y, pos.X, pos.Y)
				mot.Speed = t.PredatorEscapeSpeed
				out.FledPredator = true
			} else {
				agent.Caught = true
				p.Body.Size += t.PredatorGrowth
				p.Hunter.Captures++
				out.Captured = true
				return out
			}
		}
	}

	rate := t.TurnRate
	if agent.Escaping {
		rate = t.EscapeTurnRate
	}
	mot.Heading = blendAngle(mot.Heading, mot.TargetHeading, rate)
	pos.X, pos.Y = advance(pos.X, pos.Y, mot.Heading, mot.Speed)
	Reflect(pos, mot, t.Bounds)

	if !agent.Escaping && rng.Float64() < t.WanderChance {
		mot.TargetHeading += (rng.Float64() - 0.5) * t.WanderAngle
	}

	if t.Avoidance {
		peers := env.Peers
		if env.Grid != nil {
			peers = env.Grid.Near(pos.X, pos.Y, f.Body.Size*t.AvoidanceFactor)
		}
		AvoidPeers(f, peers, t.AvoidanceFactor)
	}

	if i, dist := NearestLure(pos.X, pos.Y, env.Lures); i >= 0 {
		lure := &env.Lures[i]
		mot.TargetHeading = AngleTo(pos.X, pos.Y, lure.X, lure.Y)
		if dist < t.EatDistance {
			lure.Consumed = true
			out.Lure = i
			mot.TargetHeading = rng.Float64() * 2 * math.Pi
			if lure.Kind == components.LureHook {
				SetHooked(f.Hook)
				out.Hooked = true
			}
		}
	}

	AdvanceBlink(f.Blink, t.Blink, rng)
	return out
}

// SetHooked puts a fish on the hook with fresh timers.
func SetHooked(h *components.Hook) {
	h.Hooked = true
	h.CaughtTimer = 0
	h.StruggleTimer = 0
}

// struggle runs the hooked state for one tick: the escape roll once the fish
// has been hooked long enough, and a periodic random jerk of the heading.
// Position never changes here. Reports whether the fish broke free.
func struggle(f Fish, t *Tuning, rng Rand) bool {
	h := f.Hook
	escaped := false

	h.CaughtTimer++
	if h.CaughtTimer >= h.EscapeInterval && rng.Float64() < h.EscapeChance {
		h.Hooked = false
		h.CaughtTimer = 0
		escaped = true
	}

	h.StruggleTimer++
	if h.StruggleTimer >= h.StruggleInterval {
		h.StruggleTimer = 0
		f.Motion.TargetHeading = rng.Float64() * 2 * math.Pi
		f.Motion.Heading = blendAngle(f.Motion.Heading, f.Motion.TargetHeading, t.StruggleTurnRate)
	}
	return escaped
}
