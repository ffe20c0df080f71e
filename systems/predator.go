package systems

import (
	"math"

	"github.com/pthm-cable/fishtank/components"
)

// Predator groups the components of the hunting entity.
type Predator struct {
	Pos    *components.Position
	Motion *components.Motion
	Body   *components.Body
	Blink  *components.Blink
	Hunter *components.Hunter
}

// Active reports whether the predator exists and is enabled.
func (p *Predator) Active() bool {
	return p != nil && p.Hunter != nil && p.Hunter.Enabled
}

// UpdatePredator steers the predator toward the nearest fish and advances it
// by one tick. It does nothing while disabled. prey holds fish positions from
// before this tick's fish updates.
func UpdatePredator(p *Predator, prey []components.Position, t *Tuning, rng Rand) {
	if !p.Active() {
		return
	}

	if i := nearestPosition(p.Pos.X, p.Pos.Y, prey); i >= 0 {
		p.Motion.TargetHeading = AngleTo(p.Pos.X, p.Pos.Y, prey[i].X, prey[i].Y)
	}

	p.Motion.Heading = blendAngle(p.Motion.Heading, p.Motion.TargetHeading, t.PredatorTurnRate)
	p.Pos.X, p.Pos.Y = advance(p.Pos.X, p.Pos.Y, p.Motion.Heading, p.Motion.Speed)
	Reflect(p.Pos, p.Motion, t.Bounds)

	AdvanceBlink(p.Blink, t.Blink, rng)
}

// nearestPosition returns the index of the closest position, -1 if empty.
// Ties keep the earlier entry.
func nearestPosition(x, y float64, ps []components.Position) int {
	best := -1
	bestDistSq := math.Inf(1)
	for i := range ps {
		if d := distanceSq(x, y, ps[i].X, ps[i].Y); d < bestDistSq {
			best = i
			bestDistSq = d
		}
	}
	return best
}
