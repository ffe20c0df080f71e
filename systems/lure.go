package systems

import (
	"math"

	"github.com/pthm-cable/fishtank/components"
)

// LureRef is a fish's view of one lure for the current tick.
// Consumed is set by the fish that eats it so later fish skip it.
type LureRef struct {
	X, Y     float64
	Kind     components.LureKind
	Consumed bool
}

// NearestLure returns the index of the closest unconsumed lure and its
// distance, or -1 when none is left. Ties keep the earlier lure.
func NearestLure(x, y float64, lures []LureRef) (int, float64) {
	best := -1
	bestDistSq := math.Inf(1)
	for i := range lures {
		if lures[i].Consumed {
			continue
		}
		d := distanceSq(x, y, lures[i].X, lures[i].Y)
		if d < bestDistSq {
			best = i
			bestDistSq = d
		}
	}
	if best < 0 {
		return -1, 0
	}
	return best, math.Sqrt(bestDistSq)
}
