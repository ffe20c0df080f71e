package systems

import (
	"math"

	"github.com/pthm-cable/fishtank/components"
)

// Reflect mirrors the heading off any world edge the position lies beyond and
// snaps the target heading to the result. Reports whether a reflection happened.
// The position itself is left alone; the mirrored heading carries it back.
func Reflect(pos *components.Position, mot *components.Motion, b Bounds) bool {
	reflected := false
	if pos.X < 0 || pos.X > b.Width {
		mot.Heading = math.Pi - mot.Heading
		reflected = true
	}
	if pos.Y < 0 || pos.Y > b.Height {
		mot.Heading = -mot.Heading
		reflected = true
	}
	if reflected {
		mot.TargetHeading = mot.Heading
	}
	return reflected
}
