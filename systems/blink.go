package systems

import "github.com/pthm-cable/fishtank/components"

// BlinkTuning holds eye-blink timing in ticks.
type BlinkTuning struct {
	ClosedInterval float64
	OpenMin        float64
	OpenSpread     float64
}

// AdvanceBlink steps the eye cycle by one tick. Closed phases are short and
// fixed; open phases get a fresh random length.
func AdvanceBlink(b *components.Blink, t BlinkTuning, rng Rand) {
	b.Timer++
	if b.Timer <= b.Interval {
		return
	}
	b.EyeClosed = !b.EyeClosed
	b.Timer = 0
	if b.EyeClosed {
		b.Interval = t.ClosedInterval
	} else {
		b.Interval = t.OpenMin + rng.Float64()*t.OpenSpread
	}
}
