package systems

import (
	"math"

	"github.com/pthm-cable/fishtank/components"
)

// scriptRand returns queued values in order, then a fixed fallback.
type scriptRand struct {
	vals     []float64
	fallback float64
}

func (r *scriptRand) Float64() float64 {
	if len(r.vals) > 0 {
		v := r.vals[0]
		r.vals = r.vals[1:]
		return v
	}
	return r.fallback
}

// calm never triggers wander and always wins the predator flee roll.
func calm() *scriptRand {
	return &scriptRand{fallback: 0.5}
}

func testTuning() Tuning {
	return Tuning{
		Bounds:              Bounds{Width: 100, Height: 100},
		EscapeSpeed:         2.5,
		PredatorEscapeSpeed: 3,
		TurnRate:            0.05,
		EscapeTurnRate:      0.2,
		WanderChance:        0.01,
		WanderAngle:         math.Pi / 2,
		ThreatRadius:        100,
		EatDistance:         20,
		StruggleTurnRate:    1,
		FleeChance:          0.9,
		PredatorGrowth:      1,
		PredatorTurnRate:    0.1,
		AvoidanceFactor:     2,
		Blink: BlinkTuning{
			ClosedInterval: 10,
			OpenMin:        100,
			OpenSpread:     1000,
		},
	}
}

type testFish struct {
	pos   components.Position
	mot   components.Motion
	body  components.Body
	blink components.Blink
	agent components.Agent
	hook  components.Hook
}

func newTestFish(x, y, heading, speed float64) *testFish {
	return &testFish{
		pos:   components.Position{X: x, Y: y},
		mot:   components.Motion{Heading: heading, TargetHeading: heading, Speed: speed, BaseSpeed: speed},
		body:  components.Body{Size: 10},
		blink: components.Blink{Interval: 1e9},
		agent: components.Agent{ID: 1, Kind: components.KindFish},
		hook: components.Hook{
			StruggleInterval: 10,
			EscapeChance:     1,
			EscapeInterval:   100,
		},
	}
}

func (f *testFish) view() Fish {
	return Fish{Pos: &f.pos, Motion: &f.mot, Body: &f.body, Blink: &f.blink, Agent: &f.agent, Hook: &f.hook}
}

type testPredator struct {
	pos    components.Position
	mot    components.Motion
	body   components.Body
	blink  components.Blink
	hunter components.Hunter
}

func newTestPredator(x, y float64, enabled bool) *testPredator {
	return &testPredator{
		pos:    components.Position{X: x, Y: y},
		mot:    components.Motion{Speed: 1.5, BaseSpeed: 1.5},
		body:   components.Body{Size: 30},
		blink:  components.Blink{Interval: 1e9},
		hunter: components.Hunter{Enabled: enabled},
	}
}

func (p *testPredator) view() *Predator {
	return &Predator{Pos: &p.pos, Motion: &p.mot, Body: &p.body, Blink: &p.blink, Hunter: &p.hunter}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
