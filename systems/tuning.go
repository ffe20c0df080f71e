package systems

import "github.com/pthm-cable/fishtank/config"

// Tuning holds the behavior constants read on every tick.
// Built once from config so hot paths avoid the global lookup.
type Tuning struct {
	Bounds Bounds

	// Fish steering
	EscapeSpeed         float64
	PredatorEscapeSpeed float64
	TurnRate            float64
	EscapeTurnRate      float64
	WanderChance        float64
	WanderAngle         float64
	ThreatRadius        float64
	EatDistance         float64
	StruggleTurnRate    float64

	// Predator
	FleeChance       float64
	PredatorGrowth   float64
	PredatorTurnRate float64

	// Peer avoidance
	Avoidance       bool
	AvoidanceFactor float64

	Blink BlinkTuning
}

// NewTuning extracts behavior constants from the config.
func NewTuning(cfg *config.Config) Tuning {
	return Tuning{
		Bounds: Bounds{Width: cfg.Derived.WorldW, Height: cfg.Derived.WorldH},

		EscapeSpeed:         cfg.Agent.EscapeSpeed,
		PredatorEscapeSpeed: cfg.Agent.PredatorEscapeSpeed,
		TurnRate:            cfg.Agent.TurnRate,
		EscapeTurnRate:      cfg.Agent.EscapeTurnRate,
		WanderChance:        cfg.Agent.WanderChance,
		WanderAngle:         cfg.Agent.WanderAngle,
		ThreatRadius:        cfg.Threat.Radius,
		EatDistance:         cfg.Lure.EatDistance,
		StruggleTurnRate:    cfg.Hook.StruggleTurnRate,

		FleeChance:       cfg.Predator.FleeChance,
		PredatorGrowth:   cfg.Predator.Growth,
		PredatorTurnRate: cfg.Predator.TurnRate,

		Avoidance:       cfg.Avoidance.Enabled,
		AvoidanceFactor: cfg.Avoidance.DistanceFactor,

		Blink: BlinkTuning{
			ClosedInterval: cfg.Blink.ClosedInterval,
			OpenMin:        cfg.Blink.OpenMin,
			OpenSpread:     cfg.Blink.OpenSpread,
		},
	}
}
