// Package components defines ECS components for the simulation.
package components

// Kind tags which behavior drives an entity.
type Kind uint8

const (
	KindFish Kind = iota
	KindPredator
)

// String returns the display name for a Kind.
func (k Kind) String() string {
	switch k {
	case KindFish:
		return "fish"
	case KindPredator:
		return "predator"
	default:
		return "unknown"
	}
}

// Position represents an entity's world position.
type Position struct {
	X, Y float64
}

// Motion holds steering state. Speeds are world units per tick.
type Motion struct {
	Heading       float64 `inspect:"angle"`
	TargetHeading float64 `inspect:"angle"`
	Speed         float64 `inspect:"bar,max:3"`
	BaseSpeed     float64 `inspect:"label,fmt:%.2f"`
}

// Blink drives the cosmetic eye-closed cycle. Timers count ticks.
type Blink struct {
	Timer     float64 `inspect:"skip"`
	Interval  float64 `inspect:"label,fmt:%.0f"`
	EyeClosed bool    `inspect:"bool"`
}

// Agent bundles identity and the per-tick behavioral flags shared by fish and predator.
type Agent struct {
	ID       uint32 `inspect:"label"`
	Kind     Kind   `inspect:"label"`
	Escaping bool   `inspect:"bool"`
	Caught   bool   `inspect:"bool"` // marked for removal at end of tick
}

// Hook holds the hook-and-capture state of a fish. Only fish carry it.
type Hook struct {
	Hooked           bool    `inspect:"bool"`
	StruggleTimer    int     `inspect:"skip"`
	StruggleInterval int     `inspect:"skip"`
	CaughtTimer      int     `inspect:"label"`
	EscapeChance     float64 `inspect:"label,fmt:%.2f"`
	EscapeInterval   int     `inspect:"label"`
}

// Hunter marks the predator. Only the predator carries it.
type Hunter struct {
	Enabled  bool `inspect:"bool"`
	Captures int  `inspect:"label"`
}

// LureKind distinguishes plain bait from the fishing-line hook.
type LureKind uint8

const (
	LurePlain LureKind = iota
	LureHook
)

// String returns the display name for a LureKind.
func (k LureKind) String() string {
	if k == LureHook {
		return "hook"
	}
	return "plain"
}

// Lure is a static attractant point. Consumed lures are removed at the end of
// the tick that consumed them, so no flag is stored here.
type Lure struct {
	Kind LureKind
	Size float64
}
