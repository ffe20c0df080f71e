// Package telemetry aggregates tank events into fixed tick windows and writes them out.
package telemetry

import "github.com/pthm-cable/fishtank/components"

// Collector accumulates events within a tick window and produces WindowStats.
type Collector struct {
	windowTicks     int
	windowStartTick int

	// Event counters for current window
	fishAdded     int
	luresAdded    int
	threatFlees   int
	predatorFlees int
	captures      int
	luresEaten    int
	hooksEaten    int
	hookEscapes   int
}

// NewCollector creates a collector that flushes every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// RecordFishAdded records a fish added by the user.
func (c *Collector) RecordFishAdded() {
	c.fishAdded++
}

// RecordLureAdded records a lure placed in the tank.
func (c *Collector) RecordLureAdded() {
	c.luresAdded++
}

// RecordThreatFlee records a fish that started or kept fleeing the pointer this tick.
func (c *Collector) RecordThreatFlee() {
	c.threatFlees++
}

// RecordPredatorFlee records a fish that won its flee roll.
func (c *Collector) RecordPredatorFlee() {
	c.predatorFlees++
}

// RecordCapture records a fish taken by the predator.
func (c *Collector) RecordCapture() {
	c.captures++
}

// RecordLureEaten records a consumed lure.
func (c *Collector) RecordLureEaten(kind components.LureKind) {
	if kind == components.LureHook {
		c.hooksEaten++
		return
	}
	c.luresEaten++
}

// RecordHookEscape records a fish breaking free of the hook.
func (c *Collector) RecordHookEscape() {
	c.hookEscapes++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// TankSample is the population state sampled at window end.
type TankSample struct {
	Fish         int
	Hooked       int
	Escaping     int
	Lures        int
	Captured     int // running total
	PredatorSize float64
	Speeds       []float64
	Sizes        []float64
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int, s TankSample) WindowStats {
	var fleeRate float64
	if encounters := c.predatorFlees + c.captures; encounters > 0 {
		fleeRate = float64(c.predatorFlees) / float64(encounters)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Fish:          s.Fish,
		Hooked:        s.Hooked,
		Escaping:      s.Escaping,
		Lures:         s.Lures,
		CapturedTotal: s.Captured,
		PredatorSize:  s.PredatorSize,

		FishAdded:     c.fishAdded,
		LuresAdded:    c.luresAdded,
		ThreatFlees:   c.threatFlees,
		PredatorFlees: c.predatorFlees,
		Captures:      c.captures,
		FleeRate:      fleeRate,
		LuresEaten:    c.luresEaten,
		HooksEaten:    c.hooksEaten,
		HookEscapes:   c.hookEscapes,
	}
	stats.setDistributions(ComputeDistribution(s.Speeds), ComputeDistribution(s.Sizes))

	// Reset for next window
	c.windowStartTick = currentTick
	c.fishAdded = 0
	c.luresAdded = 0
	c.threatFlees = 0
	c.predatorFlees = 0
	c.captures = 0
	c.luresEaten = 0
	c.hooksEaten = 0
	c.hookEscapes = 0

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int {
	return c.windowTicks
}
