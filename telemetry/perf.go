package telemetry

import (
	"log/slog"
	"time"
)

// Phase identifies one stage of a world tick.
type Phase uint8

const (
	PhasePredator Phase = iota
	PhaseFish
	PhaseRemoval
	PhaseTelemetry
	numPhases
)

var phaseNames = [numPhases]string{"predator", "fish", "removal", "telemetry"}

// String returns the phase name used in logs.
func (p Phase) String() string {
	if p >= numPhases {
		return "unknown"
	}
	return phaseNames[p]
}

// Phases lists every phase in tick order.
func Phases() []Phase {
	out := make([]Phase, numPhases)
	for i := range out {
		out[i] = Phase(i)
	}
	return out
}

type tickSample struct {
	total  time.Duration
	phases [numPhases]time.Duration
}

// PerfCollector times tick phases over a rolling window of ticks.
type PerfCollector struct {
	samples []tickSample
	next    int
	filled  int

	current    tickSample
	tickStart  time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool

	lastFrame time.Time
	frameDur  time.Duration
}

// NewPerfCollector creates a collector averaging over window ticks (60 if < 1).
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{samples: make([]tickSample, window)}
}

// StartTick begins timing a new tick.
func (p *PerfCollector) StartTick() {
	p.current = tickSample{}
	p.tickStart = time.Now()
	p.inPhase = false
}

// StartPhase closes the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase Phase) {
	now := time.Now()
	p.closePhase(now)
	p.phase = phase
	p.phaseStart = now
	p.inPhase = true
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.inPhase && p.phase < numPhases {
		p.current.phases[p.phase] += now.Sub(p.phaseStart)
	}
	p.inPhase = false
}

// EndTick stores the finished tick in the ring buffer.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.current.total = now.Sub(p.tickStart)

	p.samples[p.next] = p.current
	p.next = (p.next + 1) % len(p.samples)
	if p.filled < len(p.samples) {
		p.filled++
	}
}

// RecordFrame marks a rendered frame; the gap between calls gives FPS.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frameDur = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats holds averaged timings for the current window.
type PerfStats struct {
	AvgTick        time.Duration
	MinTick        time.Duration
	MaxTick        time.Duration
	PhaseAvg       [numPhases]time.Duration
	PhasePct       [numPhases]float64
	TicksPerSecond float64
	FrameDuration  time.Duration
	FPS            float64
}

// Stats averages the samples currently in the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{FrameDuration: p.frameDur}
	if p.frameDur > 0 {
		s.FPS = float64(time.Second) / float64(p.frameDur)
	}
	if p.filled == 0 {
		return s
	}

	var total time.Duration
	var phaseTotal [numPhases]time.Duration
	for i, smp := range p.samples[:p.filled] {
		total += smp.total
		if i == 0 || smp.total < s.MinTick {
			s.MinTick = smp.total
		}
		if smp.total > s.MaxTick {
			s.MaxTick = smp.total
		}
		for ph, d := range smp.phases {
			phaseTotal[ph] += d
		}
	}

	n := time.Duration(p.filled)
	s.AvgTick = total / n
	for ph := range phaseTotal {
		s.PhaseAvg[ph] = phaseTotal[ph] / n
		if s.AvgTick > 0 {
			s.PhasePct[ph] = float64(s.PhaseAvg[ph]) / float64(s.AvgTick) * 100
		}
	}
	if s.AvgTick > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTick)
	}
	return s
}

// LogStats logs the window timings, skipping phases under 0.1% of a tick.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTick.Microseconds(),
		"max_tick_us", s.MaxTick.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for ph, pct := range s.PhasePct {
		if pct > 0.1 {
			attrs = append(attrs, Phase(ph).String()+"_pct", float64(int(pct*10))/10)
		}
	}
	slog.Info("perf", attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	WindowEnd    int     `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	PredatorPct  float64 `csv:"predator_pct"`
	FishPct      float64 `csv:"fish_pct"`
	RemovalPct   float64 `csv:"removal_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats for perf.csv.
func (s PerfStats) ToCSV(windowEnd int) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTick.Microseconds(),
		MinTickUS:    s.MinTick.Microseconds(),
		MaxTickUS:    s.MaxTick.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		PredatorPct:  s.PhasePct[PhasePredator],
		FishPct:      s.PhasePct[PhaseFish],
		RemovalPct:   s.PhasePct[PhaseRemoval],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
