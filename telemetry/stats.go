package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Distribution summarizes a sampled per-fish quantity.
type Distribution struct {
	Mean float64
	Std  float64
	P10  float64
	P50  float64
	P90  float64
}

// ComputeDistribution calculates mean, std and empirical quantiles.
// Returns the zero Distribution for an empty sample.
func ComputeDistribution(values []float64) Distribution {
	n := len(values)
	if n == 0 {
		return Distribution{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var d Distribution
	if n == 1 {
		d.Mean = sorted[0]
	} else {
		d.Mean, d.Std = stat.MeanStdDev(sorted, nil)
	}
	d.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	d.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	d.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return d
}

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowStartTick int `csv:"-"`
	WindowEndTick   int `csv:"window_end"`

	// Tank state at window end
	Fish          int     `csv:"fish"`
	Hooked        int     `csv:"hooked"`
	Escaping      int     `csv:"escaping"`
	Lures         int     `csv:"lures"`
	CapturedTotal int     `csv:"captured_total"`
	PredatorSize  float64 `csv:"predator_size"`

	// Events during window
	FishAdded     int     `csv:"fish_added"`
	LuresAdded    int     `csv:"lures_added"`
	ThreatFlees   int     `csv:"threat_flees"`
	PredatorFlees int     `csv:"predator_flees"`
	Captures      int     `csv:"captures"`
	FleeRate      float64 `csv:"flee_rate"` // predator flees / (flees + captures)
	LuresEaten    int     `csv:"lures_eaten"`
	HooksEaten    int     `csv:"hooks_eaten"`
	HookEscapes   int     `csv:"hook_escapes"`

	// Per-fish distributions sampled at window end
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
	SizeMean  float64 `csv:"size_mean"`
	SizeStd   float64 `csv:"size_std"`
	SizeP10   float64 `csv:"size_p10"`
	SizeP50   float64 `csv:"size_p50"`
	SizeP90   float64 `csv:"size_p90"`
}

// setDistributions copies speed and size summaries into the flat CSV fields.
func (s *WindowStats) setDistributions(speed, size Distribution) {
	s.SpeedMean, s.SpeedStd = speed.Mean, speed.Std
	s.SpeedP10, s.SpeedP50, s.SpeedP90 = speed.P10, speed.P50, speed.P90
	s.SizeMean, s.SizeStd = size.Mean, size.Std
	s.SizeP10, s.SizeP50, s.SizeP90 = size.P10, size.P50, size.P90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartTick),
		slog.Int("window_end", s.WindowEndTick),
		slog.Int("fish", s.Fish),
		slog.Int("hooked", s.Hooked),
		slog.Int("escaping", s.Escaping),
		slog.Int("lures", s.Lures),
		slog.Int("captured_total", s.CapturedTotal),
		slog.Float64("predator_size", s.PredatorSize),
		slog.Int("fish_added", s.FishAdded),
		slog.Int("lures_added", s.LuresAdded),
		slog.Int("threat_flees", s.ThreatFlees),
		slog.Int("predator_flees", s.PredatorFlees),
		slog.Int("captures", s.Captures),
		slog.Float64("flee_rate", s.FleeRate),
		slog.Int("lures_eaten", s.LuresEaten),
		slog.Int("hooks_eaten", s.HooksEaten),
		slog.Int("hook_escapes", s.HookEscapes),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("size_mean", s.SizeMean),
		slog.Float64("size_p90", s.SizeP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"fish", s.Fish,
		"hooked", s.Hooked,
		"escaping", s.Escaping,
		"lures", s.Lures,
		"captured_total", s.CapturedTotal,
		"predator_size", s.PredatorSize,
		"captures", s.Captures,
		"predator_flees", s.PredatorFlees,
		"flee_rate", s.FleeRate,
		"threat_flees", s.ThreatFlees,
		"lures_eaten", s.LuresEaten,
		"hooks_eaten", s.HooksEaten,
		"hook_escapes", s.HookEscapes,
		"speed_mean", s.SpeedMean,
		"speed_std", s.SpeedStd,
		"size_mean", s.SizeMean,
	)
}
