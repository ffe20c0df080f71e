package game

import (
	"log/slog"

	"github.com/pthm-cable/fishtank/systems"
	"github.com/pthm-cable/fishtank/telemetry"
)

// recordOutcome feeds one fish update into the collector and the event log.
func (g *Game) recordOutcome(id uint32, out systems.Outcome, env *systems.Env) {
	if out.FledThreat {
		g.collector.RecordThreatFlee()
	}
	if out.FledPredator {
		g.collector.RecordPredatorFlee()
	}
	if out.Captured {
		g.collector.RecordCapture()
		slog.Info("fish captured", "fish", id, "tick", g.tick, "predator_size", env.Predator.Body.Size)
	}
	if out.Lure >= 0 {
		kind := env.Lures[out.Lure].Kind
		g.collector.RecordLureEaten(kind)
		slog.Debug("lure eaten", "fish", id, "kind", kind.String(), "tick", g.tick)
	}
	if out.Hooked {
		slog.Info("fish hooked", "fish", id, "tick", g.tick)
	}
	if out.EscapedHook {
		g.collector.RecordHookEscape()
		slog.Info("fish escaped the hook", "fish", id, "tick", g.tick)
	}
}

// flushTelemetry closes the stats window when it is due.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.sampleTank())
	perfStats := g.perf.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.output != nil {
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.output.WritePerf(perfStats, g.tick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// sampleTank gathers the end-of-window population state.
func (g *Game) sampleTank() telemetry.TankSample {
	s := telemetry.TankSample{
		Fish:     g.fish,
		Lures:    g.lures,
		Captured: g.captured,
		Speeds:   make([]float64, 0, g.fish),
		Sizes:    make([]float64, 0, g.fish),
	}

	query := g.fishFilter.Query()
	for query.Next() {
		_, mot, body, _, agent, hook := query.Get()
		s.Speeds = append(s.Speeds, mot.Speed)
		s.Sizes = append(s.Sizes, body.Size)
		if hook.Hooked {
			s.Hooked++
		}
		if agent.Escaping {
			s.Escaping++
		}
	}

	if p := g.predatorView(); p.Active() {
		s.PredatorSize = p.Body.Size
	}
	return s
}
