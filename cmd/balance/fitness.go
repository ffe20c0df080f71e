package main

import (
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/fishtank/config"
	"github.com/pthm-cable/fishtank/game"
	"github.com/pthm-cable/fishtank/telemetry"
)

// Result summarizes one evaluation across all seeds.
type Result struct {
	Fitness         float64 // mean squared distance from the target capture fraction
	CaptureFraction float64 // mean share of the starting school captured
	FleeRate        float64 // mean predator flee rate over windows with encounters
}

// Evaluator runs headless tanks with the predator enabled and scores how
// close its lethality lands to a target.
type Evaluator struct {
	params *ParamVector
	ticks  int
	seeds  []int64
	base   *config.Config
	target float64
}

// NewEvaluator creates an evaluator. target is the share of the starting
// school the predator should capture within ticks.
func NewEvaluator(params *ParamVector, ticks int, seeds []int64, base *config.Config, target float64) *Evaluator {
	return &Evaluator{params: params, ticks: ticks, seeds: seeds, base: base, target: target}
}

// seedRun holds the outcome of a single tank.
type seedRun struct {
	captureFraction float64
	fleeRates       []float64
}

// Evaluate scores raw parameter values (lower fitness = better).
// Seeds run in parallel; each tank owns its world and random source.
func (e *Evaluator) Evaluate(x []float64) Result {
	cfg := *e.base
	e.params.ApplyToConfig(&cfg, x)
	cfg.Predator.Enabled = true

	runs := make([]seedRun, len(e.seeds))
	var wg sync.WaitGroup
	for i, seed := range e.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			runs[idx] = e.runSeed(&cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var res Result
	if len(runs) == 0 {
		return res
	}

	errs := make([]float64, len(runs))
	fractions := make([]float64, len(runs))
	var rates []float64
	for i, r := range runs {
		d := r.captureFraction - e.target
		errs[i] = d * d
		fractions[i] = r.captureFraction
		rates = append(rates, r.fleeRates...)
	}
	res.Fitness = stat.Mean(errs, nil)
	res.CaptureFraction = stat.Mean(fractions, nil)
	if len(rates) > 0 {
		res.FleeRate = stat.Mean(rates, nil)
	}
	return res
}

func (e *Evaluator) runSeed(cfg *config.Config, seed int64) seedRun {
	var run seedRun
	g := game.New(game.Options{
		Config: cfg,
		Seed:   seed,
		StatsCallback: func(s telemetry.WindowStats) {
			if s.PredatorFlees+s.Captures > 0 {
				run.fleeRates = append(run.fleeRates, s.FleeRate)
			}
		},
	})
	for i := 0; i < e.ticks; i++ {
		g.Step()
	}
	if n := cfg.Population.Initial; n > 0 {
		run.captureFraction = float64(g.Captured()) / float64(n)
	}
	return run
}
