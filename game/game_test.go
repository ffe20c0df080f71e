package game

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pthm-cable/fishtank/components"
	"github.com/pthm-cable/fishtank/config"
	"github.com/pthm-cable/fishtank/telemetry"
)

// constRand always returns the same value, pinning every probabilistic branch.
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

func testConfig(t *testing.T, mutate func(*config.Config)) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	if mutate != nil {
		mutate(cfg)
	}
	return cfg
}

func emptyTank(cfg *config.Config) {
	cfg.Population.Initial = 0
}

func TestNewGameDefaults(t *testing.T) {
	g := New(Options{Config: testConfig(t, nil), Seed: 1})

	if g.Population() != 100 {
		t.Errorf("Population = %d, want 100", g.Population())
	}
	if g.LureCount() != 0 || g.Captured() != 0 {
		t.Errorf("lures = %d captured = %d, want 0 and 0", g.LureCount(), g.Captured())
	}
	if g.PredatorEnabled() {
		t.Error("predator should start disabled")
	}

	snap := g.Snapshot()
	if len(snap.Fish) != 100 {
		t.Fatalf("snapshot has %d fish, want 100", len(snap.Fish))
	}
	if snap.Predator != nil {
		t.Error("disabled predator should not appear in the snapshot")
	}
	if snap.Width != 1280 || snap.Height != 800 {
		t.Errorf("world = %vx%v, want 1280x800", snap.Width, snap.Height)
	}

	cfg := g.Config()
	for i, f := range snap.Fish {
		if i > 0 && f.ID <= snap.Fish[i-1].ID {
			t.Fatalf("fish not sorted by unique ID at %d", i)
		}
		if f.Size < cfg.Agent.SizeMin || f.Size >= cfg.Agent.SizeMax {
			t.Errorf("fish %d size %v out of range", f.ID, f.Size)
		}
		if f.X < 0 || f.X > snap.Width || f.Y < 0 || f.Y > snap.Height {
			t.Errorf("fish %d spawned outside the tank at (%v, %v)", f.ID, f.X, f.Y)
		}
	}
}

func TestPopulationStableWithoutPredator(t *testing.T) {
	g := New(Options{Config: testConfig(t, nil), Seed: 7})

	for i := 0; i < 600; i++ {
		g.Step()
	}
	if g.Population() != 100 || len(g.Snapshot().Fish) != 100 {
		t.Errorf("population = %d, want 100", g.Population())
	}
	if g.TickCount() != 600 {
		t.Errorf("TickCount = %d, want 600", g.TickCount())
	}
}

func TestSeededRunsMatch(t *testing.T) {
	cfg := testConfig(t, func(c *config.Config) { c.Predator.Enabled = true })
	a := New(Options{Config: cfg, Seed: 42})
	b := New(Options{Config: cfg, Seed: 42})

	var sa, sb Snapshot
	for i := 0; i < 300; i++ {
		sa = a.Tick()
		sb = b.Tick()
	}
	if !reflect.DeepEqual(sa, sb) {
		t.Error("same seed produced different tanks")
	}
}

func TestAvoidanceRunsMatch(t *testing.T) {
	cfg := testConfig(t, func(c *config.Config) { c.Avoidance.Enabled = true })
	a := New(Options{Config: cfg, Seed: 9})
	b := New(Options{Config: cfg, Seed: 9})

	var sa, sb Snapshot
	for i := 0; i < 300; i++ {
		sa = a.Tick()
		sb = b.Tick()
	}
	if !reflect.DeepEqual(sa, sb) {
		t.Error("same seed produced different tanks with avoidance on")
	}
	if len(sa.Fish) != 100 {
		t.Errorf("population = %d, want 100", len(sa.Fish))
	}
}

func TestAddFishAndLure(t *testing.T) {
	g := New(Options{Config: testConfig(t, emptyTank), Seed: 3})

	g.AddFish()
	g.AddFish()
	g.AddPlainLure()

	if g.Population() != 2 {
		t.Errorf("Population = %d, want 2", g.Population())
	}
	if g.LureCount() != 1 {
		t.Errorf("LureCount = %d, want 1", g.LureCount())
	}
	snap := g.Snapshot()
	if len(snap.Lures) != 1 || snap.Lures[0].Size != 5 {
		t.Errorf("lures in snapshot = %+v", snap.Lures)
	}
}

func TestThreatMakesFishEscape(t *testing.T) {
	g := New(Options{Config: testConfig(t, emptyTank), Seed: 3})
	g.spawnFish(500, 400)

	g.SetThreatPosition(510, 400)
	if snap := g.Tick(); !snap.Fish[0].Escaping {
		t.Fatal("fish inside the threat radius should escape")
	}

	g.ClearThreat()
	if snap := g.Tick(); snap.Fish[0].Escaping {
		t.Error("fish kept escaping after the threat was cleared")
	}
}

func TestPredatorCapturesRemoveFish(t *testing.T) {
	cfg := testConfig(t, func(c *config.Config) {
		emptyTank(c)
		c.Predator.Enabled = true
	})
	// 0.95 loses every flee roll
	g := New(Options{Config: cfg, Rand: constRand(0.95)})

	p := g.predatorView()
	for i := 0; i < 3; i++ {
		g.spawnFish(p.Pos.X, p.Pos.Y)
	}

	snap := g.Tick()

	if g.Population() != 0 || len(snap.Fish) != 0 {
		t.Errorf("population = %d, want 0", g.Population())
	}
	if g.Captured() != 3 || snap.Captured != 3 {
		t.Errorf("captured = %d, want 3", g.Captured())
	}
	if snap.Predator == nil {
		t.Fatal("enabled predator missing from snapshot")
	}
	if snap.Predator.Size != 33 || snap.Predator.Captures != 3 {
		t.Errorf("predator size = %v captures = %d, want 33 and 3", snap.Predator.Size, snap.Predator.Captures)
	}
}

func TestPredatorFleeKeepsFish(t *testing.T) {
	cfg := testConfig(t, func(c *config.Config) {
		emptyTank(c)
		c.Predator.Enabled = true
	})
	g := New(Options{Config: cfg, Rand: constRand(0.5)})

	p := g.predatorView()
	g.spawnFish(p.Pos.X, p.Pos.Y)

	snap := g.Tick()
	if g.Population() != 1 || g.Captured() != 0 {
		t.Fatalf("population = %d captured = %d, want 1 and 0", g.Population(), g.Captured())
	}
	if !snap.Fish[0].Escaping {
		t.Error("fish that won the flee roll should be escaping")
	}
}

func TestDisabledPredatorNeverCaptures(t *testing.T) {
	g := New(Options{Config: testConfig(t, emptyTank), Rand: constRand(0.95)})

	p := g.predatorView()
	g.spawnFish(p.Pos.X, p.Pos.Y)
	for i := 0; i < 100; i++ {
		g.Step()
	}
	if g.Population() != 1 || g.Captured() != 0 {
		t.Errorf("population = %d captured = %d, want 1 and 0", g.Population(), g.Captured())
	}
}

func TestTogglePredator(t *testing.T) {
	g := New(Options{Config: testConfig(t, nil), Seed: 1})

	if !g.TogglePredator() || !g.PredatorEnabled() {
		t.Fatal("toggle should enable the predator")
	}
	if g.Snapshot().Predator == nil {
		t.Error("enabled predator missing from snapshot")
	}
	if g.TogglePredator() || g.PredatorEnabled() {
		t.Error("second toggle should disable the predator")
	}
	g.SetPredatorEnabled(true)
	if !g.PredatorEnabled() {
		t.Error("SetPredatorEnabled(true) had no effect")
	}
}

func TestLureEatenOnce(t *testing.T) {
	g := New(Options{Config: testConfig(t, emptyTank), Seed: 5})
	g.spawnLure(components.LurePlain, 300, 300)
	g.spawnFish(300, 300)
	g.spawnFish(301, 300)

	snap := g.Tick()

	if g.LureCount() != 0 || len(snap.Lures) != 0 {
		t.Errorf("LureCount = %d, want 0", g.LureCount())
	}
	for _, f := range snap.Fish {
		if f.Hooked {
			t.Errorf("fish %d hooked by a plain lure", f.ID)
		}
	}
}

func TestStatsWindows(t *testing.T) {
	cfg := testConfig(t, func(c *config.Config) { c.Telemetry.WindowTicks = 10 })
	var windows []telemetry.WindowStats
	g := New(Options{
		Config:        cfg,
		Seed:          9,
		StatsCallback: func(s telemetry.WindowStats) { windows = append(windows, s) },
	})

	for i := 0; i < 25; i++ {
		g.Step()
	}

	if len(windows) != 2 {
		t.Fatalf("got %d windows, want 2", len(windows))
	}
	if windows[0].WindowEndTick != 10 || windows[1].WindowEndTick != 20 {
		t.Errorf("window ends = %d, %d; want 10, 20", windows[0].WindowEndTick, windows[1].WindowEndTick)
	}
	if windows[1].Fish != 100 || windows[1].SizeMean == 0 {
		t.Errorf("window sample missing population data: %+v", windows[1])
	}
}

func TestTelemetryOutput(t *testing.T) {
	dir := t.TempDir()
	om, err := telemetry.NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	cfg := testConfig(t, func(c *config.Config) { c.Telemetry.WindowTicks = 10 })
	g := New(Options{Config: cfg, Seed: 2, Output: om})

	for i := 0; i < 30; i++ {
		g.Step()
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Errorf("telemetry.csv has %d lines, want header + 3 windows", len(lines))
	}
}
