package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/fishtank/components"
)

func TestCalmFishRestoresBaseSpeed(t *testing.T) {
	tun := testTuning()
	f := newTestFish(50, 50, 0, 1)
	f.mot.Speed = 2.5
	f.agent.Escaping = true

	UpdateFish(f.view(), &Env{}, &tun, calm())

	if f.agent.Escaping {
		t.Error("fish should stop escaping without a threat")
	}
	if f.mot.Speed != f.mot.BaseSpeed {
		t.Errorf("speed = %v, want base speed %v", f.mot.Speed, f.mot.BaseSpeed)
	}
	if math.Abs(f.pos.X-51) > 1e-9 || math.Abs(f.pos.Y-50) > 1e-9 {
		t.Errorf("position = (%v, %v), want (51, 50)", f.pos.X, f.pos.Y)
	}
}

func TestThreatAvoidance(t *testing.T) {
	tests := []struct {
		name         string
		threat       Threat
		wantEscaping bool
		wantSpeed    float64
	}{
		{"inside radius", Threat{X: 40, Y: 50, Active: true}, true, 2.5},
		{"outside radius", Threat{X: 50, Y: 200, Active: true}, false, 1},
		{"inactive threat on top of fish", Threat{X: 50, Y: 50}, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tun := testTuning()
			f := newTestFish(50, 50, math.Pi/2, 1)

			out := UpdateFish(f.view(), &Env{Threat: tt.threat}, &tun, calm())

			if f.agent.Escaping != tt.wantEscaping {
				t.Errorf("escaping = %v, want %v", f.agent.Escaping, tt.wantEscaping)
			}
			if out.FledThreat != tt.wantEscaping {
				t.Errorf("FledThreat = %v, want %v", out.FledThreat, tt.wantEscaping)
			}
			if f.mot.Speed != tt.wantSpeed {
				t.Errorf("speed = %v, want %v", f.mot.Speed, tt.wantSpeed)
			}
			if tt.wantEscaping && f.mot.TargetHeading != 0 {
				t.Errorf("target heading = %v, want 0 (directly away from threat)", f.mot.TargetHeading)
			}
		})
	}
}

func TestEscapingTurnsFaster(t *testing.T) {
	tun := testTuning()
	calmFish := newTestFish(50, 50, 0, 1)
	calmFish.mot.TargetHeading = 1
	scared := newTestFish(50, 50, math.Pi, 1)

	UpdateFish(calmFish.view(), &Env{}, &tun, calm())
	UpdateFish(scared.view(), &Env{Threat: Threat{X: 40, Y: 50, Active: true}}, &tun, calm())

	if math.Abs(calmFish.mot.Heading-0.05) > 1e-12 {
		t.Errorf("calm heading = %v, want 0.05", calmFish.mot.Heading)
	}
	if want := math.Pi * 0.8; math.Abs(scared.mot.Heading-want) > 1e-12 {
		t.Errorf("escaping heading = %v, want %v", scared.mot.Heading, want)
	}
}

func TestHookedFishHoldsPosition(t *testing.T) {
	tun := testTuning()
	f := newTestFish(50, 50, 0, 1)
	SetHooked(&f.hook)

	for tick := 1; tick < f.hook.EscapeInterval; tick++ {
		out := UpdateFish(f.view(), &Env{}, &tun, calm())
		if f.pos.X != 50 || f.pos.Y != 50 {
			t.Fatalf("tick %d: hooked fish moved to (%v, %v)", tick, f.pos.X, f.pos.Y)
		}
		if f.hook.CaughtTimer != tick {
			t.Fatalf("tick %d: caught timer = %d", tick, f.hook.CaughtTimer)
		}
		if out.EscapedHook || !f.hook.Hooked {
			t.Fatalf("tick %d: escaped before the escape interval", tick)
		}
	}

	// escape_chance 1 means the first eligible roll succeeds
	out := UpdateFish(f.view(), &Env{}, &tun, calm())
	if !out.EscapedHook || f.hook.Hooked {
		t.Fatal("fish should break free once the escape interval is reached")
	}
	if f.hook.CaughtTimer != 0 {
		t.Errorf("caught timer = %d after escape, want 0", f.hook.CaughtTimer)
	}
	if f.pos.X != 50 || f.pos.Y != 50 {
		t.Errorf("fish moved on the tick it escaped")
	}
}

func TestHookedFishRollsEveryTickAfterInterval(t *testing.T) {
	tun := testTuning()
	f := newTestFish(50, 50, 0, 1)
	SetHooked(&f.hook)
	f.hook.EscapeInterval = 3
	f.hook.EscapeChance = 0.5
	f.hook.StruggleInterval = 1000

	// ticks 1-2 consume no rolls; ticks 3 and 4 fail, tick 5 succeeds
	rng := &scriptRand{vals: []float64{0.9, 0.7, 0.1}, fallback: 0.9}
	for tick := 1; tick <= 4; tick++ {
		UpdateFish(f.view(), &Env{}, &tun, rng)
		if !f.hook.Hooked {
			t.Fatalf("escaped early on tick %d", tick)
		}
	}
	UpdateFish(f.view(), &Env{}, &tun, rng)
	if f.hook.Hooked {
		t.Error("third roll below escape chance should free the fish")
	}
}

func TestHookedFishNeverEscapesWithZeroChance(t *testing.T) {
	tun := testTuning()
	f := newTestFish(50, 50, 0, 1)
	SetHooked(&f.hook)
	f.hook.EscapeChance = 0

	for i := 0; i < 250; i++ {
		UpdateFish(f.view(), &Env{}, &tun, calm())
	}
	if !f.hook.Hooked {
		t.Fatal("fish escaped with zero escape chance")
	}
	if f.hook.CaughtTimer != 250 {
		t.Errorf("caught timer = %d, want 250", f.hook.CaughtTimer)
	}
}

func TestHookedFishStruggles(t *testing.T) {
	tun := testTuning()
	f := newTestFish(50, 50, 0, 1)
	SetHooked(&f.hook)

	rng := &scriptRand{vals: []float64{0.25}, fallback: 0.5}
	for i := 0; i < f.hook.StruggleInterval-1; i++ {
		UpdateFish(f.view(), &Env{}, &tun, rng)
	}
	if f.mot.Heading != 0 {
		t.Fatalf("heading changed before the struggle interval: %v", f.mot.Heading)
	}

	UpdateFish(f.view(), &Env{}, &tun, rng)
	if f.hook.StruggleTimer != 0 {
		t.Errorf("struggle timer = %d, want reset to 0", f.hook.StruggleTimer)
	}
	if f.mot.TargetHeading != math.Pi/2 || f.mot.Heading != math.Pi/2 {
		t.Errorf("heading = %v target = %v, want both pi/2", f.mot.Heading, f.mot.TargetHeading)
	}
}

func TestBoundaryReflection(t *testing.T) {
	tests := []struct {
		name        string
		x, y        float64
		heading     float64
		wantHeading float64
	}{
		{"right wall", 99.5, 50, 0, math.Pi},
		{"left wall", 0.5, 50, math.Pi, 0},
		{"bottom wall", 50, 99.5, math.Pi / 2, -math.Pi / 2},
		{"top wall", 50, 0.5, -math.Pi / 2, math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tun := testTuning()
			f := newTestFish(tt.x, tt.y, tt.heading, 1)

			UpdateFish(f.view(), &Env{}, &tun, calm())

			if math.Abs(f.mot.Heading-tt.wantHeading) > 1e-12 {
				t.Errorf("heading = %v, want %v", f.mot.Heading, tt.wantHeading)
			}
			if f.mot.TargetHeading != f.mot.Heading {
				t.Errorf("target heading %v not snapped to heading %v", f.mot.TargetHeading, f.mot.Heading)
			}
		})
	}
}

func TestReflectXMirrorsHeading(t *testing.T) {
	pos := components.Position{X: 101, Y: 50}
	before := 0.3
	mot := components.Motion{Heading: before, TargetHeading: 1.2}

	if !Reflect(&pos, &mot, Bounds{Width: 100, Height: 100}) {
		t.Fatal("expected reflection")
	}
	if mot.Heading != math.Pi-before || mot.TargetHeading != mot.Heading {
		t.Errorf("heading = %v target = %v, want both %v", mot.Heading, mot.TargetHeading, math.Pi-before)
	}

	inside := components.Position{X: 50, Y: 50}
	mot = components.Motion{Heading: before, TargetHeading: 1.2}
	if Reflect(&inside, &mot, Bounds{Width: 100, Height: 100}) {
		t.Error("no reflection expected inside bounds")
	}
	if mot.TargetHeading != 1.2 {
		t.Error("target heading changed without reflection")
	}
}

func TestPredatorEncounter(t *testing.T) {
	tests := []struct {
		name         string
		roll         float64
		wantCaught   bool
		wantEscaping bool
		wantSize     float64
	}{
		{"flee roll", 0.1, false, true, 30},
		{"capture roll", 0.95, true, false, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tun := testTuning()
			f := newTestFish(50, 50, 0, 1)
			p := newTestPredator(50, 50, true)

			out := UpdateFish(f.view(), &Env{Predator: p.view()}, &tun, &scriptRand{vals: []float64{tt.roll}, fallback: 0.5})

			if f.agent.Caught != tt.wantCaught || out.Captured != tt.wantCaught {
				t.Errorf("caught = %v (outcome %v), want %v", f.agent.Caught, out.Captured, tt.wantCaught)
			}
			if f.agent.Escaping != tt.wantEscaping {
				t.Errorf("escaping = %v, want %v", f.agent.Escaping, tt.wantEscaping)
			}
			if p.body.Size != tt.wantSize {
				t.Errorf("predator size = %v, want %v", p.body.Size, tt.wantSize)
			}
			if tt.wantCaught {
				if f.pos.X != 50 || f.pos.Y != 50 {
					t.Error("captured fish should not move")
				}
				if p.hunter.Captures != 1 {
					t.Errorf("captures = %d, want 1", p.hunter.Captures)
				}
			} else {
				if f.mot.Speed != 3 {
					t.Errorf("speed = %v, want predator escape speed 3", f.mot.Speed)
				}
				if !finite(f.mot.Heading) || !finite(f.pos.X) || !finite(f.pos.Y) {
					t.Error("coincident predator produced a non-finite state")
				}
			}
		})
	}
}

func TestPredatorCaptureRate(t *testing.T) {
	tun := testTuning()
	rng := rand.New(rand.NewSource(7))

	const trials = 20000
	caught, fled := 0, 0
	for i := 0; i < trials; i++ {
		f := newTestFish(50, 50, 0, 1)
		p := newTestPredator(50, 50, true)
		UpdateFish(f.view(), &Env{Predator: p.view()}, &tun, rng)
		switch {
		case f.agent.Caught:
			caught++
			if p.body.Size != 31 {
				t.Fatalf("predator size = %v after capture, want 31", p.body.Size)
			}
		case f.agent.Escaping:
			fled++
		}
	}

	if caught+fled != trials {
		t.Fatalf("caught %d + fled %d != %d trials", caught, fled, trials)
	}
	rate := float64(caught) / trials
	if math.Abs(rate-0.1) > 0.01 {
		t.Errorf("capture rate = %.3f, want ~0.10", rate)
	}
}

func TestDisabledPredatorIsInert(t *testing.T) {
	tun := testTuning()
	f := newTestFish(50, 50, 0, 1)
	p := newTestPredator(50, 50, false)

	for i := 0; i < 100; i++ {
		UpdateFish(f.view(), &Env{Predator: p.view()}, &tun, &scriptRand{fallback: 0.99})
	}
	if f.agent.Caught || f.agent.Escaping {
		t.Error("disabled predator affected the fish")
	}
	if p.body.Size != 30 {
		t.Errorf("disabled predator grew to %v", p.body.Size)
	}
}

func TestLureConsumption(t *testing.T) {
	tests := []struct {
		name       string
		kind       components.LureKind
		wantHooked bool
	}{
		{"plain lure", components.LurePlain, false},
		{"hook lure", components.LureHook, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tun := testTuning()
			f := newTestFish(50, 50, 0, 1)
			env := &Env{Lures: []LureRef{
				{X: 55, Y: 50, Kind: tt.kind},
				{X: 90, Y: 90, Kind: components.LurePlain},
			}}

			out := UpdateFish(f.view(), env, &tun, calm())

			if out.Lure != 0 || !env.Lures[0].Consumed {
				t.Fatalf("nearest lure not eaten: outcome lure %d", out.Lure)
			}
			if env.Lures[1].Consumed {
				t.Error("far lure was consumed too")
			}
			if f.hook.Hooked != tt.wantHooked || out.Hooked != tt.wantHooked {
				t.Errorf("hooked = %v (outcome %v), want %v", f.hook.Hooked, out.Hooked, tt.wantHooked)
			}
			if f.mot.TargetHeading != math.Pi {
				t.Errorf("target heading = %v, want fresh random pi", f.mot.TargetHeading)
			}
		})
	}
}

func TestLureAttraction(t *testing.T) {
	tun := testTuning()
	f := newTestFish(50, 50, 0, 1)
	env := &Env{Lures: []LureRef{{X: 50, Y: 90}}}

	// wander fires but the lure still decides the target
	rng := &scriptRand{vals: []float64{0.001, 0.9}, fallback: 0.5}
	out := UpdateFish(f.view(), env, &tun, rng)

	if out.Lure != -1 || env.Lures[0].Consumed {
		t.Fatal("lure out of eat distance was consumed")
	}
	want := math.Atan2(90-50, 50-51.0)
	if math.Abs(f.mot.TargetHeading-want) > 1e-12 {
		t.Errorf("target heading = %v, want %v", f.mot.TargetHeading, want)
	}
}

func TestLureEatenOnlyOncePerTick(t *testing.T) {
	tun := testTuning()
	a := newTestFish(50, 50, 0, 1)
	b := newTestFish(52, 50, 0, 1)
	b.agent.ID = 2
	env := &Env{Lures: []LureRef{{X: 54, Y: 50}}}

	first := UpdateFish(a.view(), env, &tun, calm())
	second := UpdateFish(b.view(), env, &tun, calm())

	if first.Lure != 0 {
		t.Fatal("first fish should eat the lure")
	}
	if second.Lure != -1 {
		t.Error("second fish ate a lure that was already consumed")
	}
}

func TestIdleWander(t *testing.T) {
	tun := testTuning()
	f := newTestFish(50, 50, 0, 1)

	UpdateFish(f.view(), &Env{}, &tun, &scriptRand{vals: []float64{0.005, 0.75}, fallback: 0.5})

	if want := math.Pi / 8; math.Abs(f.mot.TargetHeading-want) > 1e-12 {
		t.Errorf("target heading = %v, want %v", f.mot.TargetHeading, want)
	}
}

func TestPeerAvoidance(t *testing.T) {
	peers := []Peer{{ID: 1, X: 51, Y: 50}, {ID: 2, X: 55, Y: 50}}

	t.Run("disabled", func(t *testing.T) {
		tun := testTuning()
		f := newTestFish(50, 50, 0, 1)
		UpdateFish(f.view(), &Env{Peers: peers}, &tun, calm())
		if f.mot.TargetHeading != 0 {
			t.Errorf("target heading = %v, avoidance should be inert", f.mot.TargetHeading)
		}
	})

	t.Run("enabled", func(t *testing.T) {
		tun := testTuning()
		tun.Avoidance = true
		f := newTestFish(50, 50, 0, 1)
		UpdateFish(f.view(), &Env{Peers: peers}, &tun, calm())
		if want := 2 * math.Pi; math.Abs(f.mot.TargetHeading-want) > 1e-12 {
			t.Errorf("target heading = %v, want %v", f.mot.TargetHeading, want)
		}
	})

	t.Run("grid", func(t *testing.T) {
		tun := testTuning()
		tun.Avoidance = true
		var g PeerGrid
		g.Reset(peers, 100, 100, 20)
		f := newTestFish(50, 50, 0, 1)
		UpdateFish(f.view(), &Env{Grid: &g}, &tun, calm())
		if want := 2 * math.Pi; math.Abs(f.mot.TargetHeading-want) > 1e-12 {
			t.Errorf("target heading = %v, want %v", f.mot.TargetHeading, want)
		}
	})
}

func TestLoneFishScenario(t *testing.T) {
	tun := testTuning()
	tun.Bounds = Bounds{Width: 400, Height: 300}
	f := newTestFish(200, 150, 1, 1.3)
	env := &Env{
		Threat:   Threat{X: -1e9, Y: -1e9, Active: true},
		Predator: newTestPredator(200, 150, false).view(),
	}
	rng := rand.New(rand.NewSource(3))

	for tick := 0; tick < 5000; tick++ {
		x, y := f.pos.X, f.pos.Y
		UpdateFish(f.view(), env, &tun, rng)

		if f.agent.Caught || f.agent.Escaping {
			t.Fatalf("tick %d: caught=%v escaping=%v", tick, f.agent.Caught, f.agent.Escaping)
		}
		if f.mot.Speed != f.mot.BaseSpeed {
			t.Fatalf("tick %d: speed %v != base %v", tick, f.mot.Speed, f.mot.BaseSpeed)
		}
		if !finite(f.pos.X) || !finite(f.pos.Y) || !finite(f.mot.Heading) {
			t.Fatalf("tick %d: non-finite state", tick)
		}
		if step := Distance(x, y, f.pos.X, f.pos.Y); math.Abs(step-1.3) > 1e-9 {
			t.Fatalf("tick %d: moved %v, want exactly base speed", tick, step)
		}
	}
}
