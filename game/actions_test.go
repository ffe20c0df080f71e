package game

import "testing"

func TestApply(t *testing.T) {
	tests := []struct {
		name         string
		actions      []Action
		wantFish     int
		wantLures    int
		wantLine     bool
		wantPredator bool
	}{
		{"none", []Action{ActionNone}, 0, 0, false, false},
		{"add fish twice", []Action{ActionAddFish, ActionAddFish}, 2, 0, false, false},
		{"add bait", []Action{ActionAddLure}, 0, 1, false, false},
		{"cast line", []Action{ActionToggleLine}, 0, 1, true, false},
		{"cast and reel in", []Action{ActionToggleLine, ActionToggleLine}, 0, 0, false, false},
		{"predator on", []Action{ActionTogglePredator}, 0, 0, false, true},
		{"predator on and off", []Action{ActionTogglePredator, ActionTogglePredator}, 0, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(Options{Config: testConfig(t, emptyTank), Seed: 5})
			for _, a := range tt.actions {
				g.Apply(a)
			}
			if g.Population() != tt.wantFish {
				t.Errorf("Population = %d, want %d", g.Population(), tt.wantFish)
			}
			if g.LureCount() != tt.wantLures {
				t.Errorf("LureCount = %d, want %d", g.LureCount(), tt.wantLures)
			}
			if g.Fishing().Active != tt.wantLine {
				t.Errorf("line active = %v, want %v", g.Fishing().Active, tt.wantLine)
			}
			if g.PredatorEnabled() != tt.wantPredator {
				t.Errorf("predator enabled = %v, want %v", g.PredatorEnabled(), tt.wantPredator)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleLine.String() != "fishing line" || Action(99).String() != "none" {
		t.Errorf("unexpected names %q, %q", ActionToggleLine, Action(99))
	}
}
