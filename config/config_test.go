package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Population.Initial != 100 {
		t.Errorf("Population.Initial = %d, want 100", cfg.Population.Initial)
	}
	if cfg.Predator.Enabled {
		t.Error("predator should be disabled by default")
	}
	if cfg.Predator.FleeChance != 0.9 {
		t.Errorf("Predator.FleeChance = %v, want 0.9", cfg.Predator.FleeChance)
	}
	if cfg.Threat.Radius != 100 {
		t.Errorf("Threat.Radius = %v, want 100", cfg.Threat.Radius)
	}
	if cfg.Lure.EatDistance != 20 {
		t.Errorf("Lure.EatDistance = %v, want 20", cfg.Lure.EatDistance)
	}
	if cfg.Avoidance.Enabled {
		t.Error("peer avoidance should be off by default")
	}
}

func TestDerivedWorldSize(t *testing.T) {
	tests := []struct {
		name         string
		yaml         string
		wantW, wantH float64
	}{
		{"falls back to screen", "", 1280, 800},
		{"explicit world", "world:\n  width: 300\n  height: 200\n", 300, 200},
		{"partial override", "world:\n  width: 500\n", 500, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ""
			if tt.yaml != "" {
				path = filepath.Join(t.TempDir(), "config.yaml")
				if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
					t.Fatal(err)
				}
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			if cfg.Derived.WorldW != tt.wantW || cfg.Derived.WorldH != tt.wantH {
				t.Errorf("world = %vx%v, want %vx%v", cfg.Derived.WorldW, cfg.Derived.WorldH, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"flee chance above one", "predator:\n  flee_chance: 1.5\n", "predator.flee_chance"},
		{"inverted size range", "agent:\n  size_min: 30\n  size_max: 10\n", "agent size range"},
		{"zero struggle interval", "hook:\n  struggle_interval: 0\n", "struggle_interval"},
		{"negative population", "population:\n  initial: -1\n", "population.initial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Predator.Enabled = true
	cfg.Population.Initial = 7

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if !loaded.Predator.Enabled || loaded.Population.Initial != 7 {
		t.Errorf("overrides lost: enabled=%v initial=%d", loaded.Predator.Enabled, loaded.Population.Initial)
	}
}
