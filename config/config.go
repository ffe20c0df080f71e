// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Population PopulationConfig `yaml:"population"`
	Agent      AgentConfig      `yaml:"agent"`
	Blink      BlinkConfig      `yaml:"blink"`
	Hook       HookConfig       `yaml:"hook"`
	Predator   PredatorConfig   `yaml:"predator"`
	Threat     ThreatConfig     `yaml:"threat"`
	Lure       LureConfig       `yaml:"lure"`
	Line       LineConfig       `yaml:"line"`
	Avoidance  AvoidanceConfig  `yaml:"avoidance"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds simulation world dimensions.
type WorldConfig struct {
	Width  int `yaml:"width"`  // World width in world units (0 = use screen width)
	Height int `yaml:"height"` // World height in world units (0 = use screen height)
}

// PopulationConfig holds population parameters.
type PopulationConfig struct {
	Initial int `yaml:"initial"`
}

// AgentConfig holds fish steering parameters. Speeds are world units per tick.
type AgentConfig struct {
	SizeMin             float64 `yaml:"size_min"`
	SizeMax             float64 `yaml:"size_max"`
	SpeedMin            float64 `yaml:"speed_min"`
	SpeedMax            float64 `yaml:"speed_max"`
	EscapeSpeed         float64 `yaml:"escape_speed"`          // Speed while fleeing the pointer
	PredatorEscapeSpeed float64 `yaml:"predator_escape_speed"` // Speed while fleeing the predator
	TurnRate            float64 `yaml:"turn_rate"`             // Heading smoothing when calm
	EscapeTurnRate      float64 `yaml:"escape_turn_rate"`      // Heading smoothing when escaping
	WanderChance        float64 `yaml:"wander_chance"`         // Per-tick probability of a heading nudge
	WanderAngle         float64 `yaml:"wander_angle"`          // Full width of the nudge in radians
}

// BlinkConfig holds eye-blink timing in ticks.
type BlinkConfig struct {
	InitialMin     float64 `yaml:"initial_min"`
	InitialSpread  float64 `yaml:"initial_spread"`
	ClosedInterval float64 `yaml:"closed_interval"`
	OpenMin        float64 `yaml:"open_min"`
	OpenSpread     float64 `yaml:"open_spread"`
}

// HookConfig holds hooked-fish behavior.
type HookConfig struct {
	StruggleInterval int     `yaml:"struggle_interval"`  // Ticks between heading jerks
	StruggleTurnRate float64 `yaml:"struggle_turn_rate"` // 1.0 = snap to the new heading
	EscapeChance     float64 `yaml:"escape_chance"`      // Per-tick escape probability once eligible
	EscapeInterval   int     `yaml:"escape_interval"`    // Ticks hooked before escape rolls start
}

// PredatorConfig holds predator parameters.
type PredatorConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Size       float64 `yaml:"size"`
	Growth     float64 `yaml:"growth"` // Size added per capture
	Speed      float64 `yaml:"speed"`
	TurnRate   float64 `yaml:"turn_rate"`
	FleeChance float64 `yaml:"flee_chance"` // Probability a fish in reach gets away
}

// ThreatConfig holds pointer threat parameters.
type ThreatConfig struct {
	Radius float64 `yaml:"radius"`
}

// LureConfig holds bait parameters.
type LureConfig struct {
	Size        float64 `yaml:"size"`
	EatDistance float64 `yaml:"eat_distance"`
}

// LineConfig holds fishing line geometry.
type LineConfig struct {
	Width float64 `yaml:"width"`
}

// AvoidanceConfig controls the peer collision-avoidance pass.
type AvoidanceConfig struct {
	Enabled        bool    `yaml:"enabled"`
	DistanceFactor float64 `yaml:"distance_factor"` // Avoid when closer than size * factor
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	WindowTicks int `yaml:"window_ticks"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WorldW float64 // Effective world width
	WorldH float64 // Effective world height
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW = float64(worldW)
	c.Derived.WorldH = float64(worldH)
}

// Validate reports the first parameter that would make the simulation ill-formed.
func (c *Config) Validate() error {
	var errs []error
	if c.Derived.WorldW <= 0 || c.Derived.WorldH <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.Derived.WorldW, c.Derived.WorldH))
	}
	if c.Population.Initial < 0 {
		errs = append(errs, fmt.Errorf("population.initial must not be negative, got %d", c.Population.Initial))
	}
	if c.Agent.SizeMin <= 0 || c.Agent.SizeMax < c.Agent.SizeMin {
		errs = append(errs, fmt.Errorf("agent size range [%v, %v) is invalid", c.Agent.SizeMin, c.Agent.SizeMax))
	}
	if c.Agent.SpeedMin < 0 || c.Agent.SpeedMax < c.Agent.SpeedMin {
		errs = append(errs, fmt.Errorf("agent speed range [%v, %v) is invalid", c.Agent.SpeedMin, c.Agent.SpeedMax))
	}
	if c.Hook.StruggleInterval <= 0 {
		errs = append(errs, fmt.Errorf("hook.struggle_interval must be positive, got %d", c.Hook.StruggleInterval))
	}
	if c.Telemetry.WindowTicks <= 0 {
		errs = append(errs, fmt.Errorf("telemetry.window_ticks must be positive, got %d", c.Telemetry.WindowTicks))
	}

	probs := []struct {
		name string
		v    float64
	}{
		{"agent.wander_chance", c.Agent.WanderChance},
		{"hook.escape_chance", c.Hook.EscapeChance},
		{"predator.flee_chance", c.Predator.FleeChance},
	}
	for _, p := range probs {
		if p.v < 0 || p.v > 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0, 1], got %v", p.name, p.v))
		}
	}
	return errors.Join(errs...)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
