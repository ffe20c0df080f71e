package main

import (
	"github.com/pthm-cable/fishtank/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name string  // Column name in balance_log.csv
	Path string  // Config path for logging
	Min  float64 // Lower bound
	Max  float64 // Upper bound

	field func(*config.Config) *float64
}

// ParamVector holds the set of tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the predator-balance parameter set: how fast and
// how sharply the predator chases, how often fish slip away, and how fast a
// fleeing fish swims.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "predator_speed", Path: "predator.speed", Min: 0.5, Max: 4.0,
				field: func(c *config.Config) *float64 { return &c.Predator.Speed }},
			{Name: "predator_turn_rate", Path: "predator.turn_rate", Min: 0.02, Max: 0.5,
				field: func(c *config.Config) *float64 { return &c.Predator.TurnRate }},
			{Name: "predator_flee_chance", Path: "predator.flee_chance", Min: 0.5, Max: 1.0,
				field: func(c *config.Config) *float64 { return &c.Predator.FleeChance }},
			{Name: "predator_escape_speed", Path: "agent.predator_escape_speed", Min: 1.5, Max: 5.0,
				field: func(c *config.Config) *float64 { return &c.Agent.PredatorEscapeSpeed }},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// Normalize converts raw parameter values to the [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		out[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return out
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		out[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return out
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		out[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return out
}

// ApplyToConfig writes clamped parameter values into cfg.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	for i, v := range pv.Clamp(values) {
		*pv.Specs[i].field(cfg) = v
	}
}

// ExtractFromConfig reads the current parameter values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		out[i] = *spec.field(cfg)
	}
	return out
}
