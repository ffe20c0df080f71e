// Package water produces the animated caustic pattern drawn behind the tank.
// It has no rendering dependency so both the window and terminal viewers
// can sample it.
package water

import (
	"math"

	perlin "github.com/aquilax/go-perlin"
)

const (
	alpha   = 2.0
	beta    = 2.0
	octaves = 3

	// Spatial frequency in noise units per tank width.
	scale = 3.0
	// Drift speed in noise units per second.
	drift = 0.15
)

// Field is a time-varying scalar field over the unit square.
type Field struct {
	noise *perlin.Perlin
}

// NewField creates a field. The same seed yields the same pattern.
func NewField(seed int64) *Field {
	return &Field{noise: perlin.NewPerlin(alpha, beta, octaves, seed)}
}

// Sample returns the brightness at normalized coordinates (u, v) and time t
// in seconds. The result is in [0, 1].
func (f *Field) Sample(u, v, t float64) float64 {
	n := f.noise.Noise3D(u*scale, v*scale, t*drift)
	// Perlin output sits roughly in [-0.7, 0.7].
	return clamp01(n/1.4 + 0.5)
}

// Fill samples a cols x rows grid into dst, row-major. dst must hold at
// least cols*rows values.
func (f *Field) Fill(dst []float64, cols, rows int, t float64) {
	if cols <= 0 || rows <= 0 {
		return
	}
	for r := 0; r < rows; r++ {
		v := (float64(r) + 0.5) / float64(rows)
		for c := 0; c < cols; c++ {
			u := (float64(c) + 0.5) / float64(cols)
			dst[r*cols+c] = f.Sample(u, v, t)
		}
	}
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return math.Max(0, math.Min(1, x))
}
