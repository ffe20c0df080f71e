package systems

import "math"

// Bounds represents the simulation bounds.
type Bounds struct {
	Width, Height float64
}

// distanceSq returns the squared distance between two points.
func distanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(distanceSq(x1, y1, x2, y2))
}

// AngleTo returns the direction from (x1, y1) toward (x2, y2) in radians.
// Coincident points yield 0.
func AngleTo(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	if dx == 0 && dy == 0 {
		return 0
	}
	return math.Atan2(dy, dx)
}

// blendAngle moves current toward target by rate (exponential smoothing).
// The difference is not wrapped, so a large target jump produces a long turn.
func blendAngle(current, target, rate float64) float64 {
	return current + (target-current)*rate
}

// advance moves a point by speed along heading.
func advance(x, y, heading, speed float64) (float64, float64) {
	return x + math.Cos(heading)*speed, y + math.Sin(heading)*speed
}
