package systems

import "math"

// Peer is another fish as seen by the avoidance pass.
type Peer struct {
	ID   uint32
	X, Y float64
}

// AvoidPeers retargets the fish when another fish is closer than size*factor.
// The pass only runs when avoidance is enabled in config; off by default.
func AvoidPeers(f Fish, peers []Peer, factor float64) {
	limit := f.Body.Size * factor
	for _, p := range peers {
		if p.ID == f.Agent.ID {
			continue
		}
		if Distance(f.Pos.X, f.Pos.Y, p.X, p.Y) < limit {
			f.Motion.TargetHeading = AngleTo(p.X, p.Y, f.Pos.X, f.Pos.Y) + math.Pi
		}
	}
}
