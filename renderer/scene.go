// Package renderer draws tank snapshots with raylib.
package renderer

import (
	"github.com/pthm-cable/fishtank/camera"
	"github.com/pthm-cable/fishtank/game"
)

// Scene composes the background and entity renderers in draw order.
type Scene struct {
	water *WaterBackground
	fish  *FishRenderer
}

// NewScene creates a scene. Init must run after the raylib window exists.
func NewScene(seed int64) *Scene {
	return &Scene{
		water: NewWaterBackground(seed),
		fish:  NewFishRenderer(),
	}
}

// Init allocates GPU resources.
func (s *Scene) Init() {
	s.water.Init()
}

// Draw renders one frame of the snapshot. t is wall time in seconds and
// only animates the water.
func (s *Scene) Draw(snap *game.Snapshot, cam *camera.Camera, t float64) {
	s.water.Draw(cam, t)
	s.fish.DrawPredator(snap.Predator, cam)
	s.fish.DrawLures(snap.Lures, cam)
	s.fish.DrawFish(snap.Fish, cam)
	s.fish.DrawLine(snap.Line, cam)
	s.fish.DrawThreat(snap, cam)
}

// Unload frees GPU resources.
func (s *Scene) Unload() {
	s.water.Unload()
}
