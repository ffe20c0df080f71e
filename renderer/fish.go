package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fishtank/camera"
	"github.com/pthm-cable/fishtank/components"
	"github.com/pthm-cable/fishtank/game"
)

const tailLength = 10

var (
	outline      = rl.Black
	predatorEye  = rl.Red
	lureColor    = rl.Yellow
	lineColor    = rl.Black
	threatColor  = rl.Color{R: 255, G: 255, B: 255, A: 90}
	hookRing     = rl.DarkGray
	escapeShadow = rl.Color{R: 0, G: 0, B: 0, A: 40}
)

// FishRenderer draws fish, the predator, lures and the fishing line.
type FishRenderer struct{}

// NewFishRenderer creates a new fish renderer.
func NewFishRenderer() *FishRenderer {
	return &FishRenderer{}
}

// DrawFish renders every fish in the snapshot that is on screen.
func (r *FishRenderer) DrawFish(fish []game.FishView, cam *camera.Camera) {
	for i := range fish {
		f := &fish[i]
		if !cam.IsVisible(f.X, f.Y, f.Size+tailLength) {
			continue
		}
		if f.Escaping {
			sx, sy := cam.WorldToScreen(f.X, f.Y)
			rl.DrawCircleV(vec(sx, sy), float32((f.Size+4)*cam.Scale()), escapeShadow)
		}
		drawBody(cam, f.X, f.Y, f.Heading, f.Size, toRL(f.Color), rl.White, f.EyeClosed)
	}
}

// DrawPredator renders the predator with its red eyes.
func (r *FishRenderer) DrawPredator(p *game.PredatorView, cam *camera.Camera) {
	if p == nil || !cam.IsVisible(p.X, p.Y, p.Size+tailLength) {
		return
	}
	drawBody(cam, p.X, p.Y, p.Heading, p.Size, toRL(p.Color), predatorEye, p.EyeClosed)
}

// DrawLures renders bait as small yellow discs. The hook gets a dark ring.
func (r *FishRenderer) DrawLures(lures []game.LureView, cam *camera.Camera) {
	scale := cam.Scale()
	for _, l := range lures {
		if !cam.IsVisible(l.X, l.Y, l.Size) {
			continue
		}
		sx, sy := cam.WorldToScreen(l.X, l.Y)
		radius := float32(l.Size * scale)
		rl.DrawCircleV(vec(sx, sy), radius, lureColor)
		rl.DrawCircleLinesV(vec(sx, sy), radius, outline)
		if l.Kind == components.LureHook {
			rl.DrawCircleLinesV(vec(sx, sy), radius+2, hookRing)
		}
	}
}

// DrawLine renders the fishing line from the top edge down to the hook.
func (r *FishRenderer) DrawLine(line game.LineView, cam *camera.Camera) {
	if !line.Active {
		return
	}
	x0, y0 := cam.WorldToScreen(line.X, 0)
	x1, y1 := cam.WorldToScreen(line.X, line.EndY)
	thick := float32(math.Max(1, cam.Scale()))
	rl.DrawLineEx(vec(x0, y0), vec(x1, y1), thick, lineColor)
}

// DrawThreat outlines the area fish are fleeing from.
func (r *FishRenderer) DrawThreat(snap *game.Snapshot, cam *camera.Camera) {
	if !snap.Threat.Active || snap.ThreatRadius <= 0 {
		return
	}
	sx, sy := cam.WorldToScreen(snap.Threat.X, snap.Threat.Y)
	rl.DrawCircleLinesV(vec(sx, sy), float32(snap.ThreatRadius*cam.Scale()), threatColor)
}

// drawBody draws an ellipse body of half-length size with a tail triangle
// behind it and two eyes, all in the fish's local frame.
func drawBody(cam *camera.Camera, x, y, heading, size float64, body, eye rl.Color, closed bool) {
	sx, sy := cam.WorldToScreen(x, y)
	scale := float32(cam.Scale())
	s := float32(size)

	rl.PushMatrix()
	rl.Translatef(float32(sx), float32(sy), 0)
	rl.Scalef(scale, scale, 1)
	rl.Rotatef(float32(heading*180/math.Pi), 0, 0, 1)

	rl.DrawEllipse(0, 0, s, s/2, body)
	rl.DrawEllipseLines(0, 0, s, s/2, outline)

	tip := rl.Vector2{X: -s}
	top := rl.Vector2{X: -s - tailLength, Y: -5}
	bottom := rl.Vector2{X: -s - tailLength, Y: 5}
	rl.DrawTriangle(tip, top, bottom, body)
	rl.DrawTriangleLines(tip, top, bottom, outline)

	eyeX := s / 2
	eyeY := -s / 4
	eyeR := s / 8
	for _, side := range []float32{-1, 1} {
		c := rl.Vector2{X: eyeX, Y: eyeY * side}
		rl.DrawCircleV(c, eyeR, eye)
		rl.DrawCircleLinesV(c, eyeR, outline)
		if closed {
			rl.DrawLineV(rl.Vector2{X: eyeX - eyeR, Y: c.Y}, rl.Vector2{X: eyeX + eyeR, Y: c.Y}, outline)
		} else {
			rl.DrawCircleV(c, eyeR/2, outline)
		}
	}

	rl.PopMatrix()
}

func toRL(c components.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func vec(x, y float64) rl.Vector2 {
	return rl.Vector2{X: float32(x), Y: float32(y)}
}
