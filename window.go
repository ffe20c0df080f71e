package main

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fishtank/camera"
	"github.com/pthm-cable/fishtank/config"
	"github.com/pthm-cable/fishtank/game"
	"github.com/pthm-cable/fishtank/renderer"
	"github.com/pthm-cable/fishtank/ui"
)

const (
	maxStepsPerFrame = 8
	zoomStep         = 1.1
	legend           = "[F] fish  [B] bait  [L] line  [P] predator  [Space] pause  [+/-] speed  [T] perf  [R] reset view  wheel: zoom  right-drag: pan"
)

var letterboxColor = rl.Color{R: 20, G: 30, B: 40, A: 255}

// runWindow drives the raylib window: input, simulation steps, then drawing.
// Button and key actions are applied after the frame is drawn, so they take
// effect between ticks.
func runWindow(g *game.Game, cfg *config.Config, seed int64, maxTicks, steps int) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Fish Tank")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	screenW, screenH := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	worldW, worldH := g.WorldSize()
	cam := camera.New(float64(screenW), float64(screenH), worldW, worldH)

	scene := renderer.NewScene(seed)
	scene.Init()
	defer scene.Unload()

	controls := ui.NewControls(screenW, screenH)
	hud := ui.NewHUD()
	perfPanel := ui.NewPerfPanel(10, 80)
	ins := ui.NewInspector(screenW)

	steps = max(1, min(steps, maxStepsPerFrame))
	paused, showPerf := false, false
	snap := g.Snapshot()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			screenW, screenH = int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
			cam.Resize(float64(screenW), float64(screenH))
			controls.Resize(screenW, screenH)
			ins.Resize(screenW)
		}

		action := keyAction()
		switch {
		case rl.IsKeyPressed(rl.KeySpace):
			paused = !paused
		case rl.IsKeyPressed(rl.KeyEqual), rl.IsKeyPressed(rl.KeyKpAdd):
			steps = min(steps*2, maxStepsPerFrame)
		case rl.IsKeyPressed(rl.KeyMinus), rl.IsKeyPressed(rl.KeyKpSubtract):
			steps = max(steps/2, 1)
		case rl.IsKeyPressed(rl.KeyT):
			showPerf = !showPerf
		case rl.IsKeyPressed(rl.KeyR):
			cam.Reset()
		}

		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cam.ZoomBy(math.Pow(zoomStep, float64(wheel)))
		}
		if rl.IsMouseButtonDown(rl.MouseButtonRight) {
			d := rl.GetMouseDelta()
			cam.Pan(-float64(d.X), -float64(d.Y))
		}

		mouse := rl.GetMousePosition()
		overUI := controls.Contains(mouse.X, mouse.Y) || ins.Contains(mouse.X, mouse.Y)
		wx, wy := cam.ScreenToWorld(float64(mouse.X), float64(mouse.Y))
		if !overUI && cam.InWorld(wx, wy) {
			g.SetThreatPosition(wx, wy)
			if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
				ins.Select(g, wx, wy)
			}
		} else {
			g.ClearThreat()
		}

		if !paused {
			for i := 0; i < steps; i++ {
				g.Step()
			}
			snap = g.Snapshot()
		}
		ins.Refresh(g)
		g.Perf().RecordFrame()

		rl.BeginDrawing()
		rl.ClearBackground(letterboxColor)
		scene.Draw(&snap, cam, rl.GetTime())
		hud.Draw(ui.HUDData{
			Captured: snap.Captured,
			Fish:     len(snap.Fish),
			Lures:    len(snap.Lures),
			Tick:     snap.Tick,
			Speed:    steps,
			FPS:      rl.GetFPS(),
			Paused:   paused,
		})
		hud.DrawControls(screenH, legend)
		if pressed := controls.Draw(snap.Line.Active, snap.Predator != nil); pressed != game.ActionNone {
			action = pressed
		}
		ins.Draw()
		if showPerf {
			perfPanel.Draw(g.Perf().Stats())
		}
		rl.EndDrawing()

		g.Apply(action)

		if maxTicks > 0 && g.TickCount() >= maxTicks {
			break
		}
	}
}

// keyAction maps the action hotkeys pressed this frame.
func keyAction() game.Action {
	switch {
	case rl.IsKeyPressed(rl.KeyF):
		return game.ActionAddFish
	case rl.IsKeyPressed(rl.KeyB):
		return game.ActionAddLure
	case rl.IsKeyPressed(rl.KeyL):
		return game.ActionToggleLine
	case rl.IsKeyPressed(rl.KeyP):
		return game.ActionTogglePredator
	}
	return game.ActionNone
}
