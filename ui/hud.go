package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fishtank/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Captured int
	Fish     int
	Lures    int
	Tick     int
	Speed    int
	FPS      int32
	Paused   bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the captured count in the top-left corner with the tank
// counters beneath it.
func (h *HUD) Draw(data HUDData) {
	text := h.renderer.Theme.Text
	rl.DrawText(fmt.Sprintf("Captured: %d", data.Captured), 10, 10, 20, text)
	rl.DrawText(
		fmt.Sprintf("Fish: %d | Bait: %d | Tick: %d | Speed: %dx | FPS: %d",
			data.Fish, data.Lures, data.Tick, data.Speed, data.FPS),
		10, 35, 14, text,
	)
	if data.Paused {
		rl.DrawText("PAUSED", 10, 53, 14, rl.Maroon)
	}
}

// DrawControls renders the key legend above the button row.
func (h *HUD) DrawControls(screenH int32, legend string) {
	rl.DrawText(legend, 10, screenH-62, 12, rl.DarkGray)
}

// PerfPanel renders tick timing broken down by phase.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), x: x, y: y, width: 260}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x, p.y = x, y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	r := p.renderer
	pad := r.Theme.Pad
	rows := int32(len(telemetry.Phases())) + 3
	r.DrawPanel(p.x, p.y, p.width, rows*r.Theme.Line+pad*2+4)

	x := p.x + pad
	y := r.DrawSectionHeader(x, p.y+pad, "Tick Performance")
	y = r.DrawLabelValue(x, y, "avg tick", stats.AvgTick.Round(time.Microsecond).String())
	y = r.DrawLabelValue(x, y, "ticks/sec", fmt.Sprintf("%.0f", stats.TicksPerSecond))
	for _, ph := range telemetry.Phases() {
		y = r.DrawPercentBar(x, y, ph.String(), stats.PhasePct[ph], p.width-pad*2)
	}
}
