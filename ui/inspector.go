package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fishtank/game"
	"github.com/pthm-cable/fishtank/inspector"
)

// Panel dimensions
const (
	PanelWidth   = 300
	PanelPadding = 10
	HeaderHeight = 28
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 230}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.White
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
)

// Inspector tracks the selected fish and draws its components.
type Inspector struct {
	selected    uint32
	hasSelected bool
	detail      game.FishDetail
	sections    []inspector.Section

	screenW int32
}

// NewInspector creates an inspector anchored to the right edge of the screen.
func NewInspector(screenW int32) *Inspector {
	return &Inspector{screenW: screenW}
}

// Resize re-anchors the panel.
func (ins *Inspector) Resize(screenW int32) {
	ins.screenW = screenW
}

// Select picks the fish under a world position. A miss clears the selection.
func (ins *Inspector) Select(g *game.Game, wx, wy float64) {
	id, ok := g.FishAt(wx, wy)
	ins.selected, ins.hasSelected = id, ok
	ins.Refresh(g)
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
	ins.sections = nil
}

// Selected returns the selected fish ID.
func (ins *Inspector) Selected() (uint32, bool) {
	return ins.selected, ins.hasSelected
}

// Contains reports whether a screen point falls on the open panel, so the
// caller can keep clicks there from reaching the tank.
func (ins *Inspector) Contains(sx, sy float32) bool {
	if !ins.hasSelected {
		return false
	}
	x := float32(ins.panelX())
	return sx >= x && sx <= x+PanelWidth && sy >= PanelPadding && sy <= PanelPadding+float32(ins.height())
}

// Refresh re-reads the selected fish. A captured fish drops the selection.
func (ins *Inspector) Refresh(g *game.Game) {
	if !ins.hasSelected {
		ins.sections = nil
		return
	}
	d, ok := g.InspectFish(ins.selected)
	if !ok {
		ins.Deselect()
		return
	}
	ins.detail = d
	ins.sections = inspector.Sections(d.Components()...)
}

// Draw renders the panel when a fish is selected.
func (ins *Inspector) Draw() {
	if !ins.hasSelected {
		return
	}
	x := ins.panelX()
	y := int32(PanelPadding)
	h := ins.height()

	rl.DrawRectangle(x, y, PanelWidth, h, ColorPanelBg)
	rl.DrawRectangleLines(x, y, PanelWidth, h, ColorPanelBorder)
	rl.DrawRectangle(x, y, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText(ins.detail.Agent.Kind.String()+" #"+inspector.FormatValue(ins.selected, ""), x+PanelPadding, y+7, 16, ColorHeaderText)

	cy := y + HeaderHeight + 6
	for _, s := range ins.sections {
		rl.DrawText(s.Title, x+PanelPadding, cy, fieldFont, ColorSectionText)
		cy += 18
		for _, f := range s.Fields {
			cy += DrawField(x+PanelPadding+6, cy, f)
		}
		cy += 4
	}
}

func (ins *Inspector) panelX() int32 {
	return ins.screenW - PanelWidth - PanelPadding
}

// height estimates the panel height from the section layout.
func (ins *Inspector) height() int32 {
	h := int32(HeaderHeight + 10)
	for _, s := range ins.sections {
		h += 22
		for _, f := range s.Fields {
			if f.Widget == inspector.WidgetAngle {
				h += 40
			} else {
				h += 18
			}
		}
	}
	return h
}
