// Package ui draws the on-screen controls and heads-up display and turns
// button presses into game actions.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme is the shared palette and spacing of every panel.
type Theme struct {
	Panel   rl.Color
	Edge    rl.Color
	Heading rl.Color
	Label   rl.Color
	Value   rl.Color
	Text    rl.Color // text drawn straight onto the water
	Track   rl.Color
	Fill    rl.Color

	Pad        int32
	Line       int32
	LabelWidth int32
	BarHeight  int32
	Font       int32
	HeadFont   int32
}

// DefaultTheme is a dark panel over the water with black HUD text, since
// the shallow water behind the HUD is light.
func DefaultTheme() Theme {
	return Theme{
		Panel:      rl.Color{R: 12, G: 28, B: 44, A: 215},
		Edge:       rl.Color{R: 70, G: 110, B: 140, A: 255},
		Heading:    rl.Gold,
		Label:      rl.LightGray,
		Value:      rl.RayWhite,
		Text:       rl.Black,
		Track:      rl.Color{R: 30, G: 45, B: 60, A: 255},
		Fill:       rl.Color{R: 90, G: 170, B: 210, A: 255},
		Pad:        10,
		Line:       16,
		LabelWidth: 90,
		BarHeight:  10,
		Font:       12,
		HeadFont:   14,
	}
}

// Renderer draws panel primitives in one theme.
type Renderer struct {
	Theme Theme
}

func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

func (r *Renderer) DrawPanel(x, y, w, h int32) {
	rl.DrawRectangle(x, y, w, h, r.Theme.Panel)
	rl.DrawRectangleLines(x, y, w, h, r.Theme.Edge)
}

// DrawSectionHeader returns the y of the first line under the header.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeadFont, r.Theme.Heading)
	return y + r.Theme.Line + 2
}

// DrawLabelValue draws "label:" and value on one line and returns the next y.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	t := r.Theme
	rl.DrawText(label+":", x, y, t.Font, t.Label)
	rl.DrawText(value, x+t.LabelWidth, y, t.Font, t.Value)
	return y + t.Line
}

// DrawPercentBar draws a bar filled to pct percent, clamped to [0, 100],
// followed by the number. Returns the next y.
func (r *Renderer) DrawPercentBar(x, y int32, label string, pct float64, width int32) int32 {
	t := r.Theme
	barX := x + t.LabelWidth
	barW := width - t.LabelWidth - 50
	fill := int32(float64(barW) * min(max(pct/100, 0), 1))

	rl.DrawText(label+":", x, y, t.Font, t.Label)
	rl.DrawRectangle(barX, y+2, barW, t.BarHeight, t.Track)
	rl.DrawRectangle(barX, y+2, fill, t.BarHeight, t.Fill)
	rl.DrawText(fmt.Sprintf("%.1f%%", pct), barX+barW+5, y, t.Font, t.Value)
	return y + t.Line
}
