package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fishtank/inspector"
)

// Inspector field colors
var (
	ColorBarBg       = rl.Color{R: 40, G: 40, B: 40, A: 255}
	ColorBarFill     = rl.Color{R: 90, G: 160, B: 210, A: 255}
	ColorText        = rl.Color{R: 220, G: 220, B: 220, A: 255}
	ColorTextDim     = rl.Color{R: 150, G: 150, B: 150, A: 255}
	ColorAngleBg     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorAngleNeedle = rl.Color{R: 255, G: 200, B: 100, A: 255}
	ColorBoolOn      = rl.Color{R: 100, G: 200, B: 100, A: 255}
	ColorBoolOff     = rl.Color{R: 80, G: 80, B: 80, A: 255}
)

const (
	fieldFont  = 14
	valueInset = 110
)

// drawFieldLabel renders "name: value" and returns the row height.
func drawFieldLabel(x, y int32, f inspector.Field) int32 {
	rl.DrawText(f.Name, x, y, fieldFont, ColorTextDim)
	rl.DrawText(inspector.FormatValue(f.Value, f.Format), x+valueInset, y, fieldFont, ColorText)
	return 18
}

// drawFieldBar renders a horizontal bar scaled to the field's Max.
func drawFieldBar(x, y int32, f inspector.Field, value float64) int32 {
	const barW, barH = 110, 12
	ratio := math.Max(0, math.Min(1, value/f.Max))

	rl.DrawText(f.Name, x, y, fieldFont, ColorTextDim)
	bx := x + valueInset
	rl.DrawRectangle(bx, y+1, barW, barH, ColorBarBg)
	rl.DrawRectangle(bx, y+1, int32(barW*ratio), barH, ColorBarFill)
	rl.DrawText(fmt.Sprintf("%.2f", value), bx+barW+6, y, fieldFont, ColorTextDim)
	return 18
}

// drawFieldAngle renders a compass needle. Headings are not wrapped by the
// simulation, so the degree text shows the raw value.
func drawFieldAngle(x, y int32, f inspector.Field, radians float64) int32 {
	const size = 36
	cx := x + valueInset + size/2
	cy := y + size/2

	rl.DrawText(f.Name, x, cy-7, fieldFont, ColorTextDim)
	rl.DrawCircle(cx, cy, size/2, ColorAngleBg)
	rl.DrawCircleLines(cx, cy, size/2, ColorTextDim)

	r := float64(size/2 - 4)
	end := rl.Vector2{
		X: float32(float64(cx) + r*math.Cos(radians)),
		Y: float32(float64(cy) + r*math.Sin(radians)),
	}
	rl.DrawLineEx(rl.Vector2{X: float32(cx), Y: float32(cy)}, end, 2, ColorAngleNeedle)
	rl.DrawText(fmt.Sprintf("%.0f deg", radians*180/math.Pi), cx+size/2+6, cy-7, fieldFont, ColorTextDim)
	return size + 4
}

// drawFieldBool renders an on/off indicator.
func drawFieldBool(x, y int32, f inspector.Field, on bool) int32 {
	const box = 12
	c, text := ColorBoolOff, "no"
	if on {
		c, text = ColorBoolOn, "yes"
	}
	rl.DrawText(f.Name, x, y, fieldFont, ColorTextDim)
	rl.DrawRectangle(x+valueInset, y+1, box, box, c)
	rl.DrawText(text, x+valueInset+box+6, y, fieldFont, c)
	return 18
}

// DrawField renders a field with its widget and returns the height used.
// Values that do not suit the widget fall back to a label.
func DrawField(x, y int32, f inspector.Field) int32 {
	switch f.Widget {
	case inspector.WidgetBar:
		if v, ok := inspector.Float(f.Value); ok {
			return drawFieldBar(x, y, f, v)
		}
	case inspector.WidgetAngle:
		if v, ok := inspector.Float(f.Value); ok {
			return drawFieldAngle(x, y, f, v)
		}
	case inspector.WidgetBool:
		if v, ok := f.Value.(bool); ok {
			return drawFieldBool(x, y, f, v)
		}
	}
	return drawFieldLabel(x, y, f)
}
