package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/fishtank/camera"
	"github.com/pthm-cable/fishtank/components"
	"github.com/pthm-cable/fishtank/game"
	"github.com/pthm-cable/fishtank/water"
)

// Vertical viewport units per character row.
const rowScale = 2

// Water shading, darkest first.
var waterRunes = []rune{' ', '.', '~', '≈'}

var (
	outsideStyle = tcell.StyleDefault.Background(tcell.ColorBlack)
	hudStyle     = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

	waterFg     = tcell.NewRGBColor(170, 215, 235)
	predatorFg  = tcell.ColorRed
	hookedFg    = tcell.ColorOrangeRed
	lureFg      = tcell.ColorYellow
	hookFg      = tcell.ColorSilver
	lineFg      = tcell.ColorBlack
	threatFg    = tcell.ColorWhite
	waterDeep   = [3]int32{25, 70, 110}
	waterBright = [3]int32{60, 130, 175}
)

// Compose draws the snapshot into f: water, lures, the fishing line, fish,
// the predator, the threat marker and a one-line HUD on the top row.
func Compose(f *Frame, snap *game.Snapshot, cam *camera.Camera, field *water.Field, t float64) {
	f.Clear(outsideStyle)
	drawWater(f, cam, field, t)

	for _, l := range snap.Lures {
		r, fg := '•', lureFg
		if l.Kind == components.LureHook {
			r, fg = 'J', hookFg
		}
		col, row := cellOf(cam, l.X, l.Y)
		f.SetRune(col, row, r, fg, false)
	}

	if snap.Line.Active {
		col, end := cellOf(cam, snap.Line.X, snap.Line.EndY)
		_, top := cellOf(cam, snap.Line.X, 0)
		for row := top; row < end; row++ {
			f.SetRune(col, row, '│', lineFg, false)
		}
	}

	for _, fish := range snap.Fish {
		fg := rgb(fish.Color)
		if fish.Hooked {
			fg = hookedFg
		}
		drawFish(f, cam, fish.X, fish.Y, fish.Heading, fish.EyeClosed, fg, fish.Escaping)
	}

	if p := snap.Predator; p != nil {
		drawFish(f, cam, p.X, p.Y, p.Heading, p.EyeClosed, predatorFg, true)
	}

	if snap.Threat.Active {
		col, row := cellOf(cam, snap.Threat.X, snap.Threat.Y)
		f.SetRune(col, row, '+', threatFg, true)
	}

	hud := fmt.Sprintf(" Captured: %d  Fish: %d  Bait: %d  Tick: %d ",
		snap.Captured, len(snap.Fish), len(snap.Lures), snap.Tick)
	f.Text(0, 0, hud, hudStyle)
}

// Legend lists the key bindings shown on the bottom row.
const Legend = " [f] fish  [b] bait  [l] line  [p] predator  [space] pause  [q] quit "

// DrawLegend writes the key legend on the last row.
func DrawLegend(f *Frame) {
	f.Text(0, f.Rows-1, Legend, hudStyle)
}

func drawWater(f *Frame, cam *camera.Camera, field *water.Field, t float64) {
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			wx, wy := cam.ScreenToWorld(float64(col)+0.5, (float64(row)+0.5)*rowScale)
			if !cam.InWorld(wx, wy) {
				continue
			}
			v := field.Sample(wx/cam.WorldW, wy/cam.WorldH, t)
			idx := int(v * float64(len(waterRunes)))
			if idx >= len(waterRunes) {
				idx = len(waterRunes) - 1
			}
			bg := tcell.NewRGBColor(
				lerp(waterDeep[0], waterBright[0], v),
				lerp(waterDeep[1], waterBright[1], v),
				lerp(waterDeep[2], waterBright[2], v),
			)
			f.Set(col, row, waterRunes[idx], tcell.StyleDefault.Background(bg).Foreground(waterFg))
		}
	}
}

// drawFish draws a head glyph pointing along the heading and a tail glyph
// one cell behind it.
func drawFish(f *Frame, cam *camera.Camera, x, y, heading float64, eyeClosed bool, fg tcell.Color, bold bool) {
	col, row := cellOf(cam, x, y)
	head, tail, dc, dr := glyphs(heading)
	if eyeClosed {
		head = '='
	}
	f.SetRune(col-dc, row-dr, tail, fg, bold)
	f.SetRune(col, row, head, fg, bold)
}

// glyphs picks head and tail runes for the dominant direction of heading and
// the unit cell step toward the head.
func glyphs(heading float64) (head, tail rune, dc, dr int) {
	dx, dy := math.Cos(heading), math.Sin(heading)
	if math.Abs(dx) >= math.Abs(dy) {
		if dx >= 0 {
			return '>', '<', 1, 0
		}
		return '<', '>', -1, 0
	}
	if dy >= 0 {
		return 'v', '^', 0, 1
	}
	return '^', 'v', 0, -1
}

func cellOf(cam *camera.Camera, x, y float64) (col, row int) {
	sx, sy := cam.WorldToScreen(x, y)
	return int(math.Floor(sx)), int(math.Floor(sy / rowScale))
}

func rgb(c components.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func lerp(a, b int32, t float64) int32 {
	return a + int32(float64(b-a)*t)
}
