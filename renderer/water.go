package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fishtank/camera"
	"github.com/pthm-cable/fishtank/water"
)

// Water texture resolution. The texture is stretched over the tank with
// bilinear filtering, so a coarse grid is enough.
const (
	waterCols = 96
	waterRows = 60
)

var (
	waterDeep    = color.RGBA{R: 120, G: 180, B: 210, A: 255}
	waterShallow = color.RGBA{R: 200, G: 232, B: 245, A: 255}
)

// WaterBackground renders an animated Perlin noise water background.
type WaterBackground struct {
	field  *water.Field
	tex    rl.Texture2D
	values []float64
	pixels []color.RGBA

	initialized bool
}

// NewWaterBackground creates a water background. Init must run after the
// raylib window exists.
func NewWaterBackground(seed int64) *WaterBackground {
	return &WaterBackground{
		field:  water.NewField(seed),
		values: make([]float64, waterCols*waterRows),
		pixels: make([]color.RGBA, waterCols*waterRows),
	}
}

// Init allocates the GPU texture.
func (w *WaterBackground) Init() {
	if w.initialized {
		return
	}
	img := rl.GenImageColor(waterCols, waterRows, waterDeep)
	w.tex = rl.LoadTextureFromImage(img)
	rl.SetTextureFilter(w.tex, rl.FilterBilinear)
	rl.UnloadImage(img)
	w.initialized = true
}

// Draw samples the field at time t (seconds) and fills the tank rectangle.
func (w *WaterBackground) Draw(cam *camera.Camera, t float64) {
	if !w.initialized {
		w.Init()
	}

	w.field.Fill(w.values, waterCols, waterRows, t)
	for i, v := range w.values {
		w.pixels[i] = lerpColor(waterDeep, waterShallow, v)
	}
	rl.UpdateTexture(w.tex, w.pixels)

	x0, y0 := cam.WorldToScreen(0, 0)
	x1, y1 := cam.WorldToScreen(cam.WorldW, cam.WorldH)
	src := rl.Rectangle{Width: waterCols, Height: waterRows}
	dst := rl.Rectangle{X: float32(x0), Y: float32(y0), Width: float32(x1 - x0), Height: float32(y1 - y0)}
	rl.DrawTexturePro(w.tex, src, dst, rl.Vector2{}, 0, rl.White)
}

// Unload frees resources.
func (w *WaterBackground) Unload() {
	if w.initialized {
		rl.UnloadTexture(w.tex)
		w.initialized = false
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
