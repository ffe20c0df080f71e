// Package layout computes screen rectangles for the window UI without
// touching raylib, so hit tests stay testable.
package layout

// Rect is an axis-aligned screen rectangle in pixels.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Row is a horizontally centred line of equal buttons anchored to the
// bottom edge.
type Row struct {
	Width, Height float32 // per button
	Gap           float32
	Margin        float32 // distance from the bottom edge
}

// Place returns the rectangles of n buttons on a screenW x screenH screen.
func (r Row) Place(screenW, screenH float32, n int) []Rect {
	if n <= 0 {
		return nil
	}
	total := float32(n)*(r.Width+r.Gap) - r.Gap
	x := (screenW - total) / 2
	y := screenH - r.Height - r.Margin

	rects := make([]Rect, n)
	for i := range rects {
		rects[i] = Rect{X: x, Y: y, W: r.Width, H: r.Height}
		x += r.Width + r.Gap
	}
	return rects
}

// Hit returns the index of the first rectangle containing (x, y), or -1.
func Hit(rects []Rect, x, y float32) int {
	for i, r := range rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
