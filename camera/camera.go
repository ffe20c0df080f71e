// Package camera maps between tank coordinates and a screen viewport.
package camera

import "math"

// Camera fits the bounded tank into a viewport, preserving aspect ratio, with
// optional zoom and pan. At zoom 1 the whole tank is visible and letterboxed.
type Camera struct {
	// Center of the view in world coordinates
	X, Y float64

	// Zoom on top of the fit scale (1 = whole tank visible)
	Zoom    float64
	MaxZoom float64

	ViewportW, ViewportH float64
	WorldW, WorldH       float64
}

// New creates a camera showing the whole world.
func New(viewportW, viewportH, worldW, worldH float64) *Camera {
	return &Camera{
		X:         worldW / 2,
		Y:         worldH / 2,
		Zoom:      1,
		MaxZoom:   4,
		ViewportW: viewportW,
		ViewportH: viewportH,
		WorldW:    worldW,
		WorldH:    worldH,
	}
}

// Scale returns screen pixels per world unit.
func (c *Camera) Scale() float64 {
	return math.Min(c.ViewportW/c.WorldW, c.ViewportH/c.WorldH) * c.Zoom
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	s := c.Scale()
	return c.ViewportW/2 + (wx-c.X)*s, c.ViewportH/2 + (wy-c.Y)*s
}

// ScreenToWorld converts screen coordinates to world coordinates.
// The result may lie outside the tank when the point is in the letterbox.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	s := c.Scale()
	return c.X + (sx-c.ViewportW/2)/s, c.Y + (sy-c.ViewportH/2)/s
}

// InWorld reports whether a world point lies inside the tank.
func (c *Camera) InWorld(wx, wy float64) bool {
	return wx >= 0 && wx <= c.WorldW && wy >= 0 && wy <= c.WorldH
}

// IsVisible returns true if a circle at (wx, wy) could be on screen.
func (c *Camera) IsVisible(wx, wy, radius float64) bool {
	minX, minY, maxX, maxY := c.VisibleWorldBounds()
	return wx+radius >= minX && wx-radius <= maxX && wy+radius >= minY && wy-radius <= maxY
}

// VisibleWorldBounds returns the world rectangle covered by the viewport.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float64) {
	s := c.Scale()
	halfW := c.ViewportW / (2 * s)
	halfH := c.ViewportH / (2 * s)
	return c.X - halfW, c.Y - halfH, c.X + halfW, c.Y + halfH
}

// Resize updates the viewport, keeping the view inside the tank.
func (c *Camera) Resize(viewportW, viewportH float64) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.clampCenter()
}

// Pan moves the view by a delta in screen pixels.
func (c *Camera) Pan(dx, dy float64) {
	s := c.Scale()
	c.X += dx / s
	c.Y += dy / s
	c.clampCenter()
}

// SetZoom sets the zoom level, clamped to [1, MaxZoom].
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = math.Max(1, math.Min(zoom, c.MaxZoom))
	c.clampCenter()
}

// ZoomBy multiplies the current zoom by factor.
func (c *Camera) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// Reset shows the whole tank again.
func (c *Camera) Reset() {
	c.X = c.WorldW / 2
	c.Y = c.WorldH / 2
	c.Zoom = 1
}

// clampCenter keeps the tank filling the view on any axis where it is larger
// than the view, and centered on any axis where it is smaller.
func (c *Camera) clampCenter() {
	s := c.Scale()
	c.X = clampAxis(c.X, c.ViewportW/(2*s), c.WorldW)
	c.Y = clampAxis(c.Y, c.ViewportH/(2*s), c.WorldH)
}

func clampAxis(center, half, size float64) float64 {
	if 2*half >= size {
		return size / 2
	}
	return math.Max(half, math.Min(center, size-half))
}
