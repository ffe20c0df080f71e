package components

// Color is an opaque RGB fill color.
type Color struct {
	R, G, B uint8
}

// Body holds the fixed visual properties of an entity.
type Body struct {
	Size  float64 `inspect:"label,fmt:%.1f"` // radius-like measure, half the body length
	Color Color   `inspect:"skip"`
}
