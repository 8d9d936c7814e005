package entity

// Rect is an axis-aligned rectangle. X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewCenteredRect creates a rect of size w x h centred on (cx, cy)
func NewCenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the centre point
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether two rects overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Translate returns the rect moved by (dx, dy)
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Body is the dynamic state of the player body
type Body struct {
	Rect
	VX, VY   float64
	OnGround bool
}
