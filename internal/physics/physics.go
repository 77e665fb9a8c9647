// Package physics provides collision detection and bounds utilities.
package physics

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point lies within the rectangle, edges included.
func (r Rect) Contains(px, py float64) bool {
	return PointInRect(px, py, r.X, r.Y, r.Width, r.Height)
}

// PointInRect checks if a point is within the rectangle at (x, y) of size w*h.
// Edges are inclusive on all sides.
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}

// Clamp limits v to [lo, hi]. If hi < lo, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
