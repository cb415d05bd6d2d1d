package vmath

// Rect is an axis-aligned box in world units, Y grows downward
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps tests strict AABB intersection; touching edges do not overlap
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		o.X < r.X+r.W &&
		r.Y < o.Y+o.H &&
		o.Y < r.Y+r.H
}

// OverlapsX tests horizontal span intersection of half-open intervals [X, X+W)
func (r Rect) OverlapsX(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W
}

// WithinX reports whether r lies inside the horizontal band [lo, hi]
func (r Rect) WithinX(lo, hi float64) bool {
	return r.X >= lo && r.X+r.W <= hi
}

// Translate returns r shifted by (dx, dy)
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}
