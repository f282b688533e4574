package gamemath

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectFromCenter builds a w×h rect centred on c.
func RectFromCenter(c Vec, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (r Rect) Left() float64 { return r.X }
func (r Rect) Right() float64 { return r.X + r.W }
func (r Rect) Top() float64 { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }
func (r Rect) Center() Vec { return Vec{r.X + r.W/2, r.Y + r.H/2} }

// touchEpsilon absorbs rounding when an edge has just been snapped flush.
const touchEpsilon = 1e-9

// Overlaps reports whether r and o share interior area. Boxes that only touch
// along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X+touchEpsilon < o.X+o.W && o.X+touchEpsilon < r.X+r.W &&
		r.Y+touchEpsilon < o.Y+o.H && o.Y+touchEpsilon < r.Y+r.H
}

// Translate moves r by d.
func (r Rect) Translate(d Vec) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Inflate grows r by dw and dh in total, keeping its centre. Negative values
// shrink it.
func (r Rect) Inflate(dw, dh float64) Rect {
	return Rect{X: r.X - dw/2, Y: r.Y - dh/2, W: r.W + dw, H: r.H + dh}
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
