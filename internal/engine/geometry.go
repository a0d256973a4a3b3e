package engine

// Vec is a point or vector in world points. The y axis points up.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle given by its minimum and maximum corners.
type Rect struct {
	Min, Max Vec
}

// RectAround returns the rectangle of the given size centred on c.
func RectAround(c Vec, s Size) Rect {
	return Rect{
		Min: Vec{X: c.X - s.W/2, Y: c.Y - s.H/2},
		Max: Vec{X: c.X + s.W/2, Y: c.Y + s.H/2},
	}
}

func (r Rect) Mid() Vec {
	return Vec{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }
