package geometry

// Rect is an axis-aligned rectangle. Min is the corner with the smallest
// coordinates on both axes.
type Rect struct {
	Min Vector
	Max Vector
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{
		Min: Vector{X: x, Y: y},
		Max: Vector{X: x + width, Y: y + height},
	}
}

// RectAround builds the rectangle centred on center with the given half extent
func RectAround(center, half Vector) Rect {
	return Rect{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) Center() Vector {
	return Vector{
		X: (r.Min.X + r.Max.X) / 2,
		Y: (r.Min.Y + r.Max.Y) / 2,
	}
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Contains reports whether p lies inside the rectangle, edges included
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether other lies entirely inside r
func (r Rect) ContainsRect(other Rect) bool {
	return other.Min.X >= r.Min.X && other.Max.X <= r.Max.X &&
		other.Min.Y >= r.Min.Y && other.Max.Y <= r.Max.Y
}

func (r Rect) Intersects(other Rect) bool {
	return r.Min.X < other.Max.X && r.Max.X > other.Min.X &&
		r.Min.Y < other.Max.Y && r.Max.Y > other.Min.Y
}
