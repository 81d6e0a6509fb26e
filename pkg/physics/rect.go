// pkg/physics/rect.go
package physics

import "math"

// Rect represents an axis-aligned rectangular area.
// A Rect with zero width or height is empty: it has not been seeded with
// any real bounds yet and is skipped by Union.
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// RectFromMinMax builds a rect spanning the two corners
func RectFromMinMax(min, max Vector2D) Rect {
	return Rect{
		Center: Vector2D{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2},
		Width:  math.Abs(max.X - min.X),
		Height: math.Abs(max.Y - min.Y),
	}
}

// RectFromPoints returns the smallest rect containing every point.
func RectFromPoints(points ...Vector2D) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return RectFromMinMax(min, max)
}

// Min returns the bottom-left corner
func (r Rect) Min() Vector2D {
	return Vector2D{X: r.Center.X - r.Width/2, Y: r.Center.Y - r.Height/2}
}

// Max returns the top-right corner
func (r Rect) Max() Vector2D {
	return Vector2D{X: r.Center.X + r.Width/2, Y: r.Center.Y + r.Height/2}
}

// IsEmpty reports whether the rect has no area
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Union returns the smallest rect containing both rects. An empty side is
// replaced by the other one instead of stretching the result to its center.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	rMin, rMax := r.Min(), r.Max()
	oMin, oMax := other.Min(), other.Max()
	return RectFromMinMax(
		Vector2D{X: math.Min(rMin.X, oMin.X), Y: math.Min(rMin.Y, oMin.Y)},
		Vector2D{X: math.Max(rMax.X, oMax.X), Y: math.Max(rMax.Y, oMax.Y)},
	)
}

// Enlarge grows the rect by margin on every side
func (r Rect) Enlarge(margin float64) Rect {
	return Rect{Center: r.Center, Width: r.Width + 2*margin, Height: r.Height + 2*margin}
}

// Contains reports whether the point lies inside the rect.
// The max edges are exclusive.
func (r Rect) Contains(point Vector2D) bool {
	return point.X >= r.Center.X-r.Width/2 &&
		point.X < r.Center.X+r.Width/2 &&
		point.Y >= r.Center.Y-r.Height/2 &&
		point.Y < r.Center.Y+r.Height/2
}

// ContainsRect reports whether other lies completely inside r
func (r Rect) ContainsRect(other Rect) bool {
	rMin, rMax := r.Min(), r.Max()
	oMin, oMax := other.Min(), other.Max()
	return oMin.X >= rMin.X && oMax.X <= rMax.X &&
		oMin.Y >= rMin.Y && oMax.Y <= rMax.Y
}

// Overlaps reports whether the two rects share any area or edge
func (r Rect) Overlaps(other Rect) bool {
	return !(other.Center.X-other.Width/2 > r.Center.X+r.Width/2 ||
		other.Center.X+other.Width/2 < r.Center.X-r.Width/2 ||
		other.Center.Y-other.Height/2 > r.Center.Y+r.Height/2 ||
		other.Center.Y+other.Height/2 < r.Center.Y-r.Height/2)
}
