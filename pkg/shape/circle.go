// pkg/shape/circle.go
package shape

import (
	"math"

	"github.com/opd-ai/go-contact/pkg/physics"
)

// Circle represents a circular collision shape
type Circle struct {
	Position physics.Vector2D
	Radius   float64
}

// NewCircle creates a circle
func NewCircle(center physics.Vector2D, radius float64) Circle {
	return Circle{Position: center, Radius: radius}
}

func (c Circle) Kind() Kind { return KindCircle }

func (c Circle) Center() physics.Vector2D { return c.Position }

func (c Circle) BoundingBox() physics.Rect {
	return physics.Rect{Center: c.Position, Width: 2 * c.Radius, Height: 2 * c.Radius}
}

func (c Circle) Transform(t physics.Transform2D) Shape {
	return Circle{Position: t.Apply(c.Position), Radius: c.Radius * math.Abs(t.ScaleFactor())}
}

// ContainsPoint reports whether p lies inside or on the circle
func (c Circle) ContainsPoint(p physics.Vector2D) bool {
	return c.Position.DistanceSquared(p) <= c.Radius*c.Radius
}

// NormalAt returns the outward normal for a point on the circle
func (c Circle) NormalAt(p physics.Vector2D) physics.Vector2D {
	return p.Sub(c.Position).Normalize()
}
