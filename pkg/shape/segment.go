// pkg/shape/segment.go
package shape

import (
	"github.com/opd-ai/go-contact/pkg/physics"
)

// Segment is a straight edge from A to B. Its normal points to the left of
// the A->B direction, or to the right when Flipped is set.
type Segment struct {
	A       physics.Vector2D
	B       physics.Vector2D
	Flipped bool
}

// NewSegment creates a segment between two points
func NewSegment(a, b physics.Vector2D) Segment {
	return Segment{A: a, B: b}
}

func (s Segment) Kind() Kind { return KindSegment }

// Center returns the midpoint
func (s Segment) Center() physics.Vector2D {
	return s.A.Lerp(s.B, 0.5)
}

func (s Segment) BoundingBox() physics.Rect {
	return physics.RectFromPoints(s.A, s.B)
}

func (s Segment) Transform(t physics.Transform2D) Shape {
	return Segment{A: t.Apply(s.A), B: t.Apply(s.B), Flipped: s.Flipped}
}

// Direction returns the unit vector from A to B
func (s Segment) Direction() physics.Vector2D {
	return s.B.Sub(s.A).Normalize()
}

// Normal returns the unit surface normal
func (s Segment) Normal() physics.Vector2D {
	n := s.B.Sub(s.A).Perpendicular().Normalize()
	if s.Flipped {
		return n.Negate()
	}
	return n
}

// Length returns the distance between the end points
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// ClosestPoint returns the point on the segment nearest to p
func (s Segment) ClosestPoint(p physics.Vector2D) physics.Vector2D {
	d := s.B.Sub(s.A)
	lengthSquared := d.LengthSquared()
	if lengthSquared == 0 {
		return s.A
	}
	t := p.Sub(s.A).Dot(d) / lengthSquared
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	return s.A.Add(d.Scale(t))
}

func (s Segment) Edges() []Segment             { return []Segment{s} }
func (s Segment) Vertices() []physics.Vector2D { return []physics.Vector2D{s.A, s.B} }
func (s Segment) Closed() bool                 { return false }
