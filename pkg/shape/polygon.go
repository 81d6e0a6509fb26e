// pkg/shape/polygon.go
package shape

import (
	"github.com/opd-ai/go-contact/pkg/physics"
)

// Polygon is a closed shape. Edge normals always point outward regardless
// of the winding of Points.
type Polygon struct {
	Points []physics.Vector2D
	kind   Kind
}

// NewPolygon creates a polygon from its outline
func NewPolygon(points ...physics.Vector2D) Polygon {
	return Polygon{Points: points, kind: KindPolygon}
}

// NewTriangle creates a three point polygon
func NewTriangle(a, b, c physics.Vector2D) Polygon {
	return Polygon{Points: []physics.Vector2D{a, b, c}, kind: KindTriangle}
}

// NewRect creates an axis-aligned rectangle centered on center.
// Rotating it with a transform keeps it a rect.
func NewRect(center physics.Vector2D, width, height float64) Polygon {
	hw, hh := width/2, height/2
	return Polygon{
		Points: []physics.Vector2D{
			{X: center.X - hw, Y: center.Y - hh},
			{X: center.X + hw, Y: center.Y - hh},
			{X: center.X + hw, Y: center.Y + hh},
			{X: center.X - hw, Y: center.Y + hh},
		},
		kind: KindRect,
	}
}

func (p Polygon) Kind() Kind {
	if p.kind == KindSegment {
		return KindPolygon
	}
	return p.kind
}

// Center returns the vertex average
func (p Polygon) Center() physics.Vector2D {
	return average(p.Points)
}

func (p Polygon) BoundingBox() physics.Rect {
	return physics.RectFromPoints(p.Points...)
}

func (p Polygon) Transform(t physics.Transform2D) Shape {
	return Polygon{Points: t.ApplyAll(p.Points), kind: p.Kind()}
}

// Area returns the signed area; positive for counter-clockwise winding
func (p Polygon) Area() float64 {
	var sum float64
	for i, a := range p.Points {
		b := p.Points[(i+1)%len(p.Points)]
		sum += a.Cross(b)
	}
	return sum / 2
}

// Edges returns the outline with outward facing normals
func (p Polygon) Edges() []Segment {
	n := len(p.Points)
	if n < 2 {
		return nil
	}
	ccw := p.Area() > 0
	edges := make([]Segment, 0, n)
	for i, a := range p.Points {
		b := p.Points[(i+1)%n]
		edges = append(edges, Segment{A: a, B: b, Flipped: ccw})
	}
	return edges
}

func (p Polygon) Vertices() []physics.Vector2D { return p.Points }
func (p Polygon) Closed() bool                 { return true }

// ContainsPoint reports whether pt lies inside the polygon
func (p Polygon) ContainsPoint(pt physics.Vector2D) bool {
	return pointInPolygon(pt, p.Points)
}

func average(points []physics.Vector2D) physics.Vector2D {
	if len(points) == 0 {
		return physics.Vector2D{}
	}
	var sum physics.Vector2D
	for _, p := range points {
		sum = sum.Add(p)
	}
	n := float64(len(points))
	return physics.Vector2D{X: sum.X / n, Y: sum.Y / n}
}
