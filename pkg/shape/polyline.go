// pkg/shape/polyline.go
package shape

import (
	"github.com/opd-ai/go-contact/pkg/physics"
)

// Polyline is an open chain of segments sharing one normal side
type Polyline struct {
	Points  []physics.Vector2D
	Flipped bool
}

// NewPolyline creates a polyline through points
func NewPolyline(points ...physics.Vector2D) Polyline {
	return Polyline{Points: points}
}

func (pl Polyline) Kind() Kind { return KindPolyline }

func (pl Polyline) Center() physics.Vector2D {
	return average(pl.Points)
}

func (pl Polyline) BoundingBox() physics.Rect {
	return physics.RectFromPoints(pl.Points...)
}

func (pl Polyline) Transform(t physics.Transform2D) Shape {
	return Polyline{Points: t.ApplyAll(pl.Points), Flipped: pl.Flipped}
}

func (pl Polyline) Edges() []Segment {
	if len(pl.Points) < 2 {
		return nil
	}
	edges := make([]Segment, 0, len(pl.Points)-1)
	for i := 0; i+1 < len(pl.Points); i++ {
		edges = append(edges, Segment{A: pl.Points[i], B: pl.Points[i+1], Flipped: pl.Flipped})
	}
	return edges
}

func (pl Polyline) Vertices() []physics.Vector2D { return pl.Points }
func (pl Polyline) Closed() bool                 { return false }
