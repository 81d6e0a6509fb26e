// pkg/shape/shape_test.go
package shape

import (
	"math"
	"testing"

	"github.com/opd-ai/go-contact/pkg/physics"
)

func TestShape_Kinds(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected Kind
	}{
		{NewSegment(vec(0, 0), vec(1, 0)), KindSegment},
		{NewCircle(vec(0, 0), 1), KindCircle},
		{NewTriangle(vec(0, 0), vec(1, 0), vec(0, 1)), KindTriangle},
		{NewRect(vec(0, 0), 1, 1), KindRect},
		{NewPolygon(vec(0, 0), vec(1, 0), vec(1, 1), vec(0, 1)), KindPolygon},
		{NewPolyline(vec(0, 0), vec(1, 0), vec(1, 1)), KindPolyline},
		{Polygon{}, KindPolygon},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			if tt.shape.Kind() != tt.expected {
				t.Errorf("Kind() = %v, expected %v", tt.shape.Kind(), tt.expected)
			}
			moved := tt.shape.Transform(physics.NewTransform2D(vec(1, 1), math.Pi/4))
			if moved.Kind() != tt.expected {
				t.Errorf("Transform() changed kind to %v", moved.Kind())
			}
		})
	}
}

func TestShape_Transform(t *testing.T) {
	transform := physics.Transform2D{Position: vec(10, 0), Rotation: math.Pi / 2, Scale: 2}

	c := NewCircle(vec(1, 0), 3).Transform(transform).(Circle)
	if !near(c.Position, vec(10, 2)) || c.Radius != 6 {
		t.Errorf("circle transformed to %v r=%v", c.Position, c.Radius)
	}

	r := NewRect(vec(0, 0), 2, 4).Transform(transform).(Polygon)
	box := r.BoundingBox()
	if math.Abs(box.Width-8) > epsilon || math.Abs(box.Height-4) > epsilon {
		t.Errorf("rotated rect box = %vx%v, expected 8x4", box.Width, box.Height)
	}
	if !near(r.Center(), vec(10, 0)) {
		t.Errorf("rotated rect center = %v, expected (10, 0)", r.Center())
	}
}

func TestCircle_TransformNegativeScale(t *testing.T) {
	c := NewCircle(vec(1, 0), 3).Transform(physics.Transform2D{Scale: -2}).(Circle)
	if c.Radius != 6 {
		t.Errorf("radius = %v, expected 6", c.Radius)
	}
	if !near(c.Position, vec(-2, 0)) {
		t.Errorf("center = %v, expected (-2, 0)", c.Position)
	}
	box := c.BoundingBox()
	if box.Width != 12 || box.Height != 12 {
		t.Errorf("box = %vx%v, expected 12x12", box.Width, box.Height)
	}
	if !Overlap(c, NewCircle(vec(5, 0), 2)) {
		t.Error("expected mirrored circle to overlap its neighbour")
	}
}

func TestSegment_Normal(t *testing.T) {
	s := NewSegment(vec(0, 0), vec(2, 0))
	if !near(s.Normal(), vec(0, 1)) {
		t.Errorf("Normal() = %v, expected (0, 1)", s.Normal())
	}
	s.Flipped = true
	if !near(s.Normal(), vec(0, -1)) {
		t.Errorf("flipped Normal() = %v, expected (0, -1)", s.Normal())
	}
	if got := s.ClosestPoint(vec(5, 3)); got != vec(2, 0) {
		t.Errorf("ClosestPoint() = %v, expected (2, 0)", got)
	}
}

func TestPolygon_ContainsPoint(t *testing.T) {
	tri := NewTriangle(vec(0, 0), vec(4, 0), vec(0, 4))
	if !tri.ContainsPoint(vec(1, 1)) {
		t.Error("(1, 1) should be inside")
	}
	if tri.ContainsPoint(vec(3, 3)) {
		t.Error("(3, 3) should be outside")
	}
	if tri.Area() != 8 {
		t.Errorf("Area() = %v, expected 8", tri.Area())
	}
}

func TestBoundingBoxOf(t *testing.T) {
	box := BoundingBoxOf(NewCircle(vec(0, 0), 1), nil, NewRect(vec(5, 5), 2, 2))
	if !near(box.Min(), vec(-1, -1)) || !near(box.Max(), vec(6, 6)) {
		t.Errorf("BoundingBoxOf() = [%v %v]", box.Min(), box.Max())
	}
}
