// pkg/shape/geometry.go
package shape

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/opd-ai/go-contact/pkg/physics"
)

const geometryEpsilon = 1e-10

// segmentSegment returns the crossing point of two segments.
// Parallel and collinear segments report no single crossing point.
func segmentSegment(s1, s2 Segment) (physics.Vector2D, bool) {
	e := s1.B.Sub(s1.A)
	f := s2.B.Sub(s2.A)

	// s1.A + t*e = s2.A + u*f
	m := mat.NewDense(2, 2, []float64{
		e.X, -f.X,
		e.Y, -f.Y,
	})
	if math.Abs(mat.Det(m)) < geometryEpsilon {
		return physics.Vector2D{}, false
	}

	rhs := mat.NewVecDense(2, []float64{s2.A.X - s1.A.X, s2.A.Y - s1.A.Y})
	var params mat.VecDense
	if err := params.SolveVec(m, rhs); err != nil {
		return physics.Vector2D{}, false
	}

	t, u := params.AtVec(0), params.AtVec(1)
	if t < -geometryEpsilon || t > 1+geometryEpsilon || u < -geometryEpsilon || u > 1+geometryEpsilon {
		return physics.Vector2D{}, false
	}
	return s1.A.Add(e.Scale(t)), true
}

// segmentsTouch reports whether two segments share any point, including
// collinear overlaps.
func segmentsTouch(s1, s2 Segment) bool {
	if _, ok := segmentSegment(s1, s2); ok {
		return true
	}
	e := s1.B.Sub(s1.A)
	if math.Abs(e.Cross(s2.A.Sub(s1.A))) > geometryEpsilon || math.Abs(e.Cross(s2.B.Sub(s1.A))) > geometryEpsilon {
		return false
	}
	return onSegment(s2.A, s1) || onSegment(s2.B, s1) || onSegment(s1.A, s2) || onSegment(s1.B, s2)
}

func onSegment(p physics.Vector2D, s Segment) bool {
	return s.ClosestPoint(p).DistanceSquared(p) <= geometryEpsilon
}

// segmentCircle returns the points where the segment crosses the circle
// outline, in order along the segment.
func segmentCircle(s Segment, c Circle) []physics.Vector2D {
	d := s.B.Sub(s.A)
	offset := s.A.Sub(c.Position)

	a := d.LengthSquared()
	b := 2 * d.Dot(offset)
	cc := offset.LengthSquared() - c.Radius*c.Radius

	if a < geometryEpsilon {
		if math.Abs(math.Sqrt(offset.LengthSquared())-c.Radius) < geometryEpsilon {
			return []physics.Vector2D{s.A}
		}
		return nil
	}

	discriminant := b*b - 4*a*cc
	if discriminant < -geometryEpsilon {
		return nil
	}

	inRange := func(t float64) bool {
		return t >= -geometryEpsilon && t <= 1+geometryEpsilon
	}

	if math.Abs(discriminant) < geometryEpsilon {
		t := -b / (2 * a)
		if inRange(t) {
			return []physics.Vector2D{s.A.Add(d.Scale(t))}
		}
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	var points []physics.Vector2D
	for _, t := range [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
		if inRange(t) {
			points = append(points, s.A.Add(d.Scale(t)))
		}
	}
	return points
}

// circleCircle returns the points where the two outlines cross. Nested or
// concentric circles have none.
func circleCircle(c1, c2 Circle) []physics.Vector2D {
	delta := c2.Position.Sub(c1.Position)
	d := delta.Length()
	if d == 0 || d > c1.Radius+c2.Radius || d < math.Abs(c1.Radius-c2.Radius) {
		return nil
	}

	l := (c1.Radius*c1.Radius - c2.Radius*c2.Radius + d*d) / (2 * d)
	hSquared := c1.Radius*c1.Radius - l*l
	base := c1.Position.Add(delta.Scale(l / d))
	if hSquared <= geometryEpsilon {
		return []physics.Vector2D{base}
	}

	h := math.Sqrt(hSquared)
	offset := delta.Perpendicular().Scale(h / d)
	return []physics.Vector2D{base.Sub(offset), base.Add(offset)}
}

// pointInPolygon uses ray casting
func pointInPolygon(p physics.Vector2D, points []physics.Vector2D) bool {
	inside := false
	j := len(points) - 1
	for i := 0; i < len(points); i++ {
		pi, pj := points[i], points[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
