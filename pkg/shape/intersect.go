// pkg/shape/intersect.go
package shape

import (
	"github.com/opd-ai/go-contact/pkg/contact"
	"github.com/opd-ai/go-contact/pkg/physics"
)

// Overlap reports whether a and b share any area or outline point.
// Closed shapes fully containing the other one overlap.
func Overlap(a, b Shape) bool {
	if a == nil || b == nil {
		return false
	}
	if !a.BoundingBox().Overlaps(b.BoundingBox()) {
		return false
	}

	ca, aIsCircle := a.(Circle)
	cb, bIsCircle := b.(Circle)
	switch {
	case aIsCircle && bIsCircle:
		r := ca.Radius + cb.Radius
		return ca.Position.DistanceSquared(cb.Position) <= r*r
	case aIsCircle:
		return circleOverlapsEdged(ca, b)
	case bIsCircle:
		return circleOverlapsEdged(cb, a)
	}

	ea, okA := a.(edged)
	eb, okB := b.(edged)
	if !okA || !okB {
		return false
	}
	for _, s1 := range ea.Edges() {
		for _, s2 := range eb.Edges() {
			if segmentsTouch(s1, s2) {
				return true
			}
		}
	}
	return contains(eb, ea) || contains(ea, eb)
}

func circleOverlapsEdged(c Circle, s Shape) bool {
	e, ok := s.(edged)
	if !ok {
		return false
	}
	for _, edge := range e.Edges() {
		if c.ContainsPoint(edge.ClosestPoint(c.Position)) {
			return true
		}
	}
	return e.Closed() && pointInPolygon(c.Position, e.Vertices())
}

// contains reports whether inner lies inside the closed outer shape. The
// outlines are known not to cross, so one vertex decides.
func contains(outer, inner edged) bool {
	if !outer.Closed() {
		return false
	}
	vertices := inner.Vertices()
	return len(vertices) > 0 && pointInPolygon(vertices[0], outer.Vertices())
}

// Intersect returns the points where the outline of a crosses the outline
// of b. Each normal is the surface normal of b at the contact. It returns
// nil when the outlines do not cross, even if one shape contains the other.
func Intersect(a, b Shape) *contact.Points {
	if a == nil || b == nil {
		return nil
	}
	if !a.BoundingBox().Overlaps(b.BoundingBox()) {
		return nil
	}

	points := contact.NewPoints()
	ca, aIsCircle := a.(Circle)
	cb, bIsCircle := b.(Circle)
	ea, _ := a.(edged)
	eb, _ := b.(edged)

	switch {
	case aIsCircle && bIsCircle:
		for _, p := range circleCircle(ca, cb) {
			points.Add(contact.NewPoint(p, cb.NormalAt(p)))
		}
	case bIsCircle && ea != nil:
		for _, edge := range ea.Edges() {
			for _, p := range segmentCircle(edge, cb) {
				points.Add(contact.NewPoint(p, cb.NormalAt(p)))
			}
		}
	case aIsCircle && eb != nil:
		for _, edge := range eb.Edges() {
			normal := edge.Normal()
			for _, p := range segmentCircle(edge, ca) {
				points.Add(contact.NewPoint(p, normal))
			}
		}
	case ea != nil && eb != nil:
		otherEdges := eb.Edges()
		for _, s1 := range ea.Edges() {
			for _, s2 := range otherEdges {
				if p, ok := segmentSegment(s1, s2); ok {
					points.Add(contact.NewPoint(p, s2.Normal()))
				}
			}
		}
	}

	if points.Len() == 0 {
		return nil
	}
	return points
}

// BoundingBoxOf returns the union of the bounding boxes of shapes
func BoundingBoxOf(shapes ...Shape) physics.Rect {
	var box physics.Rect
	for _, s := range shapes {
		if s == nil {
			continue
		}
		box = box.Union(s.BoundingBox())
	}
	return box
}
