// Package validation checks shapes and transforms before they enter a
// collision handler.
package validation

import (
	"fmt"
	"math"

	"github.com/opd-ai/go-contact/pkg/physics"
	"github.com/opd-ai/go-contact/pkg/shape"
)

// Geometry limits
const (
	MaxCoordinate   = 1e9
	MinEdgeLength   = 1e-9
	MaxPolygonEdges = 1024
)

// ValidateVector rejects NaN, infinite and out of range coordinates
func ValidateVector(v physics.Vector2D) error {
	for _, c := range [...]float64{v.X, v.Y} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("coordinate is not finite: %v", v)
		}
		if math.Abs(c) > MaxCoordinate {
			return fmt.Errorf("coordinate out of range: %v (max %g)", v, MaxCoordinate)
		}
	}
	return nil
}

// ValidateTransform rejects non-finite positions, rotations and negative
// scales
func ValidateTransform(t physics.Transform2D) error {
	if err := ValidateVector(t.Position); err != nil {
		return fmt.Errorf("transform position: %w", err)
	}
	if math.IsNaN(t.Rotation) || math.IsInf(t.Rotation, 0) {
		return fmt.Errorf("transform rotation is not finite: %v", t.Rotation)
	}
	if math.IsNaN(t.Scale) || math.IsInf(t.Scale, 0) || t.Scale < 0 {
		return fmt.Errorf("invalid transform scale: %v (must be finite and not negative)", t.Scale)
	}
	return nil
}

// ValidateShape checks that a shape can take part in collision tests
func ValidateShape(s shape.Shape) error {
	switch v := s.(type) {
	case nil:
		return fmt.Errorf("shape cannot be nil")
	case shape.Circle:
		return validateCircle(v)
	case shape.Segment:
		return validateSegment(v)
	case shape.Polygon:
		return validatePolygon(v)
	case shape.Polyline:
		return validatePolyline(v)
	default:
		return fmt.Errorf("unsupported shape type %T", s)
	}
}

func validateCircle(c shape.Circle) error {
	if err := ValidateVector(c.Position); err != nil {
		return fmt.Errorf("circle center: %w", err)
	}
	if math.IsNaN(c.Radius) || c.Radius <= 0 || c.Radius > MaxCoordinate {
		return fmt.Errorf("invalid circle radius: %v (must be positive)", c.Radius)
	}
	return nil
}

func validateSegment(s shape.Segment) error {
	if err := validatePoints(s.A, s.B); err != nil {
		return fmt.Errorf("segment: %w", err)
	}
	if s.Length() < MinEdgeLength {
		return fmt.Errorf("segment too short: %v", s.Length())
	}
	return nil
}

func validatePolygon(p shape.Polygon) error {
	if len(p.Points) < 3 {
		return fmt.Errorf("%s needs at least 3 points, got %d", p.Kind(), len(p.Points))
	}
	if len(p.Points) > MaxPolygonEdges {
		return fmt.Errorf("%s has too many points: %d (max %d)", p.Kind(), len(p.Points), MaxPolygonEdges)
	}
	if err := validatePoints(p.Points...); err != nil {
		return fmt.Errorf("%s: %w", p.Kind(), err)
	}
	if math.Abs(p.Area()) < MinEdgeLength {
		return fmt.Errorf("%s has no area", p.Kind())
	}
	return nil
}

func validatePolyline(pl shape.Polyline) error {
	if len(pl.Points) < 2 {
		return fmt.Errorf("polyline needs at least 2 points, got %d", len(pl.Points))
	}
	if len(pl.Points) > MaxPolygonEdges {
		return fmt.Errorf("polyline has too many points: %d (max %d)", len(pl.Points), MaxPolygonEdges)
	}
	if err := validatePoints(pl.Points...); err != nil {
		return fmt.Errorf("polyline: %w", err)
	}
	return nil
}

func validatePoints(points ...physics.Vector2D) error {
	for i, p := range points {
		if err := ValidateVector(p); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
	}
	return nil
}
