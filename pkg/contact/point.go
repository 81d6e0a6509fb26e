// pkg/contact/point.go
package contact

import (
	"fmt"

	"github.com/opd-ai/go-contact/pkg/physics"
)

// Point is a single contact: where two shapes touch and the surface normal
// at that position. The zero value is invalid.
//
// Normals are expected to be unit length; they are not re-normalized on
// construction.
type Point struct {
	Position physics.Vector2D
	Normal   physics.Vector2D
	Valid    bool
}

// NewPoint creates a valid contact point
func NewPoint(position, normal physics.Vector2D) Point {
	return Point{Position: position, Normal: normal, Valid: true}
}

// FlipNormal returns the point with its normal reversed
func (p Point) FlipNormal() Point {
	p.Normal = p.Normal.Negate()
	return p
}

// FlipNormalTowardsPoint returns the point with its normal reversed if it
// faces away from ref.
func (p Point) FlipNormalTowardsPoint(ref physics.Vector2D) Point {
	if ref.Sub(p.Position).IsFacingOppositeDirection(p.Normal) {
		return p.FlipNormal()
	}
	return p
}

// FlipNormalTowardsDirection returns the point with its normal reversed if
// it faces away from dir.
func (p Point) FlipNormalTowardsDirection(dir physics.Vector2D) Point {
	if dir.IsFacingOppositeDirection(p.Normal) {
		return p.FlipNormal()
	}
	return p
}

// Combine averages the positions of both points and the directions of
// their normals.
func (p Point) Combine(other Point) Point {
	return NewPoint(
		p.Position.Add(other.Position).Scale(0.5),
		p.Normal.Add(other.Normal).Normalize(),
	)
}

// DistanceSquaredTo returns the squared distance from the contact position
// to ref.
func (p Point) DistanceSquaredTo(ref physics.Vector2D) float64 {
	return p.Position.DistanceSquared(ref)
}

func (p Point) String() string {
	if !p.Valid {
		return "contact(invalid)"
	}
	return fmt.Sprintf("contact(at %v, normal %v)", p.Position, p.Normal)
}
