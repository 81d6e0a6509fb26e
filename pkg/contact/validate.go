// pkg/contact/validate.go
package contact

import (
	"github.com/opd-ai/go-contact/pkg/physics"
)

// ValidationResult holds the summaries gathered while validating a
// collection. Closest and Furthest are only set when a reference point was
// given; PointingTowards only when a reference point or direction was given.
// Unset fields are invalid points.
type ValidationResult struct {
	Combined        Point
	Closest         Point
	Furthest        Point
	PointingTowards Point
}

// Validate removes invalid points. It reports whether any point remains.
func (ps *Points) Validate() (ValidationResult, bool) {
	return ps.validate(nil, nil)
}

// ValidateDirection removes invalid points and points whose normal faces
// the same way as dir.
func (ps *Points) ValidateDirection(dir physics.Vector2D) (ValidationResult, bool) {
	return ps.validate(&dir, nil)
}

// ValidatePoint removes invalid points and points whose normal does not
// face ref.
func (ps *Points) ValidatePoint(ref physics.Vector2D) (ValidationResult, bool) {
	return ps.validate(nil, &ref)
}

// ValidateDirectionPoint applies both the direction and the reference point
// rules.
func (ps *Points) ValidateDirectionPoint(dir, ref physics.Vector2D) (ValidationResult, bool) {
	return ps.validate(&dir, &ref)
}

func discarded(p Point, dir, ref *physics.Vector2D) bool {
	if !p.Valid {
		return true
	}
	if dir != nil && p.Normal.Dot(*dir) >= 0 {
		return true
	}
	if ref != nil && ref.Sub(p.Position).Dot(p.Normal) < 0 {
		return true
	}
	return false
}

// validate filters the collection in one backward pass, compacting kept
// points toward the tail so their relative order survives, and gathers the
// summaries on the way. Ties on distance or alignment keep the point seen
// first in that backward pass.
func (ps *Points) validate(dir, ref *physics.Vector2D) (ValidationResult, bool) {
	var result ValidationResult
	n := ps.Len()
	if n == 0 {
		return result, false
	}

	if n == 1 {
		p := ps.items[0]
		if discarded(p, dir, ref) {
			ps.Clear()
			return result, false
		}
		return ValidationResult{Combined: p, Closest: p, Furthest: p, PointingTowards: p}, true
	}

	var sumPosition, sumNormal physics.Vector2D
	minDis, maxDis := -1.0, -1.0
	var maxDot float64
	pointing := false

	w := n
	for i := n - 1; i >= 0; i-- {
		p := ps.items[i]
		if discarded(p, dir, ref) {
			continue
		}
		w--
		ps.items[w] = p

		sumPosition = sumPosition.Add(p.Position)
		sumNormal = sumNormal.Add(p.Normal)

		if ref != nil {
			d := p.DistanceSquaredTo(*ref)
			if minDis < 0 || d < minDis {
				minDis = d
				result.Closest = p
			}
			if maxDis < 0 || d > maxDis {
				maxDis = d
				result.Furthest = p
			}
		}

		if dir != nil || ref != nil {
			var target physics.Vector2D
			if dir != nil {
				target = *dir
			} else {
				target = p.Position.Sub(*ref).Normalize()
			}
			dot := p.Normal.Dot(target)
			if !pointing || dot > maxDot {
				pointing = true
				maxDot = dot
				result.PointingTowards = p
			}
		}
	}

	kept := copy(ps.items, ps.items[w:])
	clear(ps.items[kept:])
	ps.items = ps.items[:kept]

	if kept == 0 {
		return ValidationResult{}, false
	}

	count := float64(kept)
	average := physics.Vector2D{X: sumPosition.X / count, Y: sumPosition.Y / count}
	result.Combined = NewPoint(average, sumNormal.Normalize())
	return result, true
}
