// pkg/collision/information.go
package collision

import (
	"github.com/opd-ai/go-contact/pkg/contact"
	"github.com/opd-ai/go-contact/pkg/physics"
)

// Collision is the result for one collider pair. Points is nil when the
// colliders only overlap.
type Collision struct {
	Self          *Collider
	Other         *Collider
	FirstContact  bool
	SelfVelocity  physics.Vector2D
	OtherVelocity physics.Vector2D
	Points        *contact.Points
}

// Intersected reports whether the pair produced contact points
func (c Collision) Intersected() bool {
	return c.Points != nil
}

// Validate drops invalid points. See contact.Points.Validate.
func (c Collision) Validate() (contact.ValidationResult, bool) {
	if c.Points == nil {
		return contact.ValidationResult{}, false
	}
	return c.Points.Validate()
}

// ValidateDirection drops points facing dir
func (c Collision) ValidateDirection(dir physics.Vector2D) (contact.ValidationResult, bool) {
	if c.Points == nil {
		return contact.ValidationResult{}, false
	}
	return c.Points.ValidateDirection(dir)
}

// ValidatePoint drops points whose normal faces away from ref
func (c Collision) ValidatePoint(ref physics.Vector2D) (contact.ValidationResult, bool) {
	if c.Points == nil {
		return contact.ValidationResult{}, false
	}
	return c.Points.ValidatePoint(ref)
}

// Filter reduces the points to one. An overlap yields an invalid point.
func (c Collision) Filter(filterType contact.FilterType, ref physics.Vector2D) contact.Point {
	return c.Points.Filter(filterType, ref)
}

// Information collects every collider-pair result between two objects for
// one step, seen from Self.
type Information struct {
	Self         *Object
	Other        *Object
	FirstContact bool
	Collisions   []Collision
}

// Add appends a collider-pair result
func (info *Information) Add(c Collision) {
	info.Collisions = append(info.Collisions, c)
}

// Len returns the number of collider-pair results
func (info *Information) Len() int {
	if info == nil {
		return 0
	}
	return len(info.Collisions)
}

// HasIntersections reports whether any pair produced contact points
func (info *Information) HasIntersections() bool {
	if info == nil {
		return false
	}
	for _, c := range info.Collisions {
		if c.Intersected() {
			return true
		}
	}
	return false
}

// AllPoints gathers a copy of every contact point in result order. It
// returns nil when no pair intersected.
func (info *Information) AllPoints() *contact.Points {
	if !info.HasIntersections() {
		return nil
	}
	all := contact.NewPoints()
	for _, c := range info.Collisions {
		all.Append(c.Points)
	}
	return all
}

// ValidatePoint validates the gathered points against ref without touching
// the per-pair collections.
func (info *Information) ValidatePoint(ref physics.Vector2D) (contact.ValidationResult, bool) {
	all := info.AllPoints()
	if all == nil {
		return contact.ValidationResult{}, false
	}
	return all.ValidatePoint(ref)
}

// Filter reduces the gathered points to one
func (info *Information) Filter(filterType contact.FilterType, ref physics.Vector2D) contact.Point {
	return info.AllPoints().Filter(filterType, ref)
}
