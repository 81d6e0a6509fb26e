// pkg/contact/points.go
package contact

import (
	"github.com/opd-ai/go-contact/pkg/physics"
)

// Points is an ordered collection of contact points. A nil *Points means
// that no test was run; an empty one means a test ran and found nothing.
type Points struct {
	items []Point
}

// NewPoints creates a collection holding pts in order
func NewPoints(pts ...Point) *Points {
	items := make([]Point, len(pts))
	copy(items, pts)
	return &Points{items: items}
}

// Len returns the number of points. A nil collection has none.
func (ps *Points) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.items)
}

// IsEmpty reports whether the collection is nil or holds no points
func (ps *Points) IsEmpty() bool {
	return ps.Len() == 0
}

// At returns the i-th point
func (ps *Points) At(i int) Point {
	return ps.items[i]
}

// Add appends points to the collection
func (ps *Points) Add(pts ...Point) {
	ps.items = append(ps.items, pts...)
}

// Append adds every point of other. A nil other is ignored.
func (ps *Points) Append(other *Points) {
	if other == nil {
		return
	}
	ps.items = append(ps.items, other.items...)
}

// Clear removes every point
func (ps *Points) Clear() {
	clear(ps.items)
	ps.items = ps.items[:0]
}

// Copy returns an independent collection with the same points
func (ps *Points) Copy() *Points {
	if ps == nil {
		return nil
	}
	return NewPoints(ps.items...)
}

// Slice returns a copy of the points in order
func (ps *Points) Slice() []Point {
	if ps == nil {
		return nil
	}
	out := make([]Point, len(ps.items))
	copy(out, ps.items)
	return out
}

// Contains reports whether an identical point is in the collection
func (ps *Points) Contains(p Point) bool {
	if ps == nil {
		return false
	}
	for _, item := range ps.items {
		if item == p {
			return true
		}
	}
	return false
}

// FlipAllNormals reverses every normal
func (ps *Points) FlipAllNormals() {
	for i := range ps.items {
		ps.items[i] = ps.items[i].FlipNormal()
	}
}

// FlipNormalsTowardsPoint reverses every normal that faces away from ref
func (ps *Points) FlipNormalsTowardsPoint(ref physics.Vector2D) {
	for i := range ps.items {
		ps.items[i] = ps.items[i].FlipNormalTowardsPoint(ref)
	}
}

// FlipNormalsTowardsDirection reverses every normal that faces away from dir
func (ps *Points) FlipNormalsTowardsDirection(dir physics.Vector2D) {
	for i := range ps.items {
		ps.items[i] = ps.items[i].FlipNormalTowardsDirection(dir)
	}
}

// GetUniquePoints returns the distinct contact positions
func (ps *Points) GetUniquePoints() []physics.Vector2D {
	if ps == nil {
		return nil
	}
	seen := make(map[physics.Vector2D]struct{}, len(ps.items))
	unique := make([]physics.Vector2D, 0, len(ps.items))
	for _, p := range ps.items {
		if _, ok := seen[p.Position]; ok {
			continue
		}
		seen[p.Position] = struct{}{}
		unique = append(unique, p.Position)
	}
	return unique
}

// GetUniqueCollisionPoints returns a new collection without duplicate
// points. Two points are duplicates when position, normal and validity all
// match.
func (ps *Points) GetUniqueCollisionPoints() *Points {
	if ps == nil {
		return nil
	}
	seen := make(map[Point]struct{}, len(ps.items))
	unique := &Points{items: make([]Point, 0, len(ps.items))}
	for _, p := range ps.items {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique.items = append(unique.items, p)
	}
	return unique
}
