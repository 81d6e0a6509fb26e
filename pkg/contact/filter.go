// pkg/contact/filter.go
package contact

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/opd-ai/go-contact/pkg/physics"
)

// FilterType selects how a collection is reduced to one point
type FilterType int

const (
	// First picks the first point in insertion order
	First FilterType = iota
	// Closest picks the point nearest to the reference point
	Closest
	// Furthest picks the point farthest from the reference point
	Furthest
	// Combined folds every point into a running pairwise average
	Combined
	// PointingTowards picks the normal most aligned with the reference
	PointingTowards
	// PointingAway picks the normal least aligned with the reference
	PointingAway
	// Random picks a uniformly random point
	Random
)

var filterTypeNames = [...]string{
	First:           "first",
	Closest:         "closest",
	Furthest:        "furthest",
	Combined:        "combined",
	PointingTowards: "pointing_towards",
	PointingAway:    "pointing_away",
	Random:          "random",
}

func (f FilterType) String() string {
	if f < 0 || int(f) >= len(filterTypeNames) {
		return fmt.Sprintf("FilterType(%d)", int(f))
	}
	return filterTypeNames[f]
}

// ParseFilterType converts a name such as "closest" into a FilterType
func ParseFilterType(name string) (FilterType, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, n := range filterTypeNames {
		if n == normalized {
			return FilterType(i), nil
		}
	}
	return First, fmt.Errorf("unknown filter type %q", name)
}

// Filter reduces the collection to one representative point. An empty
// collection yields an invalid point and a single point is returned as is,
// whatever the filter type.
//
// PointingTowards and PointingAway compare each normal with the direction
// from its point toward ref.
func (ps *Points) Filter(filterType FilterType, ref physics.Vector2D) Point {
	return ps.filter(filterType, ref, nil)
}

// FilterDirection is Filter with an explicit reference direction for the
// PointingTowards and PointingAway filters.
func (ps *Points) FilterDirection(filterType FilterType, ref, dir physics.Vector2D) Point {
	return ps.filter(filterType, ref, &dir)
}

// Closest returns the point nearest to ref, or an invalid point
func (ps *Points) Closest(ref physics.Vector2D) Point {
	return ps.Filter(Closest, ref)
}

// Furthest returns the point farthest from ref, or an invalid point
func (ps *Points) Furthest(ref physics.Vector2D) Point {
	return ps.Filter(Furthest, ref)
}

func (ps *Points) filter(filterType FilterType, ref physics.Vector2D, dir *physics.Vector2D) Point {
	switch ps.Len() {
	case 0:
		return Point{}
	case 1:
		return ps.items[0]
	}

	switch filterType {
	case Closest:
		return ps.closest(ref)
	case Furthest:
		return ps.furthest(ref)
	case Combined:
		return ps.combined()
	case PointingTowards:
		return ps.pointing(ref, dir, true)
	case PointingAway:
		return ps.pointing(ref, dir, false)
	case Random:
		return ps.items[rand.IntN(len(ps.items))]
	default:
		return ps.items[0]
	}
}

// closest keeps the first point on exact ties
func (ps *Points) closest(ref physics.Vector2D) Point {
	var best Point
	minDis := -1.0
	for _, p := range ps.items {
		d := p.DistanceSquaredTo(ref)
		if minDis < 0 || d < minDis {
			minDis = d
			best = p
		}
	}
	return best
}

// furthest keeps the first point on exact ties
func (ps *Points) furthest(ref physics.Vector2D) Point {
	var best Point
	maxDis := -1.0
	for _, p := range ps.items {
		d := p.DistanceSquaredTo(ref)
		if maxDis < 0 || d > maxDis {
			maxDis = d
			best = p
		}
	}
	return best
}

// combined folds the points pairwise. The result differs from the batch
// average computed by Validate because each step renormalizes the normal.
func (ps *Points) combined() Point {
	result := ps.items[0]
	for _, p := range ps.items[1:] {
		result = result.Combine(p)
	}
	return result
}

func (ps *Points) pointing(ref physics.Vector2D, dir *physics.Vector2D, towards bool) Point {
	var best Point
	var bestDot float64
	found := false
	for _, p := range ps.items {
		var target physics.Vector2D
		if dir != nil {
			target = *dir
		} else {
			target = ref.Sub(p.Position).Normalize()
		}
		dot := p.Normal.Dot(target)
		if !found || (towards && dot > bestDot) || (!towards && dot < bestDot) {
			found = true
			bestDot = dot
			best = p
		}
	}
	return best
}
