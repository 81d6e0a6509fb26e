// pkg/contact/sort.go
package contact

import (
	"math"

	"github.com/opd-ai/go-contact/pkg/physics"
)

// sortTolerance is the squared-distance difference under which two points
// count as equally far and keep their relative order.
const sortTolerance = 0.01

func compareDistance(a, b float64) int {
	if math.Abs(a-b) < sortTolerance {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// SortClosestFirst orders the points by distance to ref, nearest first
func (ps *Points) SortClosestFirst(ref physics.Vector2D) {
	ps.sort(func(a, b Point) int {
		return compareDistance(a.DistanceSquaredTo(ref), b.DistanceSquaredTo(ref))
	})
}

// SortFurthestFirst orders the points by distance to ref, farthest first
func (ps *Points) SortFurthestFirst(ref physics.Vector2D) {
	ps.sort(func(a, b Point) int {
		return compareDistance(b.DistanceSquaredTo(ref), a.DistanceSquaredTo(ref))
	})
}

// sort is a stable insertion sort. The tolerant comparator is not a strict
// weak order, so only adjacent swaps of strictly misordered neighbours are
// made.
func (ps *Points) sort(cmp func(a, b Point) int) {
	if ps.Len() < 2 {
		return
	}
	items := ps.items
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && cmp(items[j-1], items[j]) > 0; j-- {
			items[j-1], items[j] = items[j], items[j-1]
		}
	}
}
