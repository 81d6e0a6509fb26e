// pkg/contact/sort_test.go
package contact

import (
	"testing"

	"github.com/opd-ai/go-contact/pkg/physics"
)

func positions(ps *Points) []physics.Vector2D {
	out := make([]physics.Vector2D, 0, ps.Len())
	for _, p := range ps.Slice() {
		out = append(out, p.Position)
	}
	return out
}

func samePositions(a, b []physics.Vector2D) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPoints_SortClosestFirst(t *testing.T) {
	tests := []struct {
		name     string
		input    []physics.Vector2D
		expected []physics.Vector2D
	}{
		{
			name:     "reorders_by_distance",
			input:    []physics.Vector2D{vec(3, 0), vec(1, 0), vec(2, 0)},
			expected: []physics.Vector2D{vec(1, 0), vec(2, 0), vec(3, 0)},
		},
		{
			name:     "within_tolerance_keeps_order",
			input:    []physics.Vector2D{vec(1.001, 0), vec(1, 0), vec(0.5, 0)},
			expected: []physics.Vector2D{vec(0.5, 0), vec(1.001, 0), vec(1, 0)},
		},
		{
			name:     "single_point",
			input:    []physics.Vector2D{vec(4, 4)},
			expected: []physics.Vector2D{vec(4, 4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := NewPoints()
			for _, p := range tt.input {
				ps.Add(NewPoint(p, vec(0, 1)))
			}

			ps.SortClosestFirst(vec(0, 0))
			if got := positions(ps); !samePositions(got, tt.expected) {
				t.Errorf("SortClosestFirst() = %v, expected %v", got, tt.expected)
			}

			// sorting an already sorted collection changes nothing
			before := positions(ps)
			ps.SortClosestFirst(vec(0, 0))
			if got := positions(ps); !samePositions(got, before) {
				t.Errorf("second sort changed order: %v -> %v", before, got)
			}
		})
	}
}

func TestPoints_SortFurthestFirst(t *testing.T) {
	ps := NewPoints(
		NewPoint(vec(0, 1), vec(0, 1)),
		NewPoint(vec(0, 3), vec(0, 1)),
		NewPoint(vec(0, 2), vec(0, 1)),
		NewPoint(vec(0, -3.0001), vec(0, 1)),
	)

	ps.SortFurthestFirst(vec(0, 0))

	expected := []physics.Vector2D{vec(0, 3), vec(0, -3.0001), vec(0, 2), vec(0, 1)}
	if got := positions(ps); !samePositions(got, expected) {
		t.Errorf("SortFurthestFirst() = %v, expected %v", got, expected)
	}
}
